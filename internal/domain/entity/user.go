// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the lifecycle state of an account.
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusDeleted  UserStatus = "deleted"
	UserStatusBlocked  UserStatus = "blocked"
)

// User is the core identity in the system. The credential fields
// (PasswordHash, PasswordSalt) never leave the process boundary: they are
// excluded from JSON and must not be logged.
type User struct {
	ID       uuid.UUID  `json:"id"`
	Username string     `json:"username"` // Unique, case-sensitive login identifier.
	Email    string     `json:"email"`
	Name     string     `json:"name"`
	Status   UserStatus `json:"status"`
	RoleID   uuid.UUID  `json:"roleId"`
	Role     *Role      `json:"role,omitempty"` // Populated relation; nil when the reference dangles.

	PasswordHash      string    `json:"-"`
	PasswordSalt      string    `json:"-"`
	PasswordChangedAt time.Time `json:"-"`

	Audit
}

// RoleSlug returns the slug of the populated role, or empty when the role
// relation was not resolved.
func (u *User) RoleSlug() RoleSlug {
	if u.Role == nil {
		return ""
	}

	return u.Role.Slug
}

// CanAuthenticate reports whether the account may log in or refresh tokens.
func (u *User) CanAuthenticate() bool {
	return u.Status == UserStatusActive
}

// UserSummary is the outward-facing shape of a user returned by auth
// endpoints. It deliberately omits every credential field.
type UserSummary struct {
	ID       uuid.UUID  `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Name     string     `json:"name"`
	Role     RoleSlug   `json:"role"`
	Status   UserStatus `json:"status"`
}

// Summary maps a user to its outward-facing shape.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.RoleSlug(),
		Status:   u.Status,
	}
}

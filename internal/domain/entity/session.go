// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSession represents a long-lived, authorized login session backing a
// refresh token. Only a SHA-256 hash of the raw token is persisted; deleting
// the row is the revocation mechanism. Refresh tokens are not rotated on use.
type RefreshSession struct {
	ID        uuid.UUID // The unique ID for this session record (mirrors the token's jti claim).
	UserID    uuid.UUID // Links the session to the account it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token for storage-safe comparison.
	Channel   string    // Source channel reported at login (web, mobile, ...).
	ExpiresAt time.Time // When the refresh token stops being accepted.
	CreatedAt time.Time // When the session was opened (login time).
}

// Expired reports whether the session is past its expiry at the given time.
func (s *RefreshSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

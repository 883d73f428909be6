// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// RoleSlug identifies a permission bucket. Roles form a flat set: elevated
// access enumerates every satisfying slug explicitly instead of deriving one
// role from another.
type RoleSlug string

const (
	// RoleSuperAdmin indicates the platform owner role.
	RoleSuperAdmin RoleSlug = "super-admin"
	// RoleAdmin indicates a back-office administrator role.
	RoleAdmin RoleSlug = "admin"
	// RoleProvider indicates a merchant/provider role.
	RoleProvider RoleSlug = "provider"
	// RoleCustomer indicates a regular customer role.
	RoleCustomer RoleSlug = "customer"
)

// String returns the string representation of the RoleSlug.
func (r RoleSlug) String() string {
	return string(r)
}

// IsValid checks if the RoleSlug is a known value.
func (r RoleSlug) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleProvider, RoleCustomer:
		return true
	default:
		return false
	}
}

// Roles is a slice of RoleSlug for convenience.
type Roles []RoleSlug

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role RoleSlug) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out unknown slugs.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := RoleSlug(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Role is the persisted form of a permission bucket, referenced by users.
type Role struct {
	ID   uuid.UUID `json:"id"`
	Slug RoleSlug  `json:"slug"`
	Name string    `json:"name"`
	Audit
}

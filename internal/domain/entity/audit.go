// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit carries the shared bookkeeping fields embedded by every domain
// entity. Timestamps are stamped by the store on write; the actor fields are
// stamped from the authenticated identity before the write is issued.
type Audit struct {
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy *uuid.UUID `json:"createdBy,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
	UpdatedBy *uuid.UUID `json:"updatedBy,omitempty"`
}

// StampCreated records the creating actor. The store fills CreatedAt.
func (a *Audit) StampCreated(by uuid.UUID) {
	a.CreatedBy = &by
	a.UpdatedBy = &by
}

// StampUpdated records the updating actor. The store fills UpdatedAt.
func (a *Audit) StampUpdated(by uuid.UUID) {
	a.UpdatedBy = &by
}

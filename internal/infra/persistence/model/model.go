// Package model contains the GORM persistence models mirroring the database
// tables. Relation shape is declared here, once per model, so every join the
// store can perform is auditable in one place.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditColumns are the shared bookkeeping columns embedded by every table.
// The store stamps the timestamps on write; the actor columns are carried
// from the domain entity.
type AuditColumns struct {
	CreatedAt time.Time
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt time.Time
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
}

// ensureID assigns a fresh UUID when the primary key is unset. IDs are
// generated in-process rather than by the database so every supported store
// behaves identically.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// Package repository defines the persistence interfaces consumed by the use
// case layer. Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"emporia/internal/domain/query"

	"github.com/google/uuid"
)

// Sentinel errors shared by every store implementation.
var (
	ErrNotFound     = errors.New("record not found")
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound covers both a missing and an already-revoked
	// refresh session.
	ErrSessionNotFound = errors.New("refresh session not found")
	ErrSessionExpired  = errors.New("refresh session expired")
)

// Filter is a column→value conjunction applied to a listing or lookup.
// Values are bound as query parameters by the store, never interpolated.
type Filter map[string]any

// Page is one page of a filtered listing. TotalCount reflects the full
// filtered set, independent of Page/PerPage.
type Page[E any] struct {
	Items      []*E  `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
}

// Store is the generic data-access facade over one collection of entity E.
// It owns no state: relations are declared once on the backing model type and
// resolved by the store as a single declarative query plan per call.
type Store[E any] interface {
	// FindByID returns the entity with the given id, relations populated,
	// or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)

	// FindOne returns the first entity matching the filter, relations
	// populated, or ErrNotFound.
	FindOne(ctx context.Context, filter Filter) (*E, error)

	// FindMany returns every entity matching the filter, relations populated.
	FindMany(ctx context.Context, filter Filter) ([]*E, error)

	// Paginate returns one bounded page plus the total count of the filtered
	// set. The descriptor must already be normalized by the pagination policy.
	Paginate(ctx context.Context, filter Filter, desc query.Descriptor) (*Page[E], error)

	// Create persists a new entity and backfills generated fields.
	Create(ctx context.Context, e *E) error

	// Update applies the entity's current state to the record with the given
	// id, or returns ErrNotFound.
	Update(ctx context.Context, id uuid.UUID, e *E) error

	// Delete soft-deletes the record with the given id, or returns
	// ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

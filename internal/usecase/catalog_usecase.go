// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"emporia/internal/domain/query"
	"emporia/internal/domain/repository"

	"github.com/google/uuid"
)

// CatalogUsecase is the generic CRUD contract shared by every catalog
// collection. One implementation is instantiated per entity with that
// collection's store and listing policy.
type CatalogUsecase[E any] interface {
	// Get returns one entity with its declared relations populated.
	Get(ctx context.Context, id uuid.UUID) (*E, error)

	// List normalizes the raw paging input against the collection's policy
	// and returns one bounded page.
	List(ctx context.Context, filter repository.Filter, raw query.ListQuery) (*repository.Page[E], error)

	// Create persists a new entity, stamping the acting identity when one is
	// present on the context.
	Create(ctx context.Context, e *E) error

	// Update replaces the stored state of one entity.
	Update(ctx context.Context, id uuid.UUID, e *E) error

	// Delete removes one entity from reads.
	Delete(ctx context.Context, id uuid.UUID) error
}

package postgres

import (
	"context"
	"fmt"

	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/domain/query"
	"emporia/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// relationDeclarer is implemented by models that want their associations
// populated on every read. The store turns the declared names into preloads,
// so the set of joins a collection can perform is fixed at the model.
type relationDeclarer interface {
	Relations() []string
}

// gormStore is the generic repository.Store implementation over one GORM
// model M and its domain entity E. It holds no per-entity logic: everything
// specific to a collection lives in the model declaration and the two mapper
// functions.
type gormStore[M any, E any] struct {
	db         *gorm.DB
	toDomain   func(*M) *E
	fromDomain func(*E) *M
}

// NewStore builds a Store for one collection. The mappers convert between the
// persistence model and the domain entity; fromDomain must map scalar columns
// only, relations are read-only and resolved by the store.
func NewStore[M any, E any](db *gorm.DB, toDomain func(*M) *E, fromDomain func(*E) *M) repository.Store[E] {
	return &gormStore[M, E]{
		db:         db,
		toDomain:   toDomain,
		fromDomain: fromDomain,
	}
}

// withRelations applies the model's declared preloads to a query. A dangling
// reference simply loads no row, so the mapped relation pointer stays nil.
func (s *gormStore[M, E]) withRelations(tx *gorm.DB) *gorm.DB {
	var m M
	if decl, ok := any(m).(relationDeclarer); ok {
		for _, rel := range decl.Relations() {
			tx = tx.Preload(rel)
		}
	}

	return tx
}

// applyFilter binds the filter as a conjunction of parameterized equality
// conditions.
func applyFilter(tx *gorm.DB, filter repository.Filter) *gorm.DB {
	if len(filter) == 0 {
		return tx
	}

	return tx.Where(map[string]any(filter))
}

func (s *gormStore[M, E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var m M
	err := s.withRelations(s.db.WithContext(ctx)).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find record by id")
	}

	return s.toDomain(&m), nil
}

func (s *gormStore[M, E]) FindOne(ctx context.Context, filter repository.Filter) (*E, error) {
	var m M
	err := applyFilter(s.withRelations(s.db.WithContext(ctx)), filter).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find record")
	}

	return s.toDomain(&m), nil
}

func (s *gormStore[M, E]) FindMany(ctx context.Context, filter repository.Filter) ([]*E, error) {
	var models []*M
	err := applyFilter(s.withRelations(s.db.WithContext(ctx)), filter).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	items := make([]*E, 0, len(models))
	for _, m := range models {
		items = append(items, s.toDomain(m))
	}

	return items, nil
}

// Paginate counts the full filtered set and loads one bounded page of it.
// The count runs without preloads: TotalCount must not depend on the page
// window or the relations.
func (s *gormStore[M, E]) Paginate(ctx context.Context, filter repository.Filter, desc query.Descriptor) (*repository.Page[E], error) {
	var total int64
	err := applyFilter(s.db.WithContext(ctx).Model(new(M)), filter).
		Count(&total).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count records")
	}

	var models []*M
	// desc comes out of query.Normalize, so OrderBy is a member of the
	// collection's allow-list and safe to place in the ORDER BY clause.
	err = applyFilter(s.withRelations(s.db.WithContext(ctx)), filter).
		Order(fmt.Sprintf("%s %s", desc.OrderBy, desc.Order)).
		Limit(desc.PerPage).
		Offset(desc.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load page")
	}

	items := make([]*E, 0, len(models))
	for _, m := range models {
		items = append(items, s.toDomain(m))
	}

	return &repository.Page[E]{
		Items:      items,
		TotalCount: total,
		Page:       desc.Page,
		PerPage:    desc.PerPage,
	}, nil
}

func (s *gormStore[M, E]) Create(ctx context.Context, e *E) error {
	m := s.fromDomain(e)

	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("record already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationRejected.WrapMessage("invalid reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationRejected.WrapMessage("missing required field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create record")
	}

	// Hand back generated values (id, timestamps) through the entity.
	*e = *s.toDomain(m)

	return nil
}

func (s *gormStore[M, E]) Update(ctx context.Context, id uuid.UUID, e *E) error {
	m := s.fromDomain(e)

	result := s.db.WithContext(ctx).
		Model(new(M)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at", "created_by", "deleted_at").
		Updates(m)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("record already exists")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationRejected.WrapMessage("invalid reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *gormStore[M, E]) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

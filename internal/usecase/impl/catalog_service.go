package impl

import (
	"context"
	"fmt"
	"log/slog"

	"emporia/config"
	deliverycontext "emporia/internal/delivery/context"
	"emporia/internal/domain/entity"
	"emporia/internal/domain/query"
	"emporia/internal/domain/repository"
	"emporia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// auditCreated / auditUpdated are satisfied by every entity embedding
// entity.Audit. The service stamps the acting identity through them without
// knowing the concrete entity.
type auditCreated interface {
	StampCreated(by uuid.UUID)
}

type auditUpdated interface {
	StampUpdated(by uuid.UUID)
}

// catalogService implements CatalogUsecase for one collection. All catalog
// collections share this code; only the store, the listing policy, and the
// entity type differ.
type catalogService[E any] struct {
	store  repository.Store[E]
	policy query.Policy
	logger *slog.Logger
}

// NewCatalogService builds the shared CRUD usecase for one collection.
func NewCatalogService[E any](store repository.Store[E], policy query.Policy, logger *slog.Logger) usecase.CatalogUsecase[E] {
	return &catalogService[E]{
		store:  store,
		policy: policy,
		logger: logger,
	}
}

func (srv *catalogService[E]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService[E]) Get(ctx context.Context, id uuid.UUID) (*E, error) {
	item, err := srv.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to load record")
	}

	return item, nil
}

func (srv *catalogService[E]) List(ctx context.Context, filter repository.Filter, raw query.ListQuery) (*repository.Page[E], error) {
	desc := query.Normalize(raw, srv.policy)

	page, err := srv.store.Paginate(ctx, filter, desc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	return page, nil
}

func (srv *catalogService[E]) Create(ctx context.Context, e *E) error {
	if identity, ok := deliverycontext.GetIdentity(ctx); ok {
		if stamper, ok := any(e).(auditCreated); ok {
			stamper.StampCreated(identity.UserID)
		}
	}

	if err := srv.store.Create(ctx, e); err != nil {
		return err
	}

	srv.log(ctx).Info("Record created", slog.String("collection", srv.collection()))

	return nil
}

func (srv *catalogService[E]) Update(ctx context.Context, id uuid.UUID, e *E) error {
	if identity, ok := deliverycontext.GetIdentity(ctx); ok {
		if stamper, ok := any(e).(auditUpdated); ok {
			stamper.StampUpdated(identity.UserID)
		}
	}

	if err := srv.store.Update(ctx, id, e); err != nil {
		return err
	}

	srv.log(ctx).Info("Record updated", slog.String("collection", srv.collection()), slog.Any("id", id))

	return nil
}

func (srv *catalogService[E]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.store.Delete(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Record deleted", slog.String("collection", srv.collection()), slog.Any("id", id))

	return nil
}

// collection names the entity type for log lines.
func (srv *catalogService[E]) collection() string {
	var e E

	return fmt.Sprintf("%T", e)
}

// Listing policies. Each collection declares its sortable columns once; the
// ceilings come from configuration and apply everywhere.
func policyFor(cfg *config.Config, allowedOrderBy ...string) query.Policy {
	policy := query.Policy{AllowedOrderBy: allowedOrderBy}
	if cfg != nil && cfg.Pagination != nil {
		policy.DefaultPerPage = cfg.Pagination.DefaultPerPage
		policy.MaxPerPage = cfg.Pagination.MaxPerPage
		policy.MaxPage = cfg.Pagination.MaxPage
	}

	return policy
}

// NewBannerUsecase is the constructor for the banners CRUD usecase.
func NewBannerUsecase(store repository.Store[entity.Banner], cfg *config.Config, logger *slog.Logger) usecase.CatalogUsecase[entity.Banner] {
	return NewCatalogService(store, policyFor(cfg, "created_at", "updated_at", "title"), logger)
}

// NewCategoryUsecase is the constructor for the categories CRUD usecase.
func NewCategoryUsecase(store repository.Store[entity.Category], cfg *config.Config, logger *slog.Logger) usecase.CatalogUsecase[entity.Category] {
	return NewCatalogService(store, policyFor(cfg, "created_at", "updated_at", "name", "slug"), logger)
}

// NewCountryUsecase is the constructor for the countries CRUD usecase.
func NewCountryUsecase(store repository.Store[entity.Country], cfg *config.Config, logger *slog.Logger) usecase.CatalogUsecase[entity.Country] {
	return NewCatalogService(store, policyFor(cfg, "created_at", "name", "iso2"), logger)
}

// NewNotificationUsecase is the constructor for the notifications CRUD usecase.
func NewNotificationUsecase(store repository.Store[entity.Notification], cfg *config.Config, logger *slog.Logger) usecase.CatalogUsecase[entity.Notification] {
	return NewCatalogService(store, policyFor(cfg, "created_at", "title"), logger)
}

package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "emporia/internal/delivery/context"
	"emporia/internal/delivery/http/response"
	"emporia/internal/domain/entity"
	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/domain/query"
	"emporia/internal/domain/repository"
	"emporia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListFilterFunc derives the mandatory listing filter for a collection from
// the request. Collections without one list unfiltered.
type ListFilterFunc func(c echo.Context) repository.Filter

// CrudHandler serves the shared CRUD surface of one catalog collection. The
// per-collection differences (store, policy, filter) are injected; the HTTP
// plumbing is written once.
type CrudHandler[E any] struct {
	uc         usecase.CatalogUsecase[E]
	logger     *slog.Logger
	name       string
	listFilter ListFilterFunc
}

// NewCrudHandler builds the handler for one collection. name appears in
// response messages only.
func NewCrudHandler[E any](uc usecase.CatalogUsecase[E], logger *slog.Logger, name string, listFilter ListFilterFunc) *CrudHandler[E] {
	return &CrudHandler[E]{
		uc:         uc,
		logger:     logger,
		name:       name,
		listFilter: listFilter,
	}
}

// Get returns one record with its relations populated.
func (h *CrudHandler[E]) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return translateStoreError(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// List returns one bounded page of the collection.
func (h *CrudHandler[E]) List(c echo.Context) error {
	var raw query.ListQuery
	if err := c.Bind(&raw); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paging input")
	}

	var filter repository.Filter
	if h.listFilter != nil {
		filter = h.listFilter(c)
	}

	page, err := h.uc.List(c.Request().Context(), filter, raw)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Create persists a new record.
func (h *CrudHandler[E]) Create(c echo.Context) error {
	item := new(E)
	if err := c.Bind(item); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid "+h.name+" input")
	}

	if err := h.uc.Create(c.Request().Context(), item); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Created successfully")
}

// Update replaces the stored state of one record.
func (h *CrudHandler[E]) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item := new(E)
	if err := c.Bind(item); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid "+h.name+" input")
	}

	if err := h.uc.Update(c.Request().Context(), id, item); err != nil {
		return translateStoreError(err)
	}

	return response.Success(c, http.StatusOK, item, "Updated successfully")
}

// Delete removes one record from reads.
func (h *CrudHandler[E]) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return translateStoreError(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Deleted successfully"}, "Deleted successfully")
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationRejected.WithDetails("id must be a valid UUID")
	}

	return id, nil
}

// translateStoreError maps the store's not-found sentinel onto the response
// vocabulary; everything else passes through for the error middleware.
func translateStoreError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrNotFound
	}

	return errors.WithStack(err)
}

// Collection handler constructors, one per catalog entity.

// NewBannerHandler is the constructor for the banners handler.
func NewBannerHandler(uc usecase.CatalogUsecase[entity.Banner], logger *slog.Logger) *CrudHandler[entity.Banner] {
	return NewCrudHandler(uc, logger, "banner", nil)
}

// NewCategoryHandler is the constructor for the categories handler.
func NewCategoryHandler(uc usecase.CatalogUsecase[entity.Category], logger *slog.Logger) *CrudHandler[entity.Category] {
	return NewCrudHandler(uc, logger, "category", nil)
}

// NewCountryHandler is the constructor for the countries handler.
func NewCountryHandler(uc usecase.CatalogUsecase[entity.Country], logger *slog.Logger) *CrudHandler[entity.Country] {
	return NewCrudHandler(uc, logger, "country", nil)
}

// NewNotificationHandler is the constructor for the notifications handler.
// Listing is always scoped to the caller's own notifications.
func NewNotificationHandler(uc usecase.CatalogUsecase[entity.Notification], logger *slog.Logger) *CrudHandler[entity.Notification] {
	return NewCrudHandler(uc, logger, "notification", func(c echo.Context) repository.Filter {
		identity, ok := deliverycontext.GetIdentity(c.Request().Context())
		if !ok {
			return nil
		}

		return repository.Filter{"recipient_id": identity.UserID}
	})
}

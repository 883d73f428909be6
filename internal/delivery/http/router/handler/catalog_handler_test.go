package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "emporia/internal/delivery/context"
	"emporia/internal/domain/entity"
	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/domain/query"
	"emporia/internal/domain/repository"
	mockusecase "emporia/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestCrudHandler_Get_InvalidID(t *testing.T) {
	t.Parallel()

	h := NewCountryHandler(mockusecase.NewMockCatalogUsecase[entity.Country](t), testLogger())
	c, _ := newCatalogContext(t, http.MethodGet, "/countries/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_REJECTED", appErr.ErrorCode())
}

func TestCrudHandler_Get_MissTranslatesToNotFound(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	uc := mockusecase.NewMockCatalogUsecase[entity.Country](t)
	uc.EXPECT().Get(mock.Anything, id).Return(nil, repository.ErrNotFound)

	h := NewCountryHandler(uc, testLogger())
	c, _ := newCatalogContext(t, http.MethodGet, "/countries/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := h.Get(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestCrudHandler_List_BindsPagingInput(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockCatalogUsecase[entity.Country](t)
	uc.EXPECT().List(mock.Anything, mock.Anything, query.ListQuery{
		Page:    3,
		PerPage: 10,
		OrderBy: "name",
		Order:   "desc",
	}).Return(&repository.Page[entity.Country]{
		Items:      []*entity.Country{{ID: uuid.New(), Name: "Japan", ISO2: "JP"}},
		TotalCount: 41,
		Page:       3,
		PerPage:    10,
	}, nil)

	h := NewCountryHandler(uc, testLogger())
	c, rec := newCatalogContext(t, http.MethodGet, "/countries?page=3&perPage=10&orderBy=name&order=desc", "")

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"totalCount":41`)
	assert.Contains(t, body, `"iso2":"JP"`)
}

func TestCrudHandler_Create(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockCatalogUsecase[entity.Country](t)
	uc.EXPECT().Create(mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		country, ok := args.Get(1).(*entity.Country)
		require.True(t, ok)
		assert.Equal(t, "Japan", country.Name)
		assert.Equal(t, "JP", country.ISO2)
	}).Return(nil)

	h := NewCountryHandler(uc, testLogger())
	c, rec := newCatalogContext(t, http.MethodPost, "/countries",
		`{"name":"Japan","iso2":"JP","dialCode":"+81","active":true}`)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCrudHandler_Update_Miss(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	uc := mockusecase.NewMockCatalogUsecase[entity.Country](t)
	uc.EXPECT().Update(mock.Anything, id, mock.Anything).Return(repository.ErrNotFound)

	h := NewCountryHandler(uc, testLogger())
	c, _ := newCatalogContext(t, http.MethodPut, "/countries/"+id.String(), `{"name":"Japan"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := h.Update(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestCrudHandler_Delete(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	uc := mockusecase.NewMockCatalogUsecase[entity.Country](t)
	uc.EXPECT().Delete(mock.Anything, id).Return(nil)

	h := NewCountryHandler(uc, testLogger())
	c, rec := newCatalogContext(t, http.MethodDelete, "/countries/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deleted successfully")
}

func TestNotificationHandler_List_ScopesToCaller(t *testing.T) {
	t.Parallel()

	callerID := uuid.New()

	uc := mockusecase.NewMockCatalogUsecase[entity.Notification](t)
	uc.EXPECT().List(mock.Anything, repository.Filter{"recipient_id": callerID}, mock.Anything).
		Return(&repository.Page[entity.Notification]{Page: 1, PerPage: 25}, nil)

	h := NewNotificationHandler(uc, testLogger())
	c, rec := newCatalogContext(t, http.MethodGet, "/notifications", "")

	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithIdentity(req.Context(), deliverycontext.Identity{
		UserID: callerID,
		Role:   entity.RoleCustomer,
	})))

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

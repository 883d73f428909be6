package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "emporia/internal/delivery/context"
	"emporia/internal/domain/entity"
	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/domain/service"
	mockservice "emporia/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(mockservice.NewMockTokenService(t), discardLogger())

	err := m.Authenticate(func(echo.Context) error { return nil })(newTestContext(t, ""))

	assertErrorCode(t, err, "UNAUTHENTICATED")
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(mockservice.NewMockTokenService(t), discardLogger())

	err := m.Authenticate(func(echo.Context) error { return nil })(newTestContext(t, "Basic dXNlcjpwYXNz"))

	assertErrorCode(t, err, "UNAUTHENTICATED")
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().VerifyAccess("bad-token").Return(nil, errors.New("token has expired"))

	m := NewAuthMiddleware(tokenSvc, discardLogger())

	err := m.Authenticate(func(echo.Context) error { return nil })(newTestContext(t, "Bearer bad-token"))

	assertErrorCode(t, err, "UNAUTHENTICATED")
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	sessionID := uuid.New()

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().VerifyAccess("good-token").Return(&service.TokenClaims{
		UserID:    userID,
		Role:      entity.RoleAdmin,
		Kind:      service.TokenKindAccess,
		SessionID: sessionID,
	}, nil)

	m := NewAuthMiddleware(tokenSvc, discardLogger())
	c := newTestContext(t, "Bearer good-token")

	var seen deliverycontext.Identity
	err := m.Authenticate(func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c.Request().Context())
		require.True(t, ok)
		seen = identity

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, entity.RoleAdmin, seen.Role)
	assert.Equal(t, sessionID, seen.SessionID)
	assert.Equal(t, string(service.TokenKindAccess), seen.TokenKind)
	assert.Equal(t, "good-token", RawToken(c))
}

func TestAuthenticateRefresh_UsesRefreshVerifier(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().VerifyRefresh("refresh-token").Return(&service.TokenClaims{
		UserID: uuid.New(),
		Role:   entity.RoleCustomer,
		Kind:   service.TokenKindRefresh,
	}, nil)

	m := NewAuthMiddleware(tokenSvc, discardLogger())

	called := false
	err := m.AuthenticateRefresh(func(echo.Context) error {
		called = true

		return nil
	})(newTestContext(t, "Bearer refresh-token"))

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireRoles(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		role     entity.RoleSlug
		wantCode string
	}{
		{name: "member role passes", role: entity.RoleAdmin},
		{name: "super admin is enumerated not implied", role: entity.RoleSuperAdmin},
		{name: "customer is rejected", role: entity.RoleCustomer, wantCode: "FORBIDDEN"},
		{name: "provider is rejected", role: entity.RoleProvider, wantCode: "FORBIDDEN"},
	}

	m := NewAuthMiddleware(mockservice.NewMockTokenService(t), discardLogger())
	guard := m.RequireRoles(entity.RoleSuperAdmin, entity.RoleAdmin)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newTestContext(t, "")
			req := c.Request()
			c.SetRequest(req.WithContext(deliverycontext.WithIdentity(req.Context(), deliverycontext.Identity{
				UserID: uuid.New(),
				Role:   tc.role,
			})))

			err := guard(func(echo.Context) error { return nil })(c)

			if tc.wantCode == "" {
				require.NoError(t, err)

				return
			}
			assertErrorCode(t, err, tc.wantCode)
		})
	}
}

func TestRequireRoles_MissingIdentity(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(mockservice.NewMockTokenService(t), discardLogger())

	err := m.RequireRoles(entity.RoleAdmin)(func(echo.Context) error { return nil })(newTestContext(t, ""))

	assertErrorCode(t, err, "FORBIDDEN")
}

// Package middleware contains the HTTP guard chain: authentication,
// role policy, IP policy, and error rendering.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "emporia/internal/delivery/context"
	"emporia/internal/domain/entity"
	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// keyRawToken carries the raw bearer token past the guard so the refresh and
// logout handlers can hand it to the usecase.
const keyRawToken = "rawToken"

// AuthMiddleware provides the token guards and the role policy.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", domainerrors.ErrUnauthenticated.WithDetails("Authorization header must carry a Bearer token")
	}

	return token, nil
}

// RawToken returns the bearer token stored by a guard, or empty.
func RawToken(c echo.Context) string {
	token, _ := c.Get(keyRawToken).(string)

	return token
}

// Authenticate validates an access token and attaches the verified identity
// to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.guard(next, m.tokenSvc.VerifyAccess)
}

// AuthenticateRefresh validates a refresh token. An access token presented
// here fails the kind check even though it is otherwise well formed.
func (m *AuthMiddleware) AuthenticateRefresh(next echo.HandlerFunc) echo.HandlerFunc {
	return m.guard(next, m.tokenSvc.VerifyRefresh)
}

func (m *AuthMiddleware) guard(next echo.HandlerFunc, verify func(string) (*service.TokenClaims, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := BearerToken(c)
		if err != nil {
			return err
		}

		claims, err := verify(token)
		if err != nil {
			// The declassified reason goes to the log; the caller only sees
			// a generic unauthenticated response.
			m.logger.Warn("Token rejected",
				slog.String("path", c.Request().URL.Path), slog.Any("error", err))

			return domainerrors.ErrUnauthenticated
		}

		identity := deliverycontext.Identity{
			UserID:    claims.UserID,
			Role:      claims.Role,
			SessionID: claims.SessionID,
			TokenKind: string(claims.Kind),
		}

		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithIdentity(req.Context(), identity)))
		c.Set(keyRawToken, token)

		return next(c)
	}
}

// RequireRoles is a middleware factory enforcing flat role membership: the
// identity's role must be one of the enumerated slugs. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRoles(roles ...entity.RoleSlug) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c.Request().Context())
			if !ok {
				return domainerrors.ErrForbidden.WithDetails("role information missing")
			}

			if !allowed.Contains(identity.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

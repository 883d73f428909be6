// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "emporia/internal/delivery/context"
	"emporia/internal/delivery/http/middleware"
	"emporia/internal/delivery/http/response"
	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Channel  string `json:"channel" validate:"omitempty,max=50"`
}

// Login handles the credential login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Channel:  req.Channel,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Refresh mints a new access token against the presented refresh token.
// The refresh guard has already verified the token's signature and kind.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token, err := h.refreshToken(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout revokes the session backing the presented refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := h.refreshToken(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// LogoutAll revokes every session of the calling account.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c.Request().Context())
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	if err := h.uc.LogoutAll(c.Request().Context(), identity.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "All sessions revoked"}, "Logout successful")
}

// Me returns the calling identity's user summary.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c.Request().Context())
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	summary, err := h.uc.Me(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Profile retrieved successfully")
}

// refreshToken recovers the raw refresh token stashed by the guard, falling
// back to header extraction when the handler runs without a guard.
func (h *AuthHandler) refreshToken(c echo.Context) (string, error) {
	if token := middleware.RawToken(c); token != "" {
		return token, nil
	}

	return middleware.BearerToken(c)
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"emporia/internal/domain/entity"
	"emporia/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
	Channel  string
}

// --- Output DTOs ---

// LoginOutput returns the authenticated user and the issued token pair.
type LoginOutput struct {
	User   entity.UserSummary `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

// RefreshOutput returns a fresh access token. The refresh token itself is
// not rotated, so it is deliberately absent here.
type RefreshOutput struct {
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Login verifies credentials and opens a refresh session. A missing user
	// and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh mints a new access token against a valid, still-stored refresh
	// token.
	Refresh(ctx context.Context, rawRefreshToken string) (*RefreshOutput, error)

	// Logout revokes the session backing the presented refresh token.
	Logout(ctx context.Context, rawRefreshToken string) error

	// LogoutAll revokes every session of one account.
	LogoutAll(ctx context.Context, userID uuid.UUID) error

	// Me resolves the caller's identity to its outward-facing summary.
	Me(ctx context.Context, userID uuid.UUID) (*entity.UserSummary, error)
}

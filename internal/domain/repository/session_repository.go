package repository

import (
	"context"

	"emporia/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshSessionRepository persists login sessions keyed by the refresh
// token's digest. Deleting a row revokes the corresponding token.
type RefreshSessionRepository interface {
	Create(ctx context.Context, session *entity.RefreshSession) error

	// FindByTokenHash returns ErrSessionNotFound on a miss and
	// ErrSessionExpired when the row exists but is past its expiry.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshSession, error)

	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}

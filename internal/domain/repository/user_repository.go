package repository

import (
	"context"

	"emporia/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository is the credential-aware view over the users collection used
// by the auth flow. Lookups populate the role relation.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername is a case-sensitive unique lookup. A miss returns
	// ErrUserNotFound; the caller decides how that surfaces.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}

// RoleRepository resolves role records, used at seed time and registration.
type RoleRepository interface {
	FindBySlug(ctx context.Context, slug entity.RoleSlug) (*entity.Role, error)
	Create(ctx context.Context, role *entity.Role) error
}

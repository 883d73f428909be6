package context

import (
	"context"

	"emporia/internal/domain/entity"

	"github.com/google/uuid"
)

// KeyIdentity is the key for storing the authenticated identity in context.
const KeyIdentity ContextKey = "identity"

// Identity is the decoded, verified token identity the guard chain attaches
// to the request context. Handlers and usecases read it; only the guards
// write it.
type Identity struct {
	UserID    uuid.UUID
	Role      entity.RoleSlug
	SessionID uuid.UUID
	TokenKind string
}

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the authenticated identity from the context. The
// second return reports whether a guard attached one.
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(Identity)

	return identity, ok
}

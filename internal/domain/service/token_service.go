// Package service defines the domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"errors"
	"time"

	"emporia/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenKind distinguishes the two token classes. Access and refresh tokens
// are signed with independent secrets, so the kind is both a claim and a key
// selector.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Verification failure reasons. The guard chain collapses all of them into a
// generic Unauthenticated response; the distinction exists for logs and tests.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenWrongKind        = errors.New("token kind does not match the expected kind")
)

// TokenClaims is the decoded identity payload of a verified token.
// Invariant: ExpiresAt is after IssuedAt and Kind never changes after issue.
type TokenClaims struct {
	UserID    uuid.UUID
	Role      entity.RoleSlug
	Kind      TokenKind
	SessionID uuid.UUID // jti; on refresh tokens it identifies the stored session.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is the issuance result handed to a freshly authenticated caller.
type TokenPair struct {
	TokenType    string `json:"tokenType"` // Always "Bearer".
	ExpiresIn    int64  `json:"expiresIn"` // Access token lifetime in seconds.
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService encodes and decodes the signed tokens used by the guard chain.
type TokenService interface {
	// IssuePair mints an access/refresh token pair for a verified identity.
	// The returned session id matches the refresh token's jti claim.
	IssuePair(userID uuid.UUID, role entity.RoleSlug) (*TokenPair, uuid.UUID, error)

	// IssueAccess mints a single access token, used by the refresh flow.
	IssueAccess(userID uuid.UUID, role entity.RoleSlug) (string, error)

	// VerifyAccess validates an access token: signature, expiry, and kind.
	VerifyAccess(token string) (*TokenClaims, error)

	// VerifyRefresh validates a refresh token: signature, expiry, and kind.
	VerifyRefresh(token string) (*TokenClaims, error)

	// HashToken derives the storage-safe digest of a raw token.
	HashToken(token string) string

	// AccessTTL is the configured access token lifetime.
	AccessTTL() time.Duration

	// RefreshTTL is the configured refresh token lifetime.
	RefreshTTL() time.Duration
}

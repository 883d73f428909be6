// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"emporia/config"
	"emporia/internal/domain/entity"
	"emporia/internal/domain/service"
	"emporia/internal/errors"
)

const (
	defaultAccessTTL  = time.Hour          // expiresIn = 3600
	defaultRefreshTTL = 7 * 24 * time.Hour // days-scale, session lifetime
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. Access and refresh tokens are signed with independently
// configured secrets so compromise of one class cannot forge the other.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// jwtClaims is the wire shape of the identity payload.
type jwtClaims struct {
	UID  uuid.UUID `json:"uid"`
	Role string    `json:"role"`
	Kind string    `json:"kind"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return svc, nil
}

// IssuePair creates a new access token and refresh token for a verified
// identity. The refresh token's jti doubles as the stored session id.
func (s *jwtService) IssuePair(userID uuid.UUID, role entity.RoleSlug) (*service.TokenPair, uuid.UUID, error) {
	accessToken, err := s.sign(userID, role, service.TokenKindAccess, uuid.New(), s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, uuid.Nil, errors.Wrap(err, "sign access token")
	}

	sessionID := uuid.New()
	refreshToken, err := s.sign(userID, role, service.TokenKindRefresh, sessionID, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, uuid.Nil, errors.Wrap(err, "sign refresh token")
	}

	return &service.TokenPair{
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTTL.Seconds()),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, sessionID, nil
}

// IssueAccess creates a single new access token, used by the refresh flow.
// The refresh token itself is never reissued here.
func (s *jwtService) IssueAccess(userID uuid.UUID, role entity.RoleSlug) (string, error) {
	token, err := s.sign(userID, role, service.TokenKindAccess, uuid.New(), s.accessTTL, s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return token, nil
}

// VerifyAccess validates a token against the access secret and kind.
func (s *jwtService) VerifyAccess(token string) (*service.TokenClaims, error) {
	return s.verify(token, s.accessSecret, service.TokenKindAccess)
}

// VerifyRefresh validates a token against the refresh secret and kind.
func (s *jwtService) VerifyRefresh(token string) (*service.TokenClaims, error) {
	return s.verify(token, s.refreshSecret, service.TokenKindRefresh)
}

// HashToken derives the SHA-256 hex digest stored in place of raw refresh
// tokens.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// AccessTTL returns the configured access token lifetime.
func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

// RefreshTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(userID uuid.UUID, role entity.RoleSlug, kind service.TokenKind, jti uuid.UUID, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		UID:  userID,
		Role: role.String(),
		Kind: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}

func (s *jwtService) verify(tokenString string, secret []byte, expected service.TokenKind) (*service.TokenClaims, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil {
		return nil, translateJWTError(err)
	}
	if !token.Valid {
		return nil, service.ErrTokenMalformed
	}

	// A well-formed token of the other class fails the signature check above
	// because the secrets differ; the kind claim is still checked so a
	// misrouted token can never cross guard boundaries.
	if service.TokenKind(claims.Kind) != expected {
		return nil, service.ErrTokenWrongKind
	}

	decoded := &service.TokenClaims{
		UserID: claims.UID,
		Role:   entity.RoleSlug(claims.Role),
		Kind:   service.TokenKind(claims.Kind),
	}
	if sid, parseErr := uuid.Parse(claims.ID); parseErr == nil {
		decoded.SessionID = sid
	}
	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}

	return decoded, nil
}

func translateJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return service.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ErrTokenMalformed
	default:
		return service.ErrTokenMalformed
	}
}

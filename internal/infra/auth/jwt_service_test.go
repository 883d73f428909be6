package auth

import (
	"testing"
	"time"

	"emporia/config"
	"emporia/internal/domain/entity"
	"emporia/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndVerifyPair(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	userID := uuid.New()

	pair, sessionID, err := svc.IssuePair(userID, entity.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(3600), pair.ExpiresIn)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, uuid.Nil, sessionID)

	accessClaims, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, entity.RoleSuperAdmin, accessClaims.Role)
	assert.Equal(t, service.TokenKindAccess, accessClaims.Kind)
	assert.True(t, accessClaims.ExpiresAt.After(accessClaims.IssuedAt))

	refreshClaims, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenKindRefresh, refreshClaims.Kind)
	assert.Equal(t, sessionID, refreshClaims.SessionID)
}

func TestJWTService_RejectsCrossKindTokens(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	pair, _, err := svc.IssuePair(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	// A refresh token presented to the access guard fails before expiry,
	// and vice versa.
	claims, err := svc.VerifyAccess(pair.RefreshToken)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)

	claims, err = svc.VerifyRefresh(pair.AccessToken)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_WrongKindWithSharedSigningPath(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	// Forge a refresh-kind token signed with the access secret: the
	// signature verifies, so only the kind claim stands in the way.
	forged, err := jwtSvc.sign(uuid.New(), entity.RoleAdmin, service.TokenKindRefresh, uuid.New(), time.Minute, jwtSvc.accessSecret)
	require.NoError(t, err)

	claims, err := svc.VerifyAccess(forged)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenWrongKind)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	expired, err := jwtSvc.sign(uuid.New(), entity.RoleAdmin, service.TokenKindAccess, uuid.New(), -time.Minute, jwtSvc.accessSecret)
	require.NoError(t, err)

	claims, err := svc.VerifyAccess(expired)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	claims, err := svc.VerifyAccess("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_ConfigValidation(t *testing.T) {
	cfg := &config.Config{}
	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)

	cfg.SecretKey.Access = "same_secret"
	cfg.SecretKey.Refresh = "same_secret"
	svc, err = NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_HashTokenIsStableAndOpaque(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	first := svc.HashToken("some-refresh-token")
	second := svc.HashToken("some-refresh-token")
	other := svc.HashToken("another-refresh-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64) // sha256 hex
}

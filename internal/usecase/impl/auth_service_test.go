package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"emporia/internal/domain/entity"
	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/domain/repository"
	"emporia/internal/domain/service"
	mockRepo "emporia/internal/mocks/repository"
	mockSvc "emporia/internal/mocks/service"
	"emporia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	sessionRepo  *mockRepo.MockRefreshSessionRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager: &mockRepo.PassthroughTransactionManager{
			Factory: &mockRepo.StaticRepositoryFactory{Users: userRepo, Sessions: sessionRepo},
		},
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newActiveUser(slug entity.RoleSlug) *entity.User {
	roleID := uuid.New()

	return &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		Name:         "Alice",
		Status:       entity.UserStatusActive,
		RoleID:       roleID,
		Role:         &entity.Role{ID: roleID, Slug: slug, Name: string(slug)},
		PasswordHash: "stored-hash",
		PasswordSalt: "stored-salt",
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := newActiveUser(entity.RoleAdmin)
	sessionID := uuid.New()
	pair := &service.TokenPair{
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}

	fixtures.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fixtures.hasher.EXPECT().Verify("Secret@123", "stored-salt", "stored-hash").Return(true)
	fixtures.tokenService.EXPECT().IssuePair(user.ID, entity.RoleAdmin).Return(pair, sessionID, nil)
	fixtures.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-digest")
	fixtures.tokenService.EXPECT().RefreshTTL().Return(7 * 24 * time.Hour)

	fixtures.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshSession")).
		Run(func(args mock.Arguments) {
			session := args.Get(1).(*entity.RefreshSession)
			assert.Equal(t, sessionID, session.ID)
			assert.Equal(t, user.ID, session.UserID)
			assert.Equal(t, "refresh-digest", session.TokenHash)
			assert.Equal(t, "web", session.Channel)
			assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), session.ExpiresAt, time.Minute)
		}).
		Return(nil)

	output, err := fixtures.service.Login(ctx, usecase.LoginInput{
		Username: "alice",
		Password: "Secret@123",
		Channel:  "web",
	})
	require.NoError(t, err)
	assert.Equal(t, pair, output.Tokens)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}

func TestAuthService_Login_UnknownUsernameBurnsHash(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	// The hasher still runs so the miss path costs the same as a mismatch.
	fixtures.hasher.EXPECT().Hash("whatever").Return("h", "s", nil)

	_, err := fixtures.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPasswordMatchesUnknownUserError(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := newActiveUser(entity.RoleCustomer)
	fixtures.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fixtures.hasher.EXPECT().Verify("wrong", "stored-salt", "stored-hash").Return(false)

	_, err := fixtures.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})
	// Identical sentinel as the unknown-user path: no account enumeration.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := newActiveUser(entity.RoleCustomer)
	user.Status = entity.UserStatusBlocked

	fixtures.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fixtures.hasher.EXPECT().Verify("Secret@123", "stored-salt", "stored-hash").Return(true)

	_, err := fixtures.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "Secret@123"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := newActiveUser(entity.RoleProvider)
	sessionID := uuid.New()

	fixtures.tokenService.EXPECT().VerifyRefresh("raw-refresh").Return(&service.TokenClaims{
		UserID:    user.ID,
		Role:      entity.RoleProvider,
		Kind:      service.TokenKindRefresh,
		SessionID: sessionID,
	}, nil)
	fixtures.tokenService.EXPECT().HashToken("raw-refresh").Return("digest")
	fixtures.sessionRepo.EXPECT().FindByTokenHash(ctx, "digest").Return(&entity.RefreshSession{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: "digest",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	fixtures.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fixtures.tokenService.EXPECT().IssueAccess(user.ID, entity.RoleProvider).Return("new-access", nil)
	fixtures.tokenService.EXPECT().AccessTTL().Return(time.Hour)

	output, err := fixtures.service.Refresh(ctx, "raw-refresh")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", output.TokenType)
	assert.Equal(t, int64(3600), output.ExpiresIn)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestAuthService_Refresh_TokenVerificationFailure(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenService.EXPECT().VerifyRefresh("bad").Return(nil, service.ErrTokenExpired)

	_, err := fixtures.service.Refresh(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_Refresh_RevokedSession(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	fixtures.tokenService.EXPECT().VerifyRefresh("raw-refresh").Return(&service.TokenClaims{
		UserID: userID,
		Kind:   service.TokenKindRefresh,
	}, nil)
	fixtures.tokenService.EXPECT().HashToken("raw-refresh").Return("digest")
	fixtures.sessionRepo.EXPECT().FindByTokenHash(ctx, "digest").Return(nil, repository.ErrSessionNotFound)

	_, err := fixtures.service.Refresh(ctx, "raw-refresh")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_Refresh_SessionUserMismatch(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenService.EXPECT().VerifyRefresh("raw-refresh").Return(&service.TokenClaims{
		UserID: uuid.New(),
		Kind:   service.TokenKindRefresh,
	}, nil)
	fixtures.tokenService.EXPECT().HashToken("raw-refresh").Return("digest")
	fixtures.sessionRepo.EXPECT().FindByTokenHash(ctx, "digest").Return(&entity.RefreshSession{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	_, err := fixtures.service.Refresh(ctx, "raw-refresh")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_Refresh_DisabledAccount(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := newActiveUser(entity.RoleCustomer)
	user.Status = entity.UserStatusInactive

	fixtures.tokenService.EXPECT().VerifyRefresh("raw-refresh").Return(&service.TokenClaims{
		UserID: user.ID,
		Kind:   service.TokenKindRefresh,
	}, nil)
	fixtures.tokenService.EXPECT().HashToken("raw-refresh").Return("digest")
	fixtures.sessionRepo.EXPECT().FindByTokenHash(ctx, "digest").Return(&entity.RefreshSession{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	fixtures.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := fixtures.service.Refresh(ctx, "raw-refresh")
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenService.EXPECT().VerifyRefresh("raw-refresh").Return(&service.TokenClaims{
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		Kind:      service.TokenKindRefresh,
	}, nil)
	fixtures.tokenService.EXPECT().HashToken("raw-refresh").Return("digest")
	fixtures.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "digest").Return(nil)

	assert.NoError(t, fixtures.service.Logout(ctx, "raw-refresh"))
}

func TestAuthService_Logout_AlreadyRevoked(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenService.EXPECT().VerifyRefresh("raw-refresh").Return(&service.TokenClaims{
		UserID: uuid.New(),
		Kind:   service.TokenKindRefresh,
	}, nil)
	fixtures.tokenService.EXPECT().HashToken("raw-refresh").Return("digest")
	fixtures.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "digest").Return(repository.ErrSessionNotFound)

	err := fixtures.service.Logout(ctx, "raw-refresh")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_LogoutAll(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	fixtures.sessionRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	assert.NoError(t, fixtures.service.LogoutAll(ctx, userID))
}

func TestAuthService_Me(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := newActiveUser(entity.RoleSuperAdmin)
	fixtures.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	summary, err := fixtures.service.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, summary.Username)
	assert.Equal(t, entity.RoleSuperAdmin, summary.Role)

	missing := uuid.New()
	fixtures.userRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	_, err = fixtures.service.Me(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

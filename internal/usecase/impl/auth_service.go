// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "emporia/internal/delivery/context"
	"emporia/internal/domain/entity"
	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/domain/repository"
	"emporia/internal/domain/service"
	"emporia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.RefreshSessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.RefreshSessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the presented credentials and opens a refresh session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a hash so the miss path costs the same as a password
			// mismatch; the response never reveals which one happened.
			_, _, _ = srv.hasher.Hash(input.Password)
			srv.log(ctx).Warn("Login failed: unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Verify(input.Password, user.PasswordSalt, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.CanAuthenticate() {
		srv.log(ctx).Warn("Login rejected: account not active",
			slog.Any("userID", user.ID), slog.String("status", string(user.Status)))

		return nil, domainerrors.ErrAccountDisabled
	}

	pair, sessionID, err := srv.tokenService.IssuePair(user.ID, user.RoleSlug())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token pair")
	}

	session := &entity.RefreshSession{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(pair.RefreshToken),
		Channel:   input.Channel,
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTTL()),
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SessionRepo().Create(ctx, session)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store refresh session")
	}

	srv.log(ctx).Info("Login succeeded",
		slog.Any("userID", user.ID), slog.Any("sessionID", sessionID), slog.String("channel", input.Channel))

	return &usecase.LoginOutput{
		User:   user.Summary(),
		Tokens: pair,
	}, nil
}

// Refresh mints a new access token. The refresh token is accepted only while
// its session row is still stored; the token itself is not rotated.
func (srv *authService) Refresh(ctx context.Context, rawRefreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.VerifyRefresh(rawRefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected: token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(rawRefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			srv.log(ctx).Warn("Refresh rejected: session not usable",
				slog.Any("userID", claims.UserID), slog.Any("error", err))

			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to load refresh session")
	}

	if session.UserID != claims.UserID {
		srv.log(ctx).Error("Refresh rejected: session/claims user mismatch",
			slog.Any("claimsUserID", claims.UserID), slog.Any("sessionUserID", session.UserID))

		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	if !user.CanAuthenticate() {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, err := srv.tokenService.IssueAccess(user.ID, user.RoleSlug())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Access token refreshed", slog.Any("userID", user.ID), slog.Any("sessionID", session.ID))

	return &usecase.RefreshOutput{
		TokenType:   "Bearer",
		ExpiresIn:   int64(srv.tokenService.AccessTTL().Seconds()),
		AccessToken: accessToken,
	}, nil
}

// Logout revokes the session backing the presented refresh token.
func (srv *authService) Logout(ctx context.Context, rawRefreshToken string) error {
	claims, err := srv.tokenService.VerifyRefresh(rawRefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Logout rejected: token verification failed", slog.Any("error", err))

		return domainerrors.ErrUnauthenticated
	}

	err = srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokenService.HashToken(rawRefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			// Already revoked; the token holds no session to end.
			return domainerrors.ErrUnauthenticated
		}

		return errors.Wrap(err, "failed to delete refresh session")
	}

	srv.log(ctx).Info("Logout succeeded", slog.Any("userID", claims.UserID), slog.Any("sessionID", claims.SessionID))

	return nil
}

// LogoutAll revokes every session of one account.
func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete refresh sessions")
	}

	srv.log(ctx).Info("All sessions revoked", slog.Any("userID", userID))

	return nil
}

// Me resolves the authenticated identity to its outward-facing summary.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.UserSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	summary := user.Summary()

	return &summary, nil
}

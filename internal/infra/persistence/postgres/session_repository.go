package postgres

import (
	"context"
	"time"

	"emporia/internal/domain/entity"
	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/domain/repository"
	"emporia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain's RefreshSessionRepository
// interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.RefreshSessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new refresh session, representing an authorized login.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.RefreshSession) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("refresh session already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a session by the stored token digest. A row past
// its expiry is reported as expired rather than returned.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshSession, error) {
	var sessionM model.RefreshSessionModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh session")
	}

	session := toSessionDomain(&sessionM)
	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// DeleteByTokenHash revokes a single session. Deleting a missing row reports
// ErrSessionNotFound so a replayed logout is visible to the caller.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.RefreshSessionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete refresh session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteByUserID revokes every session belonging to one account.
func (repo *sessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RefreshSessionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete refresh sessions for user")
	}

	return nil
}

// DeleteExpired removes every session past its expiry.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.RefreshSessionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete expired refresh sessions")
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM RefreshSessionModel to a domain entity.
func toSessionDomain(data *model.RefreshSessionModel) *entity.RefreshSession {
	if data == nil {
		return nil
	}

	return &entity.RefreshSession{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		Channel:   data.Channel,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromSessionDomain converts a domain RefreshSession to its GORM model.
func fromSessionDomain(data *entity.RefreshSession) *model.RefreshSessionModel {
	if data == nil {
		return nil
	}

	return &model.RefreshSessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		Channel:   data.Channel,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

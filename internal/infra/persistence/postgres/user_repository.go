package postgres

import (
	"context"

	"emporia/internal/domain/entity"
	domainerrors "emporia/internal/domain/errors"
	"emporia/internal/domain/repository"
	"emporia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain's UserRepository interface using GORM.
// The auth flow needs the credential columns and the role relation, so it gets
// its own repository rather than going through the generic store.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency
// inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// withUserRelations applies the preloads declared on the user model.
func (repo *userRepository) withUserRelations(tx *gorm.DB) *gorm.DB {
	for _, rel := range (model.UserModel{}).Relations() {
		tx = tx.Preload(rel)
	}

	return tx
}

// FindByID retrieves a single user by their unique ID with the role populated.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.withUserRelations(repo.db.WithContext(ctx)).
		First(&userM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their unique login identifier.
// The lookup is case-sensitive.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.withUserRelations(repo.db.WithContext(ctx)).
		Where("username = ?", username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationRejected.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationRejected.WrapMessage("invalid role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user record.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").
		Omit("id", "created_at", "created_by", "deleted_at").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// roleRepository implements the domain's RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindBySlug resolves a role record by its stable slug.
func (repo *roleRepository) FindBySlug(ctx context.Context, slug entity.RoleSlug) (*entity.Role, error) {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug.String()).
		First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by slug")
	}

	return toRoleDomain(&roleM), nil
}

// Create persists a new role record.
func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("role slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	role.ID = roleM.ID
	role.CreatedAt = roleM.CreatedAt
	role.UpdatedAt = roleM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Username:          data.Username,
		Email:             data.Email,
		Name:              data.Name,
		Status:            entity.UserStatus(data.Status),
		RoleID:            data.RoleID,
		Role:              toRoleDomain(data.Role),
		PasswordHash:      data.PasswordHash,
		PasswordSalt:      data.PasswordSalt,
		PasswordChangedAt: data.PasswordChangedAt,
		Audit:             toAuditDomain(data.AuditColumns),
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for
// persistence. The role relation is carried by RoleID only.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		Username:          data.Username,
		Email:             data.Email,
		Name:              data.Name,
		Status:            string(data.Status),
		RoleID:            data.RoleID,
		PasswordHash:      data.PasswordHash,
		PasswordSalt:      data.PasswordSalt,
		PasswordChangedAt: data.PasswordChangedAt,
		AuditColumns:      fromAuditDomain(data.Audit),
	}
}

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:    data.ID,
		Slug:  entity.RoleSlug(data.Slug),
		Name:  data.Name,
		Audit: toAuditDomain(data.AuditColumns),
	}
}

// fromRoleDomain converts a domain Role entity to a GORM RoleModel.
func fromRoleDomain(data *entity.Role) *model.RoleModel {
	if data == nil {
		return nil
	}

	return &model.RoleModel{
		ID:           data.ID,
		Slug:         data.Slug.String(),
		Name:         data.Name,
		AuditColumns: fromAuditDomain(data.Audit),
	}
}

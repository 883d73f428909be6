package postgres

import (
	"context"
	"log/slog"
	"time"

	"emporia/config"
	"emporia/internal/domain/entity"
	"emporia/internal/domain/repository"
	"emporia/internal/domain/service"
	"emporia/internal/errors"
	"emporia/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// defaultSuperAdminPassword is used when no seed password is configured. It
// only matters on a fresh database; the seeded account should change it.
const defaultSuperAdminPassword = "Admin@1234"

var seededRoles = []entity.Role{
	{Slug: entity.RoleSuperAdmin, Name: "Super Administrator"},
	{Slug: entity.RoleAdmin, Name: "Administrator"},
	{Slug: entity.RoleProvider, Name: "Provider"},
	{Slug: entity.RoleCustomer, Name: "Customer"},
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.RoleModel{},
		&model.UserModel{},
		&model.RefreshSessionModel{},
		&model.BannerModel{},
		&model.CategoryModel{},
		&model.CountryModel{},
		&model.NotificationModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// Seed ensures the fixed role set exists and that a super-admin account is
// present, so a fresh deployment can be administered immediately. It is
// idempotent: existing records are left untouched.
func Seed(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, cfg *config.Config, logger *slog.Logger) error {
	roleRepo := NewRoleRepository(db)
	userRepo := NewUserRepository(db)

	var superAdminRole *entity.Role
	for i := range seededRoles {
		role, err := ensureRole(ctx, roleRepo, seededRoles[i])
		if err != nil {
			return err
		}
		if role.Slug == entity.RoleSuperAdmin {
			superAdminRole = role
		}
	}

	if _, err := userRepo.FindByUsername(ctx, "superadmin"); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	password := defaultSuperAdminPassword
	if cfg.Auth != nil && cfg.Auth.SeedSuperAdminPassword != "" {
		password = cfg.Auth.SeedSuperAdminPassword
	}

	hash, salt, err := hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed password")
	}

	superAdmin := &entity.User{
		Username:          "superadmin",
		Email:             "superadmin@localhost",
		Name:              "Super Administrator",
		Status:            entity.UserStatusActive,
		RoleID:            superAdminRole.ID,
		PasswordHash:      hash,
		PasswordSalt:      salt,
		PasswordChangedAt: time.Now(),
	}
	if err := userRepo.Create(ctx, superAdmin); err != nil {
		return errors.Wrap(err, "failed to seed super admin user")
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "seeded super admin account",
		slog.String("username", superAdmin.Username),
	)

	return nil
}

func ensureRole(ctx context.Context, repo repository.RoleRepository, seed entity.Role) (*entity.Role, error) {
	role, err := repo.FindBySlug(ctx, seed.Slug)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	role = &entity.Role{Slug: seed.Slug, Name: seed.Name}
	if err := repo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

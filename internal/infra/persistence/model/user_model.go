package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Slug string    `gorm:"type:varchar(50);unique;not null"`
	Name string    `gorm:"type:varchar(100);not null"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// BeforeCreate assigns the primary key when unset.
func (m *RoleModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// UserModel mirrors the 'users' table. The credential columns hold the derived
// password hash and its salt, both hex encoded.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	Username          string    `gorm:"type:varchar(100);unique;not null"`
	Email             string    `gorm:"type:varchar(255);not null"`
	Name              string    `gorm:"type:varchar(100)"`
	Status            string    `gorm:"type:varchar(20);not null"`
	RoleID            uuid.UUID `gorm:"type:uuid;not null"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	PasswordSalt      string    `gorm:"type:varchar(64);not null"`
	PasswordChangedAt time.Time
	AuditColumns
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Role *RoleModel `gorm:"foreignKey:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// Relations lists the associations the store populates on read.
func (UserModel) Relations() []string {
	return []string{"Role"}
}

// BeforeCreate assigns the primary key when unset.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

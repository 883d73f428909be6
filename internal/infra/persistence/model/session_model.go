package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshSessionModel mirrors the 'refresh_sessions' table. Only the SHA-256
// hash of the refresh token is stored; deleting a row revokes the session.
type RefreshSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	Channel   string    `gorm:"type:varchar(20)"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshSessionModel) TableName() string {
	return "refresh_sessions"
}

// BeforeCreate assigns the primary key when unset.
func (m *RefreshSessionModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

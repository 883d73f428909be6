package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BannerModel mirrors the 'banners' table.
type BannerModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	Title      string     `gorm:"type:varchar(255);not null"`
	ImageURL   string     `gorm:"type:text;not null"`
	TargetURL  string     `gorm:"type:text"`
	Active     bool       `gorm:"not null;default:false"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	AuditColumns
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (BannerModel) TableName() string {
	return "banners"
}

// Relations lists the associations the store populates on read.
func (BannerModel) Relations() []string {
	return []string{"Category"}
}

// BeforeCreate assigns the primary key when unset.
func (m *BannerModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// CategoryModel mirrors the 'categories' table. The taxonomy is flat with an
// optional parent, so both directions of the relation are declared.
type CategoryModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name     string     `gorm:"type:varchar(100);not null"`
	Slug     string     `gorm:"type:varchar(100);unique;not null"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	AuditColumns
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Parent   *CategoryModel   `gorm:"foreignKey:ParentID"`
	Children []*CategoryModel `gorm:"foreignKey:ParentID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// Relations lists the associations the store populates on read.
func (CategoryModel) Relations() []string {
	return []string{"Parent", "Children"}
}

// BeforeCreate assigns the primary key when unset.
func (m *CategoryModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// CountryModel mirrors the 'countries' table.
type CountryModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"type:varchar(100);not null"`
	ISO2     string    `gorm:"type:varchar(2);unique;not null"`
	DialCode string    `gorm:"type:varchar(8)"`
	Active   bool      `gorm:"not null;default:true"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// BeforeCreate assigns the primary key when unset.
func (m *CountryModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// NotificationModel mirrors the 'notifications' table. SenderID is nullable:
// system notifications carry no sender.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Body        string     `gorm:"type:text;not null"`
	Channel     string     `gorm:"type:varchar(20);not null"`
	Read        bool       `gorm:"not null;default:false"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	SenderID    *uuid.UUID `gorm:"type:uuid"`
	AuditColumns

	Sender *UserModel `gorm:"foreignKey:SenderID"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// Relations lists the associations the store populates on read.
func (NotificationModel) Relations() []string {
	return []string{"Sender"}
}

// BeforeCreate assigns the primary key when unset.
func (m *NotificationModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

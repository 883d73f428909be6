package postgres

import (
	"emporia/internal/domain/entity"
	"emporia/internal/domain/repository"
	"emporia/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Store constructors for the catalog collections. Each one binds the generic
// store to a model and its mapper pair; nothing else is needed to stand up a
// new collection.

// NewBannerStore is the constructor for the banners store.
func NewBannerStore(db *gorm.DB) repository.Store[entity.Banner] {
	return NewStore(db, toBannerDomain, fromBannerDomain)
}

// NewCategoryStore is the constructor for the categories store.
func NewCategoryStore(db *gorm.DB) repository.Store[entity.Category] {
	return NewStore(db, toCategoryDomain, fromCategoryDomain)
}

// NewCountryStore is the constructor for the countries store.
func NewCountryStore(db *gorm.DB) repository.Store[entity.Country] {
	return NewStore(db, toCountryDomain, fromCountryDomain)
}

// NewNotificationStore is the constructor for the notifications store.
func NewNotificationStore(db *gorm.DB) repository.Store[entity.Notification] {
	return NewStore(db, toNotificationDomain, fromNotificationDomain)
}

// --- Mapper Functions ---
// toXxxDomain maps a loaded model, populated relations included, to a domain
// entity. fromXxxDomain maps scalar columns only: relations are read-only.

func toBannerDomain(data *model.BannerModel) *entity.Banner {
	if data == nil {
		return nil
	}

	return &entity.Banner{
		ID:         data.ID,
		Title:      data.Title,
		ImageURL:   data.ImageURL,
		TargetURL:  data.TargetURL,
		Active:     data.Active,
		CategoryID: data.CategoryID,
		Category:   toCategoryDomain(data.Category),
		Audit:      toAuditDomain(data.AuditColumns),
	}
}

func fromBannerDomain(data *entity.Banner) *model.BannerModel {
	if data == nil {
		return nil
	}

	return &model.BannerModel{
		ID:           data.ID,
		Title:        data.Title,
		ImageURL:     data.ImageURL,
		TargetURL:    data.TargetURL,
		Active:       data.Active,
		CategoryID:   data.CategoryID,
		AuditColumns: fromAuditDomain(data.Audit),
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	children := make([]*entity.Category, 0, len(data.Children))
	for _, child := range data.Children {
		children = append(children, toCategoryDomain(child))
	}

	return &entity.Category{
		ID:       data.ID,
		Name:     data.Name,
		Slug:     data.Slug,
		ParentID: data.ParentID,
		Parent:   toCategoryDomain(data.Parent),
		Children: children,
		Audit:    toAuditDomain(data.AuditColumns),
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		ParentID:     data.ParentID,
		AuditColumns: fromAuditDomain(data.Audit),
	}
}

func toCountryDomain(data *model.CountryModel) *entity.Country {
	if data == nil {
		return nil
	}

	return &entity.Country{
		ID:       data.ID,
		Name:     data.Name,
		ISO2:     data.ISO2,
		DialCode: data.DialCode,
		Active:   data.Active,
		Audit:    toAuditDomain(data.AuditColumns),
	}
}

func fromCountryDomain(data *entity.Country) *model.CountryModel {
	if data == nil {
		return nil
	}

	return &model.CountryModel{
		ID:           data.ID,
		Name:         data.Name,
		ISO2:         data.ISO2,
		DialCode:     data.DialCode,
		Active:       data.Active,
		AuditColumns: fromAuditDomain(data.Audit),
	}
}

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:          data.ID,
		Title:       data.Title,
		Body:        data.Body,
		Channel:     data.Channel,
		Read:        data.Read,
		RecipientID: data.RecipientID,
		SenderID:    data.SenderID,
		Sender:      toUserDomain(data.Sender),
		Audit:       toAuditDomain(data.AuditColumns),
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:           data.ID,
		Title:        data.Title,
		Body:         data.Body,
		Channel:      data.Channel,
		Read:         data.Read,
		RecipientID:  data.RecipientID,
		SenderID:     data.SenderID,
		AuditColumns: fromAuditDomain(data.Audit),
	}
}

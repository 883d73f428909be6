package postgres

import (
	"context"
	"fmt"
	"testing"

	"emporia/internal/domain/entity"
	"emporia/internal/domain/query"
	"emporia/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema. The
// shared-cache DSN keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	return db
}

func createCountry(t *testing.T, store repository.Store[entity.Country], name, iso2 string, active bool) *entity.Country {
	t.Helper()

	country := &entity.Country{Name: name, ISO2: iso2, Active: active}
	require.NoError(t, store.Create(context.Background(), country))

	return country
}

func TestStore_CreateBackfillsGeneratedFields(t *testing.T) {
	store := NewCountryStore(newTestDB(t))

	country := createCountry(t, store, "Portugal", "PT", true)

	assert.NotEqual(t, uuid.Nil, country.ID)
	assert.False(t, country.CreatedAt.IsZero())
}

func TestStore_FindByIDMissingRecord(t *testing.T) {
	store := NewCountryStore(newTestDB(t))

	_, err := store.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_FindOneAndFindManyApplyFilter(t *testing.T) {
	store := NewCountryStore(newTestDB(t))
	ctx := context.Background()

	createCountry(t, store, "Portugal", "PT", true)
	createCountry(t, store, "Spain", "ES", true)
	createCountry(t, store, "Atlantis", "AT", false)

	found, err := store.FindOne(ctx, repository.Filter{"iso2": "ES"})
	require.NoError(t, err)
	assert.Equal(t, "Spain", found.Name)

	_, err = store.FindOne(ctx, repository.Filter{"iso2": "XX"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	active, err := store.FindMany(ctx, repository.Filter{"active": true})
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestStore_PaginateTotalCountIgnoresWindow(t *testing.T) {
	store := NewCountryStore(newTestDB(t))
	ctx := context.Background()

	for i := range 37 {
		createCountry(t, store, fmt.Sprintf("Country %02d", i), fmt.Sprintf("%02d", i), i%2 == 0)
	}

	desc := query.Descriptor{Page: 2, PerPage: 10, OrderBy: "name", Order: query.Ascending}

	page, err := store.Paginate(ctx, nil, desc)
	require.NoError(t, err)
	assert.Equal(t, int64(37), page.TotalCount)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PerPage)

	// The last page is short but the count is unchanged.
	desc.Page = 4
	page, err = store.Paginate(ctx, nil, desc)
	require.NoError(t, err)
	assert.Equal(t, int64(37), page.TotalCount)
	assert.Len(t, page.Items, 7)

	// Filtering changes the count, not just the page contents.
	desc.Page = 1
	page, err = store.Paginate(ctx, repository.Filter{"active": true}, desc)
	require.NoError(t, err)
	assert.Equal(t, int64(19), page.TotalCount)
	assert.Len(t, page.Items, 10)
}

func TestStore_PaginateAppliesOrdering(t *testing.T) {
	store := NewCountryStore(newTestDB(t))
	ctx := context.Background()

	createCountry(t, store, "Malta", "MT", true)
	createCountry(t, store, "Austria", "AT", true)
	createCountry(t, store, "Zambia", "ZM", true)

	desc := query.Descriptor{Page: 1, PerPage: 10, OrderBy: "name", Order: query.Descending}
	page, err := store.Paginate(ctx, nil, desc)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Zambia", page.Items[0].Name)
	assert.Equal(t, "Austria", page.Items[2].Name)
}

func TestStore_PopulatesDeclaredRelations(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryStore(db)
	banners := NewBannerStore(db)
	ctx := context.Background()

	category := &entity.Category{Name: "Promotions", Slug: "promotions"}
	require.NoError(t, categories.Create(ctx, category))

	banner := &entity.Banner{
		Title:      "Summer Sale",
		ImageURL:   "https://cdn.example.com/summer.png",
		Active:     true,
		CategoryID: &category.ID,
	}
	require.NoError(t, banners.Create(ctx, banner))

	loaded, err := banners.FindByID(ctx, banner.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Category)
	assert.Equal(t, "promotions", loaded.Category.Slug)
}

func TestStore_DanglingRelationPopulatesNil(t *testing.T) {
	store := NewNotificationStore(newTestDB(t))
	ctx := context.Background()

	missingSender := uuid.New()
	notification := &entity.Notification{
		Title:       "Order shipped",
		Body:        "Your order is on its way.",
		Channel:     "web",
		RecipientID: uuid.New(),
		SenderID:    &missingSender,
	}
	require.NoError(t, store.Create(ctx, notification))

	loaded, err := store.FindByID(ctx, notification.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.SenderID)
	assert.Nil(t, loaded.Sender)
}

func TestStore_UpdatePersistsZeroValues(t *testing.T) {
	store := NewCountryStore(newTestDB(t))
	ctx := context.Background()

	country := createCountry(t, store, "Portugal", "PT", true)

	country.Active = false
	country.DialCode = "+351"
	require.NoError(t, store.Update(ctx, country.ID, country))

	loaded, err := store.FindByID(ctx, country.ID)
	require.NoError(t, err)
	assert.False(t, loaded.Active)
	assert.Equal(t, "+351", loaded.DialCode)
}

func TestStore_UpdateMissingRecord(t *testing.T) {
	store := NewCountryStore(newTestDB(t))

	country := &entity.Country{Name: "Nowhere", ISO2: "NW"}
	err := store.Update(context.Background(), uuid.New(), country)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_DeleteRemovesFromReads(t *testing.T) {
	store := NewBannerStore(newTestDB(t))
	ctx := context.Background()

	banner := &entity.Banner{Title: "Gone soon", ImageURL: "https://cdn.example.com/x.png"}
	require.NoError(t, store.Create(ctx, banner))

	require.NoError(t, store.Delete(ctx, banner.ID))

	_, err := store.FindByID(ctx, banner.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, banner.ID), repository.ErrNotFound)
}

func TestStore_CategoryPopulatesParentAndChildren(t *testing.T) {
	store := NewCategoryStore(newTestDB(t))
	ctx := context.Background()

	parent := &entity.Category{Name: "Electronics", Slug: "electronics"}
	require.NoError(t, store.Create(ctx, parent))

	child := &entity.Category{Name: "Phones", Slug: "phones", ParentID: &parent.ID}
	require.NoError(t, store.Create(ctx, child))

	loadedChild, err := store.FindByID(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, loadedChild.Parent)
	assert.Equal(t, "electronics", loadedChild.Parent.Slug)

	loadedParent, err := store.FindByID(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, loadedParent.Children, 1)
	assert.Equal(t, "phones", loadedParent.Children[0].Slug)
}

func TestStore_AuditActorsRoundTrip(t *testing.T) {
	store := NewCountryStore(newTestDB(t))
	ctx := context.Background()

	actor := uuid.New()
	country := &entity.Country{Name: "Portugal", ISO2: "PT", Active: true}
	country.StampCreated(actor)
	require.NoError(t, store.Create(ctx, country))

	loaded, err := store.FindByID(ctx, country.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.CreatedBy)
	assert.Equal(t, actor, *loaded.CreatedBy)

	updater := uuid.New()
	loaded.StampUpdated(updater)
	require.NoError(t, store.Update(ctx, loaded.ID, loaded))

	reloaded, err := store.FindByID(ctx, loaded.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.UpdatedBy)
	assert.Equal(t, updater, *reloaded.UpdatedBy)
	assert.Equal(t, actor, *reloaded.CreatedBy)
}

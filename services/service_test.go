package services

import (
	"testing"

	"restaurant-api/models"
	"restaurant-api/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the production
// schema, including the partial unique index on active menu item names.
// The pool is pinned to one connection so every query sees the same
// in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Restaurant{}, &models.MenuItem{}))
	require.NoError(t, db.Exec(`CREATE UNIQUE INDEX idx_menu_items_active_name
		ON menu_items(name, restaurant_id) WHERE deleted = 0`).Error)
	return db
}

func newServices(t *testing.T) (*RestaurantService, *MenuItemService) {
	t.Helper()
	db := newTestDB(t)
	restaurants := NewRestaurantService(repository.NewRestaurantRepository(db))
	menuItems := NewMenuItemService(repository.NewMenuItemRepository(db), restaurants)
	return restaurants, menuItems
}

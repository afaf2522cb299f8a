package config

import (
	"log"
	"os"

	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GetEnv reads an environment variable with a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database, migrates the schema and installs the
// uniqueness constraints the services rely on. Fatal on failure, as there
// is nothing to serve without a store.
func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Restaurant{},
		&models.MenuItem{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Per-restaurant name uniqueness only counts active rows, so a name
	// can be reused after its item is soft-deleted. AutoMigrate cannot
	// express a partial index, hence raw SQL.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_menu_items_active_name
		ON menu_items(name, restaurant_id) WHERE deleted = 0`).Error
	if err != nil {
		log.Fatal("Failed to create menu item unique index:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
	return db
}

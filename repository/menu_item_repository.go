package repository

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

// MenuItemRepository is the only read/write path for menu items. Every
// read excludes soft-deleted rows; nothing here deletes physically.
type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *MenuItemRepository) WithTx(tx *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: tx}
}

// active scopes a query to non-deleted rows.
func (r *MenuItemRepository) active() *gorm.DB {
	return r.DB.Model(&models.MenuItem{}).Where("deleted = ?", false)
}

// FindByRestaurant lists the restaurant's active items with optional
// category and status filters (ANDed when both present), applying the
// page's sort and offset. Returns the rows plus the total match count for
// pagination metadata.
func (r *MenuItemRepository) FindByRestaurant(
	restaurantID uint,
	category *models.Category,
	status *models.Status,
	page models.PageRequest,
) ([]models.MenuItem, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("restaurant_id = ? AND deleted = ?", restaurantID, false)
		if category != nil {
			db = db.Where("category = ?", *category)
		}
		if status != nil {
			db = db.Where("status = ?", *status)
		}
		return db
	}

	var total int64
	if err := filter(r.DB.Model(&models.MenuItem{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.MenuItem
	err := filter(r.DB.Preload("Restaurant")).
		Order(page.Order()).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID fetches an active item with its restaurant preloaded;
// gorm.ErrRecordNotFound for absent or soft-deleted ids.
func (r *MenuItemRepository) FindByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.DB.
		Preload("Restaurant").
		Where("deleted = ?", false).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ExistsByNameAndRestaurant reports whether the restaurant already has an
// active item with the name.
func (r *MenuItemRepository) ExistsByNameAndRestaurant(name string, restaurantID uint) (bool, error) {
	var count int64
	err := r.active().
		Where("name = ? AND restaurant_id = ?", name, restaurantID).
		Count(&count).Error
	return count > 0, err
}

// Save inserts the item when its ID is zero, updates it otherwise.
// Soft delete goes through here too, as an update setting Deleted.
func (r *MenuItemRepository) Save(item *models.MenuItem) error {
	return r.DB.Save(item).Error
}

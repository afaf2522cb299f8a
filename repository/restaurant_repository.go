package repository

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *RestaurantRepository) WithTx(tx *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: tx}
}

// FindByID fetches a restaurant; gorm.ErrRecordNotFound when absent.
func (r *RestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.DB.First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// ExistsByName reports whether any restaurant already uses the name.
func (r *RestaurantRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Restaurant{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// Save inserts the restaurant when its ID is zero, updates it otherwise.
func (r *RestaurantRepository) Save(restaurant *models.Restaurant) error {
	return r.DB.Save(restaurant).Error
}

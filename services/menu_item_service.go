package services

import (
	"errors"

	"restaurant-api/models"
	"restaurant-api/pkg/apperr"
	"restaurant-api/repository"

	"gorm.io/gorm"
)

// MenuItemService enforces the menu-item invariants: the owning
// restaurant must exist (and be open for creation), names are unique per
// restaurant among active items, and soft-deleted items are invisible.
type MenuItemService struct {
	Repo        *repository.MenuItemRepository
	Restaurants *RestaurantService
}

func NewMenuItemService(repo *repository.MenuItemRepository, restaurants *RestaurantService) *MenuItemService {
	return &MenuItemService{Repo: repo, Restaurants: restaurants}
}

// Add creates a menu item under the restaurant. The resolve, closed
// check, duplicate check and insert commit as one transaction; the
// partial unique index over active (name, restaurant_id) pairs backstops
// the duplicate pre-check against concurrent creators.
func (s *MenuItemService) Add(restaurantID uint, name string, price float64, category models.Category) (models.MenuItemResponse, error) {
	var item models.MenuItem
	err := s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		restaurant, err := s.Restaurants.EntityWithTx(tx, restaurantID)
		if err != nil {
			return err
		}
		if !restaurant.IsOpen {
			return apperr.RestaurantClosed("Cannot add menu items to a closed restaurant")
		}
		exists, err := repo.ExistsByNameAndRestaurant(name, restaurantID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Duplicate("Menu item with name '%s' already exists for this restaurant", name)
		}
		item = models.MenuItem{
			RestaurantID: restaurant.ID,
			Name:         name,
			Price:        price,
			Category:     category,
			Status:       models.StatusAvailable,
		}
		if err := repo.Save(&item); err != nil {
			return err
		}
		item.Restaurant = *restaurant
		return nil
	})
	if err != nil {
		if isDuplicateKey(err) {
			return models.MenuItemResponse{}, apperr.Duplicate("Menu item with name '%s' already exists for this restaurant", name)
		}
		return models.MenuItemResponse{}, err
	}
	return item.ToResponse(), nil
}

// List returns one page of the restaurant's active items. The restaurant
// is resolved first so an unknown id fails with NotFound rather than an
// empty page.
func (s *MenuItemService) List(
	restaurantID uint,
	category *models.Category,
	status *models.Status,
	page models.PageRequest,
) (models.Page[models.MenuItemResponse], error) {
	if _, err := s.Restaurants.Entity(restaurantID); err != nil {
		return models.Page[models.MenuItemResponse]{}, err
	}

	items, total, err := s.Repo.FindByRestaurant(restaurantID, category, status, page)
	if err != nil {
		return models.Page[models.MenuItemResponse]{}, err
	}

	responses := make([]models.MenuItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, items[i].ToResponse())
	}
	return models.NewPage(responses, page, total), nil
}

// UpdateStatus sets the availability of an active item. The restaurant
// being closed does not block this.
func (s *MenuItemService) UpdateStatus(menuItemID uint, status models.Status) (models.MenuItemResponse, error) {
	var item *models.MenuItem
	err := s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		var err error
		item, err = s.findActive(repo, menuItemID)
		if err != nil {
			return err
		}
		item.Status = status
		return repo.Save(item)
	})
	if err != nil {
		return models.MenuItemResponse{}, err
	}
	return item.ToResponse(), nil
}

// Delete soft-deletes an active item. The row stays for history but no
// read path surfaces it again, so a repeat call fails with NotFound.
func (s *MenuItemService) Delete(menuItemID uint) error {
	return s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		item, err := s.findActive(repo, menuItemID)
		if err != nil {
			return err
		}
		item.Deleted = true
		return repo.Save(item)
	})
}

func (s *MenuItemService) findActive(repo *repository.MenuItemRepository, id uint) (*models.MenuItem, error) {
	item, err := repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Menu item not found with id: %d", id)
	}
	return item, err
}

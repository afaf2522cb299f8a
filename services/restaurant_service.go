package services

import (
	"errors"

	"restaurant-api/models"
	"restaurant-api/pkg/apperr"
	"restaurant-api/repository"

	"gorm.io/gorm"
)

// RestaurantService enforces restaurant-level invariants: global name
// uniqueness and existence.
type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// Create registers a new restaurant, open by default. The name pre-check
// runs inside the same transaction as the insert; the unique index on
// restaurants.name backstops concurrent creators racing past the check.
func (s *RestaurantService) Create(name, location string) (models.RestaurantResponse, error) {
	var restaurant models.Restaurant
	err := s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		exists, err := repo.ExistsByName(name)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Duplicate("Restaurant with name '%s' already exists", name)
		}
		restaurant = models.Restaurant{Name: name, Location: location, IsOpen: true}
		return repo.Save(&restaurant)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return models.RestaurantResponse{}, apperr.Duplicate("Restaurant with name '%s' already exists", name)
		}
		return models.RestaurantResponse{}, err
	}
	return restaurant.ToResponse(), nil
}

// GetByID returns the transport shape of a restaurant.
func (s *RestaurantService) GetByID(id uint) (models.RestaurantResponse, error) {
	restaurant, err := s.entity(s.Repo, id)
	if err != nil {
		return models.RestaurantResponse{}, err
	}
	return restaurant.ToResponse(), nil
}

// UpdateOpenStatus flips the open flag. Both directions are always legal.
func (s *RestaurantService) UpdateOpenStatus(id uint, isOpen bool) (models.RestaurantResponse, error) {
	var restaurant *models.Restaurant
	err := s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		var err error
		restaurant, err = s.entity(repo, id)
		if err != nil {
			return err
		}
		restaurant.IsOpen = isOpen
		return repo.Save(restaurant)
	})
	if err != nil {
		return models.RestaurantResponse{}, err
	}
	return restaurant.ToResponse(), nil
}

// Entity resolves the raw restaurant row, for composition by other
// services.
func (s *RestaurantService) Entity(id uint) (*models.Restaurant, error) {
	return s.entity(s.Repo, id)
}

// EntityWithTx is Entity inside a caller-owned transaction.
func (s *RestaurantService) EntityWithTx(tx *gorm.DB, id uint) (*models.Restaurant, error) {
	return s.entity(s.Repo.WithTx(tx), id)
}

func (s *RestaurantService) entity(repo *repository.RestaurantRepository, id uint) (*models.Restaurant, error) {
	restaurant, err := repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Restaurant not found with id: %d", id)
	}
	return restaurant, err
}

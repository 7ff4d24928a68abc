package service

import (
	"fmt"

	"food-ordering-api/models"
	"food-ordering-api/policy"

	"gorm.io/gorm"
)

// RestaurantService serves restaurant reads. Region scoping is applied
// as a silent predicate: a restaurant outside the caller's region does
// not exist as far as the caller can tell.
type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

func scoped(query *gorm.DB, user models.User) *gorm.DB {
	if region, ok := policy.RegionScope(user); ok {
		query = query.Where("region = ?", region)
	}
	return query
}

// List returns the restaurants visible to the user.
func (s *RestaurantService) List(user models.User) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := scoped(s.db, user).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Get returns one restaurant with its menu, or not-found when the ID is
// unknown or out of the caller's region.
func (s *RestaurantService) Get(user models.User, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := scoped(s.db.Preload("MenuItems"), user).
		Where("id = ?", id).First(&restaurant).Error
	if err != nil {
		return nil, fmt.Errorf("%w: restaurant", ErrNotFound)
	}
	return &restaurant, nil
}

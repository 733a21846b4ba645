package repository

import (
	"context"

	"foodcritic/internal/domain/entity"
	"foodcritic/internal/errors"
)

// ErrRestaurantNotFound is returned when no single restaurant matches a lookup.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the interface for restaurant-related database operations.
type RestaurantRepository interface {
	// FindAll returns every restaurant ordered by phone number.
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	// FindByID retrieves a restaurant by its id.
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)

	// FindByPhoneNumber retrieves the restaurant registered with the given phone number.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Restaurant, error)

	// Create persists a new restaurant and assigns its id.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Delete removes the restaurant and, through the storage cascade, its reviews.
	Delete(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error)
}

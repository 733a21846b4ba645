package usecase

import (
	"context"

	"foodcritic/internal/domain/entity"
)

// RestaurantUsecase defines the interface for restaurant use cases
type RestaurantUsecase interface {
	// FindAll returns every restaurant ordered by phone number
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	// FindByID retrieves a restaurant or ErrRestaurantNotFound
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)

	// FindByPhoneNumber retrieves the restaurant holding phoneNumber or ErrRestaurantNotFound
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Restaurant, error)

	// Create validates and persists a new restaurant
	Create(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error)

	// Delete removes a restaurant together with its reviews; a restaurant without an id is a no-op returning nil
	Delete(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error)

	// ReviewQRCode renders a PNG QR code linking to the restaurant's reviews
	ReviewQRCode(ctx context.Context, id int64) ([]byte, error)
}

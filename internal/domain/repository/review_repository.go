package repository

import (
	"context"

	"foodcritic/internal/domain/entity"
	"foodcritic/internal/errors"
)

// ErrReviewNotFound is returned when no single review matches a lookup.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review-related database operations.
// Reviews are returned with their User and Restaurant references populated.
type ReviewRepository interface {
	// FindAll returns every review ordered by id.
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// FindByID retrieves a review by its id.
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// FindAllByUserID returns the reviews written by the given user.
	FindAllByUserID(ctx context.Context, userID int64) ([]*entity.Review, error)

	// FindAllByRestaurantID returns the reviews of the given restaurant.
	FindAllByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Review, error)

	// FindByRestaurantIDAndUserID retrieves the review a user wrote for a restaurant.
	FindByRestaurantIDAndUserID(ctx context.Context, restaurantID, userID int64) (*entity.Review, error)

	// Create persists a new review and assigns its id.
	Create(ctx context.Context, review *entity.Review) error

	// Delete removes the review by id.
	Delete(ctx context.Context, review *entity.Review) (*entity.Review, error)
}

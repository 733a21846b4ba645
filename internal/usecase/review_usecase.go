package usecase

import (
	"context"

	"foodcritic/internal/domain/entity"
)

// ReviewUsecase defines the interface for review use cases
type ReviewUsecase interface {
	// FindAll returns every review ordered by id
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// FindByID retrieves a review or ErrReviewNotFound
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// FindAllByUserID returns the reviews written by a user
	FindAllByUserID(ctx context.Context, userID int64) ([]*entity.Review, error)

	// FindAllByRestaurantID returns the reviews of a restaurant
	FindAllByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Review, error)

	// Create validates and persists a review whose user and restaurant are already resolved
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)

	// Delete removes a review; a review without an id is a no-op returning nil
	Delete(ctx context.Context, review *entity.Review) (*entity.Review, error)
}

package postgres

import (
	"context"
	"log/slog"

	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/errors"
	"foodcritic/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB, logger *slog.Logger) repository.ReviewRepository {
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll returns every review ordered by id.
func (repo *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	return repo.findAll(ctx, "failed to find all reviews", "")
}

// FindByID retrieves a review by its id.
func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.preloaded(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindAllByUserID returns the reviews written by the given user.
func (repo *reviewRepository) FindAllByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	return repo.findAll(ctx, "failed to find reviews by user", "user_id = ?", userID)
}

// FindAllByRestaurantID returns the reviews of the given restaurant.
func (repo *reviewRepository) FindAllByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Review, error) {
	return repo.findAll(ctx, "failed to find reviews by restaurant", "restaurant_id = ?", restaurantID)
}

// FindByRestaurantIDAndUserID retrieves the review a user wrote for a restaurant.
func (repo *reviewRepository) FindByRestaurantIDAndUserID(ctx context.Context, restaurantID, userID int64) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.preloaded(ctx).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by restaurant and user")
	}

	return toReviewDomain(&reviewM), nil
}

// Create persists a new review and assigns its id.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	deliverycontext.GetLoggerOrDefault(ctx, repo.logger).InfoContext(ctx, "Creating review", slog.Any("review", review))

	reviewM := fromReviewDomain(review)
	if err := repo.db.WithContext(ctx).Omit("User", "Restaurant").Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrReviewAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			if constraintName(err) == constraintReviewsRestaurant {
				return domainerrors.ErrReviewRestaurantReference
			}

			return domainerrors.ErrReviewUserReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID

	return nil
}

// Delete removes the review by id.
func (repo *reviewRepository) Delete(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	deliverycontext.GetLoggerOrDefault(ctx, repo.logger).InfoContext(ctx, "Deleting review", slog.Any("review", review))

	if review.ID == 0 {
		return review, nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", review.ID).
		Delete(&model.ReviewModel{}).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete review")
	}

	return review, nil
}

func (repo *reviewRepository) preloaded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("User").
		Preload("Restaurant")
}

func (repo *reviewRepository) findAll(ctx context.Context, failure, where string, args ...any) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	query := repo.preloaded(ctx)
	if where != "" {
		query = query.Where(where, args...)
	}

	if err := query.
		Order("id").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:         data.ID,
		Review:     data.Review,
		Rating:     data.Rating,
		User:       toUserDomain(data.User),
		Restaurant: toRestaurantDomain(data.Restaurant),
	}

	if review.User == nil {
		review.User = &entity.User{ID: data.UserID}
	}
	if review.Restaurant == nil {
		review.Restaurant = &entity.Restaurant{ID: data.RestaurantID}
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		Review:       data.Review,
		Rating:       data.Rating,
		UserID:       data.UserID(),
		RestaurantID: data.RestaurantID(),
	}
}

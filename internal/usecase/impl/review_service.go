package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/domain/service"
	"foodcritic/internal/usecase"
	"foodcritic/internal/usecase/validator"

	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	validator  *validator.ReviewValidator
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Validator  *validator.ReviewValidator
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		validator:  params.Validator,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) FindAll(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAll(ctx)

	return reviews, propagate(err, "failed to find all reviews")
}

func (srv *reviewService) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrReviewNotFound, domainerrors.ErrReviewNotFound, "failed to find review by id")
	}

	return review, nil
}

func (srv *reviewService) FindAllByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAllByUserID(ctx, userID)

	return reviews, propagate(err, "failed to find reviews by user")
}

func (srv *reviewService) FindAllByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAllByRestaurantID(ctx, restaurantID)

	return reviews, propagate(err, "failed to find reviews by restaurant")
}

// Create validates the review and inserts it in one transaction, then announces it.
func (srv *reviewService) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	srv.log(ctx).Debug("Creating review",
		slog.Int64("userID", review.UserID()),
		slog.Int64("restaurantID", review.RestaurantID()),
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		if err := srv.validator.WithRepository(reviewRepo).Validate(ctx, review); err != nil {
			return err
		}

		return reviewRepo.Create(ctx, review)
	})
	if err != nil {
		return nil, propagate(err, "failed to create review")
	}

	srv.publish(ctx, service.ReviewCreated, review)

	return review, nil
}

func (srv *reviewService) Delete(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if review.ID == 0 {
		return nil, nil
	}

	var deleted *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		deleted, err = repoFactory.NewReviewRepository().Delete(ctx, review)

		return err
	})
	if err != nil {
		return nil, propagate(err, "failed to delete review")
	}

	srv.publish(ctx, service.ReviewDeleted, deleted)

	return deleted, nil
}

// publish runs after commit; a failed publish is logged and never fails the request.
func (srv *reviewService) publish(ctx context.Context, eventType string, review *entity.Review) {
	if srv.publisher == nil || review == nil {
		return
	}

	event := &service.ReviewEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Type:         eventType,
		ReviewID:     review.ID,
		UserID:       review.UserID(),
		RestaurantID: review.RestaurantID(),
		Rating:       review.Rating,
		OccurredAt:   time.Now().UTC(),
	}

	if err := srv.publisher.PublishReviewEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review event",
			slog.String("type", eventType),
			slog.Int64("reviewID", review.ID),
			slog.Any("error", err),
		)
	}
}

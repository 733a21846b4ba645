package handler

import (
	"context"
	"log/slog"
	"net/http"

	"foodcritic/internal/delivery/api/response"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/errors"
	"foodcritic/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const reviewEntityName = "Review"

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC     usecase.ReviewUsecase
	UserUC       usecase.UserUsecase
	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// ReviewHandler serves the review endpoints. Creating a review resolves its
// user and restaurant through their own use cases first.
type ReviewHandler struct {
	reviewUC     usecase.ReviewUsecase
	userUC       usecase.UserUsecase
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC:     params.ReviewUC,
		userUC:       params.UserUC,
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// reviewFilter narrows GET /reviews.
type reviewFilter struct {
	UserID       int64 `query:"userId" validate:"omitempty,gt=0"`
	RestaurantID int64 `query:"restaurantId" validate:"omitempty,gt=0"`
}

// reviewsByUser is the query of GET /reviews/getByUserId. Without userId every review is listed.
type reviewsByUser struct {
	UserID int64 `query:"userId" validate:"omitempty,gt=0"`
}

// ListReviews returns all reviews, optionally filtered by user and/or restaurant.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	var filter reviewFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "Invalid review filter")
	}
	if err := c.Validate(&filter); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	var (
		reviews []*entity.Review
		err     error
	)
	switch {
	case filter.UserID != 0:
		reviews, err = h.reviewUC.FindAllByUserID(ctx, filter.UserID)
		if err == nil && filter.RestaurantID != 0 {
			reviews = byRestaurant(reviews, filter.RestaurantID)
		}
	case filter.RestaurantID != 0:
		reviews, err = h.reviewUC.FindAllByRestaurantID(ctx, filter.RestaurantID)
	default:
		reviews, err = h.reviewUC.FindAll(ctx)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// ListReviewsByUser returns the reviews written by ?userId=, or all reviews when it is absent.
func (h *ReviewHandler) ListReviewsByUser(c echo.Context) error {
	var query reviewsByUser
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid userId")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	var (
		reviews []*entity.Review
		err     error
	)
	if query.UserID == 0 {
		reviews, err = h.reviewUC.FindAll(ctx)
	} else {
		reviews, err = h.reviewUC.FindAllByUserID(ctx, query.UserID)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// GetReview returns one review by id.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrReviewNotFound, reviewEntityName, id)
	}

	return response.Success(c, http.StatusOK, review)
}

// CreateReview stores a review after its user and restaurant resolve.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var review *entity.Review
	if err := c.Bind(&review); err != nil || review == nil {
		return response.BindingError(c, "Invalid review input")
	}

	if review.ID != 0 {
		return idNotAllowed(c, "review")
	}

	ctx := c.Request().Context()

	user, restaurant, err := h.resolveReferences(ctx, review)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	review.User = user
	review.Restaurant = restaurant

	created, err := h.reviewUC.Create(ctx, review)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// DeleteReview removes a review by id.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	review, err := h.reviewUC.FindByID(ctx, id)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrReviewNotFound, reviewEntityName, id)
	}

	if _, err := h.reviewUC.Delete(ctx, review); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// resolveReferences loads the stored user and restaurant named by review.
// When both fail they are reported together in one validation error.
func (h *ReviewHandler) resolveReferences(ctx context.Context, review *entity.Review) (*entity.User, *entity.Restaurant, error) {
	var user *entity.User
	if review.UserID() != 0 {
		found, err := h.userUC.FindByID(ctx, review.UserID())
		switch {
		case err == nil:
			user = found
		case !errors.Is(err, domainerrors.ErrUserNotFound):
			return nil, nil, err
		}
	}

	var restaurant *entity.Restaurant
	if review.RestaurantID() != 0 {
		found, err := h.restaurantUC.FindByID(ctx, review.RestaurantID())
		switch {
		case err == nil:
			restaurant = found
		case !errors.Is(err, domainerrors.ErrRestaurantNotFound):
			return nil, nil, err
		}
	}

	switch {
	case user == nil && restaurant == nil:
		return nil, nil, domainerrors.NewValidationError(map[string]string{
			domainerrors.ErrReviewUserReference.Field():       domainerrors.ErrReviewUserReference.Message(),
			domainerrors.ErrReviewRestaurantReference.Field(): domainerrors.ErrReviewRestaurantReference.Message(),
		})
	case user == nil:
		return nil, nil, domainerrors.ErrReviewUserReference
	case restaurant == nil:
		return nil, nil, domainerrors.ErrReviewRestaurantReference
	}

	return user, restaurant, nil
}

func byRestaurant(reviews []*entity.Review, restaurantID int64) []*entity.Review {
	filtered := make([]*entity.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.RestaurantID() == restaurantID {
			filtered = append(filtered, review)
		}
	}

	return filtered
}

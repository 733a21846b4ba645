package validator

import (
	"context"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/errors"

	govalidator "github.com/go-playground/validator/v10"
)

var reviewRules = Rules[*entity.Review]{
	{Field: "review", Tag: "max=300", Message: msgReviewText, Value: func(r *entity.Review) any { return r.Review }},
	{Field: "rating", Tag: "min=0,max=5", Message: msgRating, Value: func(r *entity.Review) any { return r.Rating }},
	{Field: "user", Tag: "required", Message: msgNotNull, Value: func(r *entity.Review) any { return r.User != nil }},
	{Field: "restaurant", Tag: "required", Message: msgNotNull, Value: func(r *entity.Review) any { return r.Restaurant != nil }},
}

// ReviewValidator checks review fields and that a user reviews a restaurant only once.
type ReviewValidator struct {
	engine *govalidator.Validate
	repo   repository.ReviewRepository
}

// NewReviewValidator creates a review validator reading through repo.
func NewReviewValidator(engine *govalidator.Validate, repo repository.ReviewRepository) *ReviewValidator {
	return &ReviewValidator{engine: engine, repo: repo}
}

// WithRepository returns a copy reading through repo, usually a transaction-bound one.
func (v *ReviewValidator) WithRepository(repo repository.ReviewRepository) *ReviewValidator {
	return &ReviewValidator{engine: v.engine, repo: repo}
}

// Validate returns a *ValidationError listing every broken field, or the
// conflict when the user has already reviewed the restaurant.
func (v *ReviewValidator) Validate(ctx context.Context, review *entity.Review) error {
	if reasons := reviewRules.Check(v.engine, review); len(reasons) > 0 {
		return domainerrors.NewValidationError(reasons)
	}

	exists, err := v.reviewAlreadyExists(ctx, review)
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.ErrReviewAlreadyExists
	}

	return nil
}

func (v *ReviewValidator) reviewAlreadyExists(ctx context.Context, review *entity.Review) (bool, error) {
	restaurantID, userID := review.RestaurantID(), review.UserID()

	if _, err := v.repo.FindByRestaurantIDAndUserID(ctx, restaurantID, userID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find review by restaurant and user")
	}

	if review.ID == 0 {
		return true, nil
	}

	own, err := v.repo.FindByID(ctx, review.ID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to find review by id")
	}

	return own.RestaurantID() != restaurantID || own.UserID() != userID, nil
}

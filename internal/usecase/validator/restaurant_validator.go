package validator

import (
	"context"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/errors"

	govalidator "github.com/go-playground/validator/v10"
)

var restaurantRules = Rules[*entity.Restaurant]{
	{Field: "name", Tag: "required,max=50," + tagRestaurantName, Message: msgRestaurantName, Value: func(r *entity.Restaurant) any { return r.Name }},
	{Field: "phonenumber", Tag: "required", Message: msgNotNull, Value: func(r *entity.Restaurant) any { return r.PhoneNumber }},
	{Field: "phonenumber", Tag: tagUKPhone, Message: msgUKPhone, Value: func(r *entity.Restaurant) any { return r.PhoneNumber }},
	{Field: "postcode", Tag: "required", Message: msgNotNull, Value: func(r *entity.Restaurant) any { return r.Postcode }},
	{Field: "postcode", Tag: tagPostcode, Message: msgPostcode, Value: func(r *entity.Restaurant) any { return r.Postcode }},
}

// RestaurantValidator checks restaurant fields and phone number uniqueness.
type RestaurantValidator struct {
	engine *govalidator.Validate
	repo   repository.RestaurantRepository
}

// NewRestaurantValidator creates a restaurant validator reading through repo.
func NewRestaurantValidator(engine *govalidator.Validate, repo repository.RestaurantRepository) *RestaurantValidator {
	return &RestaurantValidator{engine: engine, repo: repo}
}

// WithRepository returns a copy reading through repo, usually a transaction-bound one.
func (v *RestaurantValidator) WithRepository(repo repository.RestaurantRepository) *RestaurantValidator {
	return &RestaurantValidator{engine: v.engine, repo: repo}
}

// Validate returns a *ValidationError listing every broken field, or the phone
// number conflict when another restaurant already holds the number.
func (v *RestaurantValidator) Validate(ctx context.Context, restaurant *entity.Restaurant) error {
	if reasons := restaurantRules.Check(v.engine, restaurant); len(reasons) > 0 {
		return domainerrors.NewValidationError(reasons)
	}

	taken, err := v.phoneNumberAlreadyExists(ctx, restaurant.PhoneNumber, restaurant.ID)
	if err != nil {
		return err
	}
	if taken {
		return domainerrors.ErrRestaurantPhonenumberTaken
	}

	return nil
}

func (v *RestaurantValidator) phoneNumberAlreadyExists(ctx context.Context, phoneNumber string, id int64) (bool, error) {
	if _, err := v.repo.FindByPhoneNumber(ctx, phoneNumber); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find restaurant by phone number")
	}

	if id == 0 {
		return true, nil
	}

	own, err := v.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to find restaurant by id")
	}

	return own.PhoneNumber != phoneNumber, nil
}

package validator

import (
	"context"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/errors"

	govalidator "github.com/go-playground/validator/v10"
)

var userRules = Rules[*entity.User]{
	{Field: "name", Tag: "required," + tagPersonName, Message: msgPersonName, Value: func(u *entity.User) any { return u.Name }},
	{Field: "name", Tag: "max=50", Message: sizeBetween("1", "50"), Value: func(u *entity.User) any { return u.Name }},
	{Field: "email", Tag: "required", Message: msgNotEmpty, Value: func(u *entity.User) any { return u.Email }},
	{Field: "email", Tag: "email", Message: msgEmail, Value: func(u *entity.User) any { return u.Email }},
	{Field: "phonenumber", Tag: "required", Message: msgNotNull, Value: func(u *entity.User) any { return u.PhoneNumber }},
	{Field: "phonenumber", Tag: tagUKPhone, Message: msgUKPhone, Value: func(u *entity.User) any { return u.PhoneNumber }},
}

// UserValidator checks user fields and email uniqueness.
type UserValidator struct {
	engine *govalidator.Validate
	repo   repository.UserRepository
}

// NewUserValidator creates a user validator reading through repo.
func NewUserValidator(engine *govalidator.Validate, repo repository.UserRepository) *UserValidator {
	return &UserValidator{engine: engine, repo: repo}
}

// WithRepository returns a copy reading through repo, usually a transaction-bound one.
func (v *UserValidator) WithRepository(repo repository.UserRepository) *UserValidator {
	return &UserValidator{engine: v.engine, repo: repo}
}

// Validate returns a *ValidationError listing every broken field, or the email
// conflict when another user already holds the address.
func (v *UserValidator) Validate(ctx context.Context, user *entity.User) error {
	if reasons := userRules.Check(v.engine, user); len(reasons) > 0 {
		return domainerrors.NewValidationError(reasons)
	}

	taken, err := v.emailAlreadyExists(ctx, user.Email, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return domainerrors.ErrUserEmailTaken
	}

	return nil
}

func (v *UserValidator) emailAlreadyExists(ctx context.Context, email string, id int64) (bool, error) {
	if _, err := v.repo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find user by email")
	}

	if id == 0 {
		return true, nil
	}

	own, err := v.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to find user by id")
	}

	return own.Email != email, nil
}

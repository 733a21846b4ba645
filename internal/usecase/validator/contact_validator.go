package validator

import (
	"context"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/errors"

	govalidator "github.com/go-playground/validator/v10"
)

var contactRules = Rules[*entity.Contact]{
	{Field: "firstName", Tag: "required," + tagContactName, Message: msgPersonName, Value: func(c *entity.Contact) any { return c.FirstName }},
	{Field: "firstName", Tag: "max=25", Message: sizeBetween("1", "25"), Value: func(c *entity.Contact) any { return c.FirstName }},
	{Field: "lastName", Tag: "required," + tagContactName, Message: msgPersonName, Value: func(c *entity.Contact) any { return c.LastName }},
	{Field: "lastName", Tag: "max=25", Message: sizeBetween("1", "25"), Value: func(c *entity.Contact) any { return c.LastName }},
	{Field: "email", Tag: "required", Message: msgNotEmpty, Value: func(c *entity.Contact) any { return c.Email }},
	{Field: "email", Tag: "email", Message: msgEmail, Value: func(c *entity.Contact) any { return c.Email }},
	{Field: "phoneNumber", Tag: "required", Message: msgNotNull, Value: func(c *entity.Contact) any { return c.PhoneNumber }},
	{Field: "phoneNumber", Tag: tagUSPhone, Message: msgUSPhone, Value: func(c *entity.Contact) any { return c.PhoneNumber }},
	{Field: "birthDate", Tag: "required", Message: msgNotNull, Value: func(c *entity.Contact) any { return c.BirthDate.Time }},
	{Field: "birthDate", Tag: tagPast, Message: msgBirthDate, Value: func(c *entity.Contact) any { return c.BirthDate.Time }},
}

// ContactValidator checks contact fields and email uniqueness.
type ContactValidator struct {
	engine *govalidator.Validate
	repo   repository.ContactRepository
}

// NewContactValidator creates a contact validator reading through repo.
func NewContactValidator(engine *govalidator.Validate, repo repository.ContactRepository) *ContactValidator {
	return &ContactValidator{engine: engine, repo: repo}
}

// WithRepository returns a copy reading through repo, usually a transaction-bound one.
func (v *ContactValidator) WithRepository(repo repository.ContactRepository) *ContactValidator {
	return &ContactValidator{engine: v.engine, repo: repo}
}

// Validate returns a *ValidationError listing every broken field, or the email
// conflict when another contact already holds the address.
func (v *ContactValidator) Validate(ctx context.Context, contact *entity.Contact) error {
	if reasons := contactRules.Check(v.engine, contact); len(reasons) > 0 {
		return domainerrors.NewValidationError(reasons)
	}

	taken, err := v.emailAlreadyExists(ctx, contact.Email, contact.ID)
	if err != nil {
		return err
	}
	if taken {
		return domainerrors.ErrContactEmailTaken
	}

	return nil
}

func (v *ContactValidator) emailAlreadyExists(ctx context.Context, email string, id int64) (bool, error) {
	if _, err := v.repo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find contact by email")
	}

	if id == 0 {
		return true, nil
	}

	own, err := v.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to find contact by id")
	}

	// Updating in place keeps the address on the same record.
	return own.Email != email, nil
}

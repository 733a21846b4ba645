package validator

import (
	"testing"

	domainerrors "foodcritic/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filter struct {
	UserID int64  `query:"userId" validate:"omitempty,gt=0"`
	Email  string `json:"email" validate:"omitempty,email"`
	Name   string `validate:"required"`
}

func TestEchoValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&filter{Name: "ok"}))

	err := v.Validate(&filter{UserID: -1, Email: "nope"})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string]string{
		"userId": "must be greater than 0",
		"email":  "must be a valid email address",
		"Name":   "must not be empty",
	}, validationErr.Reasons())
}

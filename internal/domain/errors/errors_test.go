package errors

import (
	"net/http"
	"testing"

	"foodcritic/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	reasons := map[string]string{"name": "may not be empty", "email": "may not be empty"}
	err := NewValidationError(reasons)

	reasons["name"] = "mutated"
	assert.Equal(t, "may not be empty", err.Reasons()["name"])

	err.Reasons()["email"] = "mutated"
	assert.Equal(t, "may not be empty", err.Reasons()["email"])

	assert.Equal(t, "validation failed: email, name", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestConflictAndReferenceReasons(t *testing.T) {
	assert.Equal(t, map[string]string{"restaurant": ErrReviewAlreadyExists.Message()}, ErrReviewAlreadyExists.Reasons())
	assert.Equal(t, http.StatusConflict, ErrUserEmailTaken.HTTPCode())

	assert.Equal(t, map[string]string{"user.id": "UserId is incorrect"}, ErrReviewUserReference.Reasons())
	assert.Equal(t, http.StatusBadRequest, ErrReviewRestaurantReference.HTTPCode())
}

func TestIsTyped(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "validation", err: NewValidationError(map[string]string{"x": "y"}), want: true},
		{name: "wrapped conflict", err: errors.Wrap(ErrContactEmailTaken, "failed to create contact"), want: true},
		{name: "reference", err: ErrReviewUserReference, want: true},
		{name: "not found", err: ErrReviewNotFound, want: true},
		{name: "internal base error", err: ErrTransactionFailed, want: false},
		{name: "database", err: NewDatabaseExecuteError(errors.New("timeout"), ""), want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTyped(tt.err))
		})
	}
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("deadlock")
	err := NewDatabaseExecuteError(cause, "insert review")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "deadlock")
	assert.Equal(t, "insert review", err.Details())
}

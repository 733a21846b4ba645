package repository

import (
	"context"

	"foodcritic/internal/domain/entity"
	"foodcritic/internal/errors"
)

// ErrUserNotFound is returned when no single user matches a lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindAll returns every user ordered by name.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a user by its id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves the user registered with the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and assigns its id.
	Create(ctx context.Context, user *entity.User) error

	// Delete removes the user and, through the storage cascade, their reviews.
	Delete(ctx context.Context, user *entity.User) (*entity.User, error)
}

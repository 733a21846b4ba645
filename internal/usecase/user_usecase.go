package usecase

import (
	"context"

	"foodcritic/internal/domain/entity"
)

// UserUsecase defines the interface for reviewer account use cases
type UserUsecase interface {
	// FindAll returns every user ordered by name
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a user or ErrUserNotFound
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves the user holding email or ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create validates and persists a new user
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// Delete removes a user together with their reviews; a user without an id is a no-op returning nil
	Delete(ctx context.Context, user *entity.User) (*entity.User, error)
}

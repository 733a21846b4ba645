// Package usecase declares the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"foodcritic/internal/domain/entity"
)

// ContactUsecase defines the interface for address book use cases
type ContactUsecase interface {
	// FindAll returns every contact ordered by last name, then first name
	FindAll(ctx context.Context) ([]*entity.Contact, error)

	// FindByID retrieves a contact or ErrContactNotFound
	FindByID(ctx context.Context, id int64) (*entity.Contact, error)

	// FindByEmail retrieves the contact holding email or ErrContactNotFound
	FindByEmail(ctx context.Context, email string) (*entity.Contact, error)

	// FindAllByFirstName returns contacts sharing a first name
	FindAllByFirstName(ctx context.Context, firstName string) ([]*entity.Contact, error)

	// FindAllByLastName returns contacts sharing a last name
	FindAllByLastName(ctx context.Context, lastName string) ([]*entity.Contact, error)

	// Create validates and persists a new contact
	Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)

	// Update validates and merges an existing contact
	Update(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)

	// Delete removes a contact; a contact without an id is a no-op returning nil
	Delete(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
}

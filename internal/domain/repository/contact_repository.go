// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodcritic/internal/domain/entity"
	"foodcritic/internal/errors"
)

// ErrContactNotFound is returned when no single contact matches a lookup.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the interface for contact-related database operations.
type ContactRepository interface {
	// FindAll returns every contact ordered by last name, then first name.
	FindAll(ctx context.Context) ([]*entity.Contact, error)

	// FindByID retrieves a contact by its id.
	FindByID(ctx context.Context, id int64) (*entity.Contact, error)

	// FindByEmail retrieves the contact registered with the given email.
	FindByEmail(ctx context.Context, email string) (*entity.Contact, error)

	// FindAllByFirstName returns the contacts with the given first name.
	FindAllByFirstName(ctx context.Context, firstName string) ([]*entity.Contact, error)

	// FindAllByLastName returns the contacts with the given last name.
	FindAllByLastName(ctx context.Context, lastName string) ([]*entity.Contact, error)

	// Create persists a new contact and assigns its id.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update merges the contact into storage by id.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes the contact by id. A contact without an id is returned unchanged.
	Delete(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
}

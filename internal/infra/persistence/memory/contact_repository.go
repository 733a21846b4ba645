package memory

import (
	"cmp"
	"context"
	"slices"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
)

type contactRepository struct {
	store *Store
}

func (repo *contactRepository) FindAll(_ context.Context) ([]*entity.Contact, error) {
	return repo.filter(func(*entity.Contact) bool { return true }), nil
}

func (repo *contactRepository) FindByID(_ context.Context, id int64) (*entity.Contact, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	contact, ok := repo.store.data.contacts[id]
	if !ok {
		return nil, repository.ErrContactNotFound
	}

	return &contact, nil
}

func (repo *contactRepository) FindByEmail(_ context.Context, email string) (*entity.Contact, error) {
	matches := repo.filter(func(c *entity.Contact) bool { return c.Email == email })
	if len(matches) != 1 {
		return nil, repository.ErrContactNotFound
	}

	return matches[0], nil
}

func (repo *contactRepository) FindAllByFirstName(_ context.Context, firstName string) ([]*entity.Contact, error) {
	return repo.filter(func(c *entity.Contact) bool { return c.FirstName == firstName }), nil
}

func (repo *contactRepository) FindAllByLastName(_ context.Context, lastName string) ([]*entity.Contact, error) {
	return repo.filter(func(c *entity.Contact) bool { return c.LastName == lastName }), nil
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	repo.store.loggerFrom(ctx).InfoContext(ctx, "Creating contact", "contact", contact)

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if repo.emailHeldByOther(contact.Email, 0) {
		return domainerrors.ErrContactEmailTaken
	}

	repo.store.data.seq.contact++
	contact.ID = repo.store.data.seq.contact
	repo.store.data.contacts[contact.ID] = *contact

	return nil
}

func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	repo.store.loggerFrom(ctx).InfoContext(ctx, "Updating contact", "contact", contact)

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if repo.emailHeldByOther(contact.Email, contact.ID) {
		return domainerrors.ErrContactEmailTaken
	}

	// Merge semantics: an unknown id inserts under a fresh one.
	if _, ok := repo.store.data.contacts[contact.ID]; !ok {
		repo.store.data.seq.contact++
		contact.ID = repo.store.data.seq.contact
	}
	repo.store.data.contacts[contact.ID] = *contact

	return nil
}

func (repo *contactRepository) Delete(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	repo.store.loggerFrom(ctx).InfoContext(ctx, "Deleting contact", "contact", contact)

	if contact.ID == 0 {
		return contact, nil
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	delete(repo.store.data.contacts, contact.ID)

	return contact, nil
}

// emailHeldByOther must be called with the store lock held.
func (repo *contactRepository) emailHeldByOther(email string, id int64) bool {
	for _, existing := range repo.store.data.contacts {
		if existing.Email == email && existing.ID != id {
			return true
		}
	}

	return false
}

func (repo *contactRepository) filter(keep func(*entity.Contact) bool) []*entity.Contact {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	contacts := make([]*entity.Contact, 0, len(repo.store.data.contacts))
	for _, contact := range repo.store.data.contacts {
		if keep(&contact) {
			contacts = append(contacts, &contact)
		}
	}

	slices.SortFunc(contacts, func(a, b *entity.Contact) int {
		return cmp.Or(
			cmp.Compare(a.LastName, b.LastName),
			cmp.Compare(a.FirstName, b.FirstName),
			cmp.Compare(a.ID, b.ID),
		)
	})

	return contacts
}

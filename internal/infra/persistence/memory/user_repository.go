package memory

import (
	"cmp"
	"context"
	"slices"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
)

type userRepository struct {
	store *Store
}

func (repo *userRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	users := make([]*entity.User, 0, len(repo.store.data.users))
	for _, user := range repo.store.data.users {
		users = append(users, &user)
	}

	slices.SortFunc(users, func(a, b *entity.User) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	return users, nil
}

func (repo *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	user, ok := repo.store.data.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var found *entity.User
	for _, user := range repo.store.data.users {
		if user.Email != email {
			continue
		}
		if found != nil {
			return nil, repository.ErrUserNotFound
		}
		found = &user
	}

	if found == nil {
		return nil, repository.ErrUserNotFound
	}

	return found, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	repo.store.loggerFrom(ctx).InfoContext(ctx, "Creating user", "user", user)

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, existing := range repo.store.data.users {
		if existing.Email == user.Email {
			return domainerrors.ErrUserEmailTaken
		}
	}

	repo.store.data.seq.user++
	user.ID = repo.store.data.seq.user
	repo.store.data.users[user.ID] = *user

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, user *entity.User) (*entity.User, error) {
	repo.store.loggerFrom(ctx).InfoContext(ctx, "Deleting user", "user", user)

	if user.ID == 0 {
		return user, nil
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	delete(repo.store.data.users, user.ID)
	for id, row := range repo.store.data.reviews {
		if row.UserID == user.ID {
			delete(repo.store.data.reviews, id)
		}
	}

	return user, nil
}

package memory

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seedUser(t *testing.T, store *Store, name, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: name, Email: email, PhoneNumber: "01234567890"}
	require.NoError(t, store.UserRepository().Create(context.Background(), user))

	return user
}

func seedRestaurant(t *testing.T, store *Store, name, phoneNumber string) *entity.Restaurant {
	t.Helper()

	restaurant := &entity.Restaurant{Name: name, PhoneNumber: phoneNumber, Postcode: "AB12CD"}
	require.NoError(t, store.RestaurantRepository().Create(context.Background(), restaurant))

	return restaurant
}

func TestContactRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore().ContactRepository()

	birth := entity.NewDate(time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC))
	alice := &entity.Contact{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", BirthDate: birth}
	bob := &entity.Contact{FirstName: "Bob", LastName: "Adams", Email: "bob@example.com", BirthDate: birth}
	amy := &entity.Contact{FirstName: "Alice", LastName: "Adams", Email: "amy@example.com", BirthDate: birth}

	for _, c := range []*entity.Contact{alice, bob, amy} {
		require.NoError(t, repo.Create(ctx, c))
		assert.NotZero(t, c.ID)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"amy@example.com", "bob@example.com", "alice@example.com"},
		[]string{all[0].Email, all[1].Email, all[2].Email})

	byFirst, err := repo.FindAllByFirstName(ctx, "Alice")
	require.NoError(t, err)
	assert.Len(t, byFirst, 2)

	byLast, err := repo.FindAllByLastName(ctx, "Adams")
	require.NoError(t, err)
	assert.Len(t, byLast, 2)

	found, err := repo.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrContactNotFound)

	err = repo.Create(ctx, &entity.Contact{FirstName: "Eve", LastName: "X", Email: "alice@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrContactEmailTaken)

	alice.PhoneNumber = "(555) 555-5555"
	require.NoError(t, repo.Update(ctx, alice))
	reloaded, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "(555) 555-5555", reloaded.PhoneNumber)

	bob.Email = "amy@example.com"
	assert.ErrorIs(t, repo.Update(ctx, bob), domainerrors.ErrContactEmailTaken)

	deleted, err := repo.Delete(ctx, alice)
	require.NoError(t, err)
	assert.Same(t, alice, deleted)
	_, err = repo.FindByID(ctx, alice.ID)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestContactRepository_DeleteWithoutID(t *testing.T) {
	repo := newTestStore().ContactRepository()
	contact := &entity.Contact{Email: "x@example.com"}

	deleted, err := repo.Delete(context.Background(), contact)
	require.NoError(t, err)
	assert.Same(t, contact, deleted)
}

func TestUserRepository_OrderAndUniqueness(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	repo := store.UserRepository()

	seedUser(t, store, "Zed", "zed@example.com")
	seedUser(t, store, "Ann", "ann@example.com")

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ann", users[0].Name)
	assert.Equal(t, "Zed", users[1].Name)

	err = repo.Create(ctx, &entity.User{Name: "Dup", Email: "ann@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUserEmailTaken)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestRestaurantRepository_OrderAndUniqueness(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	repo := store.RestaurantRepository()

	seedRestaurant(t, store, "Zest", "09999999999")
	first := seedRestaurant(t, store, "Apple", "01111111111")

	restaurants, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, first.ID, restaurants[0].ID)

	found, err := repo.FindByPhoneNumber(ctx, "09999999999")
	require.NoError(t, err)
	assert.Equal(t, "Zest", found.Name)

	err = repo.Create(ctx, &entity.Restaurant{Name: "Other", PhoneNumber: "01111111111"})
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantPhonenumberTaken)
}

func TestReviewRepository_ReferencesAndUniqueness(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	repo := store.ReviewRepository()

	user := seedUser(t, store, "Ann", "ann@example.com")
	restaurant := seedRestaurant(t, store, "Apple", "01111111111")

	review := &entity.Review{Review: "great", Rating: 5, User: user, Restaurant: restaurant}
	require.NoError(t, repo.Create(ctx, review))
	assert.NotZero(t, review.ID)

	err := repo.Create(ctx, &entity.Review{Rating: 1, User: user, Restaurant: restaurant})
	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)

	err = repo.Create(ctx, &entity.Review{Rating: 1, User: &entity.User{ID: 42}, Restaurant: restaurant})
	assert.ErrorIs(t, err, domainerrors.ErrReviewUserReference)

	err = repo.Create(ctx, &entity.Review{Rating: 1, User: user, Restaurant: &entity.Restaurant{ID: 42}})
	assert.ErrorIs(t, err, domainerrors.ErrReviewRestaurantReference)

	found, err := repo.FindByRestaurantIDAndUserID(ctx, restaurant.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, found.ID)
	assert.Equal(t, "Ann", found.User.Name)
	assert.Equal(t, "Apple", found.Restaurant.Name)

	byUser, err := repo.FindAllByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byRestaurant, err := repo.FindAllByRestaurantID(ctx, restaurant.ID+1)
	require.NoError(t, err)
	assert.Empty(t, byRestaurant)
}

func TestCascadeDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	reviews := store.ReviewRepository()

	ann := seedUser(t, store, "Ann", "ann@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	apple := seedRestaurant(t, store, "Apple", "01111111111")
	pear := seedRestaurant(t, store, "Pear", "02222222222")

	for _, r := range []*entity.Review{
		{Rating: 1, User: ann, Restaurant: apple},
		{Rating: 2, User: ann, Restaurant: pear},
		{Rating: 3, User: bob, Restaurant: apple},
	} {
		require.NoError(t, reviews.Create(ctx, r))
	}

	_, err := store.UserRepository().Delete(ctx, ann)
	require.NoError(t, err)

	remaining, err := reviews.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, bob.ID, remaining[0].UserID())

	_, err = store.RestaurantRepository().Delete(ctx, apple)
	require.NoError(t, err)

	remaining, err = reviews.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	tm := NewTransactionManager(store)

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		require.NoError(t, factory.NewUserRepository().Create(ctx, &entity.User{Name: "Ann", Email: "ann@example.com"}))

		return boom
	})
	require.ErrorIs(t, err, boom)

	users, err := store.UserRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().Create(ctx, &entity.User{Name: "Ann", Email: "ann@example.com"})
	})
	require.NoError(t, err)

	users, err = store.UserRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	tm := NewTransactionManager(store)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.NewUserRepository().Create(ctx, &entity.User{Name: "Ann", Email: "ann@example.com"})
			panic("boom")
		})
	})

	users, err := store.UserRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestTransactionManager_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewTransactionManager(newTestStore()).Execute(ctx, func(repository.RepositoryFactory) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

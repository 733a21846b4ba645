package impl

import (
	"context"
	"testing"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	svc := newServices(t, nil).users
	ctx := context.Background()

	created, err := svc.Create(ctx, newUser("Ann", "ann@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(ctx, newUser("Other", "ann@example.com"))
	var conflictErr *domainerrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, map[string]string{"email": "That email is already used, please use a unique email"}, conflictErr.Reasons())

	_, err = svc.Create(ctx, &entity.User{})
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Reasons(), 3)
}

func TestUserService_FindAllOrderedByName(t *testing.T) {
	svc := newServices(t, nil).users
	ctx := context.Background()

	for _, u := range []*entity.User{newUser("Zed", "z@example.com"), newUser("Ann", "a@example.com")} {
		_, err := svc.Create(ctx, u)
		require.NoError(t, err)
	}

	users, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ann", users[0].Name)

	found, err := svc.FindByEmail(ctx, "z@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Zed", found.Name)

	_, err = svc.FindByID(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteCascadesReviews(t *testing.T) {
	s := newServices(t, nil)
	ctx := context.Background()

	user, err := s.users.Create(ctx, newUser("Ann", "ann@example.com"))
	require.NoError(t, err)
	restaurant, err := s.restaurants.Create(ctx, newRestaurant("Nandos", "02079460000"))
	require.NoError(t, err)
	_, err = s.reviews.Create(ctx, &entity.Review{Review: "ok", Rating: 3, User: user, Restaurant: restaurant})
	require.NoError(t, err)

	deleted, err := s.users.Delete(ctx, &entity.User{})
	require.NoError(t, err)
	assert.Nil(t, deleted)

	deleted, err = s.users.Delete(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted.ID)

	reviews, err := s.reviews.FindAllByRestaurantID(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

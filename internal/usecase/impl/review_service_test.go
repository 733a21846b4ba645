package impl

import (
	"context"
	"testing"

	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/service"
	"foodcritic/internal/errors"
	mockSvc "foodcritic/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	services
	user       *entity.User
	restaurant *entity.Restaurant
}

func newReviewFixture(t *testing.T, publisher service.EventPublisher) reviewFixture {
	t.Helper()

	s := newServices(t, publisher)
	ctx := context.Background()

	user, err := s.users.Create(ctx, newUser("Ann", "ann@example.com"))
	require.NoError(t, err)
	restaurant, err := s.restaurants.Create(ctx, newRestaurant("Nandos", "02079460000"))
	require.NoError(t, err)

	return reviewFixture{services: s, user: user, restaurant: restaurant}
}

func TestReviewService_CreatePublishesEvent(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	f := newReviewFixture(t, publisher)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	publisher.EXPECT().
		PublishReviewEvent(ctx, mock.AnythingOfType("*service.ReviewEvent")).
		Run(func(_ context.Context, event *service.ReviewEvent) {
			assert.Equal(t, service.ReviewCreated, event.Type)
			assert.Equal(t, "req-1", event.RequestID)
			assert.Equal(t, f.user.ID, event.UserID)
			assert.Equal(t, f.restaurant.ID, event.RestaurantID)
			assert.Equal(t, 4, event.Rating)
			assert.NotZero(t, event.ReviewID)
		}).
		Return(nil).
		Once()

	created, err := f.reviews.Create(ctx, &entity.Review{Review: "tasty", Rating: 4, User: f.user, Restaurant: f.restaurant})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestReviewService_PublishFailureDoesNotFailRequest(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	f := newReviewFixture(t, publisher)
	ctx := context.Background()

	publisher.EXPECT().
		PublishReviewEvent(mock.Anything, mock.Anything).
		Return(errors.New("broker down")).
		Times(2)

	created, err := f.reviews.Create(ctx, &entity.Review{Rating: 1, User: f.user, Restaurant: f.restaurant})
	require.NoError(t, err)

	deleted, err := f.reviews.Delete(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
}

func TestReviewService_SecondReviewConflicts(t *testing.T) {
	f := newReviewFixture(t, nil)
	ctx := context.Background()

	_, err := f.reviews.Create(ctx, &entity.Review{Review: "first", Rating: 5, User: f.user, Restaurant: f.restaurant})
	require.NoError(t, err)

	_, err = f.reviews.Create(ctx, &entity.Review{Review: "second", Rating: 1, User: f.user, Restaurant: f.restaurant})

	var conflictErr *domainerrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "restaurant", conflictErr.Field())
	assert.Len(t, conflictErr.Reasons(), 1)
}

func TestReviewService_Queries(t *testing.T) {
	f := newReviewFixture(t, nil)
	ctx := context.Background()

	bob, err := f.users.Create(ctx, newUser("Bob", "bob@example.com"))
	require.NoError(t, err)

	first, err := f.reviews.Create(ctx, &entity.Review{Rating: 5, User: f.user, Restaurant: f.restaurant})
	require.NoError(t, err)
	_, err = f.reviews.Create(ctx, &entity.Review{Rating: 2, User: bob, Restaurant: f.restaurant})
	require.NoError(t, err)

	all, err := f.reviews.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	byUser, err := f.reviews.FindAllByUserID(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "Bob", byUser[0].User.Name)

	byRestaurant, err := f.reviews.FindAllByRestaurantID(ctx, f.restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, byRestaurant, 2)

	found, err := f.reviews.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nandos", found.Restaurant.Name)

	_, err = f.reviews.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_DeleteWithoutIDIsNoop(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	f := newReviewFixture(t, publisher)

	deleted, err := f.reviews.Delete(context.Background(), &entity.Review{})
	require.NoError(t, err)
	assert.Nil(t, deleted)
	publisher.AssertNotCalled(t, "PublishReviewEvent", mock.Anything, mock.Anything)
}

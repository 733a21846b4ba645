package memory

import (
	"cmp"
	"context"
	"slices"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
)

type restaurantRepository struct {
	store *Store
}

func (repo *restaurantRepository) FindAll(_ context.Context) ([]*entity.Restaurant, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	restaurants := make([]*entity.Restaurant, 0, len(repo.store.data.restaurants))
	for _, restaurant := range repo.store.data.restaurants {
		restaurants = append(restaurants, &restaurant)
	}

	slices.SortFunc(restaurants, func(a, b *entity.Restaurant) int {
		return cmp.Or(cmp.Compare(a.PhoneNumber, b.PhoneNumber), cmp.Compare(a.ID, b.ID))
	})

	return restaurants, nil
}

func (repo *restaurantRepository) FindByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	restaurant, ok := repo.store.data.restaurants[id]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}

	return &restaurant, nil
}

func (repo *restaurantRepository) FindByPhoneNumber(_ context.Context, phoneNumber string) (*entity.Restaurant, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, restaurant := range repo.store.data.restaurants {
		if restaurant.PhoneNumber == phoneNumber {
			return &restaurant, nil
		}
	}

	return nil, repository.ErrRestaurantNotFound
}

func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	repo.store.loggerFrom(ctx).InfoContext(ctx, "Creating restaurant", "restaurant", restaurant)

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, existing := range repo.store.data.restaurants {
		if existing.PhoneNumber == restaurant.PhoneNumber {
			return domainerrors.ErrRestaurantPhonenumberTaken
		}
	}

	repo.store.data.seq.restaurant++
	restaurant.ID = repo.store.data.seq.restaurant
	repo.store.data.restaurants[restaurant.ID] = *restaurant

	return nil
}

func (repo *restaurantRepository) Delete(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	repo.store.loggerFrom(ctx).InfoContext(ctx, "Deleting restaurant", "restaurant", restaurant)

	if restaurant.ID == 0 {
		return restaurant, nil
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	delete(repo.store.data.restaurants, restaurant.ID)
	for id, row := range repo.store.data.reviews {
		if row.RestaurantID == restaurant.ID {
			delete(repo.store.data.reviews, id)
		}
	}

	return restaurant, nil
}

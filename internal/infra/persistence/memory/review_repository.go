package memory

import (
	"cmp"
	"context"
	"slices"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
)

type reviewRepository struct {
	store *Store
}

func (repo *reviewRepository) FindAll(_ context.Context) ([]*entity.Review, error) {
	return repo.filter(func(reviewRow) bool { return true }), nil
}

func (repo *reviewRepository) FindByID(_ context.Context, id int64) (*entity.Review, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	row, ok := repo.store.data.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return repo.store.resolveReview(row), nil
}

func (repo *reviewRepository) FindAllByUserID(_ context.Context, userID int64) ([]*entity.Review, error) {
	return repo.filter(func(row reviewRow) bool { return row.UserID == userID }), nil
}

func (repo *reviewRepository) FindAllByRestaurantID(_ context.Context, restaurantID int64) ([]*entity.Review, error) {
	return repo.filter(func(row reviewRow) bool { return row.RestaurantID == restaurantID }), nil
}

func (repo *reviewRepository) FindByRestaurantIDAndUserID(_ context.Context, restaurantID, userID int64) (*entity.Review, error) {
	matches := repo.filter(func(row reviewRow) bool {
		return row.RestaurantID == restaurantID && row.UserID == userID
	})
	if len(matches) != 1 {
		return nil, repository.ErrReviewNotFound
	}

	return matches[0], nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	repo.store.loggerFrom(ctx).InfoContext(ctx, "Creating review", "review", review)

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	row := reviewRow{
		Review:       review.Review,
		Rating:       review.Rating,
		UserID:       review.UserID(),
		RestaurantID: review.RestaurantID(),
	}

	if _, ok := repo.store.data.users[row.UserID]; !ok {
		return domainerrors.ErrReviewUserReference
	}
	if _, ok := repo.store.data.restaurants[row.RestaurantID]; !ok {
		return domainerrors.ErrReviewRestaurantReference
	}
	for _, existing := range repo.store.data.reviews {
		if existing.UserID == row.UserID && existing.RestaurantID == row.RestaurantID {
			return domainerrors.ErrReviewAlreadyExists
		}
	}

	repo.store.data.seq.review++
	row.ID = repo.store.data.seq.review
	repo.store.data.reviews[row.ID] = row
	review.ID = row.ID

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	repo.store.loggerFrom(ctx).InfoContext(ctx, "Deleting review", "review", review)

	if review.ID == 0 {
		return review, nil
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	delete(repo.store.data.reviews, review.ID)

	return review, nil
}

func (repo *reviewRepository) filter(keep func(reviewRow) bool) []*entity.Review {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	reviews := make([]*entity.Review, 0)
	for _, row := range repo.store.data.reviews {
		if keep(row) {
			reviews = append(reviews, repo.store.resolveReview(row))
		}
	}

	slices.SortFunc(reviews, func(a, b *entity.Review) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return reviews
}

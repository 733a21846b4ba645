// Package memory keeps every entity in process memory. It backs local runs
// and tests, and mirrors the unique and foreign key rules of the relational
// schema so callers observe the same errors on either driver.
package memory

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/domain/entity"
	"foodcritic/internal/domain/repository"
)

type reviewRow struct {
	ID           int64
	Review       string
	Rating       int
	UserID       int64
	RestaurantID int64
}

type sequences struct {
	contact    int64
	user       int64
	restaurant int64
	review     int64
}

type tables struct {
	contacts    map[int64]entity.Contact
	users       map[int64]entity.User
	restaurants map[int64]entity.Restaurant
	reviews     map[int64]reviewRow
	seq         sequences
}

func (t *tables) clone() tables {
	return tables{
		contacts:    maps.Clone(t.contacts),
		users:       maps.Clone(t.users),
		restaurants: maps.Clone(t.restaurants),
		reviews:     maps.Clone(t.reviews),
		seq:         t.seq,
	}
}

// Store holds the tables shared by the memory repositories.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data tables

	logger *slog.Logger
}

// NewStore creates an empty store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		data: tables{
			contacts:    make(map[int64]entity.Contact),
			users:       make(map[int64]entity.User),
			restaurants: make(map[int64]entity.Restaurant),
			reviews:     make(map[int64]reviewRow),
		},
		logger: logger,
	}
}

func (s *Store) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *Store) snapshot() tables {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.clone()
}

func (s *Store) restore(snapshot tables) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = snapshot
}

// resolveReview expands a stored row into an entity with its references.
// Callers must hold s.mu.
func (s *Store) resolveReview(row reviewRow) *entity.Review {
	review := &entity.Review{
		ID:     row.ID,
		Review: row.Review,
		Rating: row.Rating,
	}

	if user, ok := s.data.users[row.UserID]; ok {
		review.User = &user
	} else {
		review.User = &entity.User{ID: row.UserID}
	}

	if restaurant, ok := s.data.restaurants[row.RestaurantID]; ok {
		review.Restaurant = &restaurant
	} else {
		review.Restaurant = &entity.Restaurant{ID: row.RestaurantID}
	}

	return review
}

// Repositories bound directly to the store, outside any transaction.

func (s *Store) ContactRepository() repository.ContactRepository {
	return &contactRepository{store: s}
}

func (s *Store) UserRepository() repository.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) RestaurantRepository() repository.RestaurantRepository {
	return &restaurantRepository{store: s}
}

func (s *Store) ReviewRepository() repository.ReviewRepository {
	return &reviewRepository{store: s}
}

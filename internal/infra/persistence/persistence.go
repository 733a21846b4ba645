// Package persistence selects the storage driver and provides the repository set built on it.
package persistence

import (
	"log/slog"

	"foodcritic/config"
	"foodcritic/internal/domain/constants"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/errors"
	"foodcritic/internal/infra/persistence/memory"
	"foodcritic/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the parameters required to open storage
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the repository set shared by validators and services.
type Repositories struct {
	fx.Out

	Contacts     repository.ContactRepository
	Users        repository.UserRepository
	Restaurants  repository.RestaurantRepository
	Reviews      repository.ReviewRepository
	Transactions repository.TransactionManager
}

// New builds the repositories for the driver named in storage.driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case constants.StorageDriverPostgres:
		return newPostgres(params)
	case constants.StorageDriverMemory:
		return NewMemory(params.Logger), nil
	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

// NewMemory builds repositories over a fresh in-memory store.
func NewMemory(logger *slog.Logger) Repositories {
	store := memory.NewStore(logger)

	return Repositories{
		Contacts:     store.ContactRepository(),
		Users:        store.UserRepository(),
		Restaurants:  store.RestaurantRepository(),
		Reviews:      store.ReviewRepository(),
		Transactions: memory.NewTransactionManager(store),
	}
}

func newPostgres(params Params) (Repositories, error) {
	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}

	return Repositories{
		Contacts:     postgres.NewContactRepository(db, params.Logger),
		Users:        postgres.NewUserRepository(db, params.Logger),
		Restaurants:  postgres.NewRestaurantRepository(db, params.Logger),
		Reviews:      postgres.NewReviewRepository(db, params.Logger),
		Transactions: postgres.NewTransactionManager(db, params.Logger),
	}, nil
}

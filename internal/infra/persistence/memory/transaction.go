package memory

import (
	"context"

	"foodcritic/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a transaction manager over store. Transactions
// run one at a time and a failed one restores the tables as they were before it began.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewContactRepository() repository.ContactRepository {
	return f.store.ContactRepository()
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return f.store.UserRepository()
}

func (f *repositoryFactory) NewRestaurantRepository() repository.RestaurantRepository {
	return f.store.RestaurantRepository()
}

func (f *repositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return f.store.ReviewRepository()
}

// Execute runs fn with exclusive write access to the store.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	snapshot := tm.store.snapshot()

	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snapshot)
			panic(r)
		}
	}()

	if err = fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.restore(snapshot)

		return err
	}

	return nil
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/errors"
)

// propagate returns typed domain outcomes untouched so the delivery layer can
// map them, and wraps everything else with context.
func propagate(err error, message string) error {
	if err == nil {
		return nil
	}

	if domainerrors.IsTyped(err) {
		return err
	}

	return errors.Wrap(err, message)
}

// notFound swaps a repository sentinel for the matching domain error.
func notFound(err, sentinel error, domainErr *domainerrors.BaseError, message string) error {
	if errors.Is(err, sentinel) {
		return domainErr
	}

	return errors.Wrap(err, message)
}

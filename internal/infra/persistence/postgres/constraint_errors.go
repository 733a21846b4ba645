package postgres

import (
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// Constraint names declared on the models.
const (
	constraintContactsEmail          = "uq_contacts_email"
	constraintUsersEmail             = "uq_users_email"
	constraintRestaurantsPhonenumber = "uq_restaurants_phonenumber"
	constraintReviewsUserRestaurant  = "uq_reviews_user_restaurant"
	constraintReviewsUser            = "fk_reviews_user"
	constraintReviewsRestaurant      = "fk_reviews_restaurant"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return sqlState(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return sqlState(err) == sqlStateForeignKeyViolation
}

// conflictForConstraint maps a unique index onto the conflict the validator would have reported.
func conflictForConstraint(name string) error {
	switch name {
	case constraintContactsEmail:
		return domainerrors.ErrContactEmailTaken
	case constraintUsersEmail:
		return domainerrors.ErrUserEmailTaken
	case constraintRestaurantsPhonenumber:
		return domainerrors.ErrRestaurantPhonenumberTaken
	case constraintReviewsUserRestaurant:
		return domainerrors.ErrReviewAlreadyExists
	default:
		return nil
	}
}

// constraintName returns the violated constraint, when the driver reports one.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

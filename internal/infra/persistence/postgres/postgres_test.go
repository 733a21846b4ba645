package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/errors"
	"foodcritic/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConstraintTranslation(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: sqlStateUniqueViolation, ConstraintName: constraintUsersEmail}, "insert")
	foreignKey := &pgconn.PgError{Code: sqlStateForeignKeyViolation, ConstraintName: constraintReviewsRestaurant}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreignKey))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("timeout")))

	assert.Equal(t, constraintUsersEmail, constraintName(unique))
	assert.Empty(t, constraintName(gorm.ErrDuplicatedKey))

	tests := map[string]error{
		constraintContactsEmail:          domainerrors.ErrContactEmailTaken,
		constraintUsersEmail:             domainerrors.ErrUserEmailTaken,
		constraintRestaurantsPhonenumber: domainerrors.ErrRestaurantPhonenumberTaken,
		constraintReviewsUserRestaurant:  domainerrors.ErrReviewAlreadyExists,
		"pk_reviews":                     nil,
	}
	for name, want := range tests {
		assert.Equal(t, want, conflictForConstraint(name), name)
	}
}

func TestTranslateContactWriteError(t *testing.T) {
	assert.Same(t, domainerrors.ErrContactEmailTaken, translateContactWriteError(gorm.ErrDuplicatedKey, "create"))

	err := translateContactWriteError(errors.New("connection refused"), "failed to create contact")
	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)
	assert.False(t, domainerrors.IsTyped(err))
}

func TestMappers(t *testing.T) {
	birth := time.Date(1980, time.January, 2, 0, 0, 0, 0, time.UTC)
	contact := &entity.Contact{ID: 3, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", PhoneNumber: "(212) 555-1212", BirthDate: entity.NewDate(birth)}
	assert.Equal(t, contact, toContactDomain(fromContactDomain(contact)))

	user := &entity.User{ID: 1, Name: "Ann", Email: "ann@example.com", PhoneNumber: "07123456789"}
	assert.Equal(t, user, toUserDomain(fromUserDomain(user)))

	restaurant := &entity.Restaurant{ID: 2, Name: "Nandos", PhoneNumber: "02079460000", Postcode: "SW1A1A"}
	assert.Equal(t, restaurant, toRestaurantDomain(fromRestaurantDomain(restaurant)))

	reviewM := fromReviewDomain(&entity.Review{Review: "great", Rating: 5, User: user, Restaurant: restaurant})
	assert.Equal(t, int64(1), reviewM.UserID)
	assert.Equal(t, int64(2), reviewM.RestaurantID)
	assert.Nil(t, reviewM.User)

	review := toReviewDomain(&model.ReviewModel{ID: 9, Review: "ok", Rating: 3, UserID: 1, RestaurantID: 2})
	assert.Equal(t, int64(1), review.UserID())
	assert.Equal(t, int64(2), review.RestaurantID())

	assert.Nil(t, toReviewDomain(nil))
	assert.Nil(t, fromContactDomain(nil))
}

func TestGormSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	quiet := newGormSlogLogger(base, false)
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	quiet.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	quiet.Trace(context.Background(), time.Now(), sqlFn, errors.New("syntax error"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "syntax error")

	buf.Reset()
	quiet.Trace(context.Background(), time.Now().Add(-time.Minute), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	newGormSlogLogger(base, true).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "SELECT 1")

	buf.Reset()
	quiet.LogMode(logger.Silent).Error(context.Background(), "dropped %d", 1)
	assert.Empty(t, buf.String())
}

package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"foodcritic/internal/domain/entity"
	"foodcritic/internal/domain/service"
	"foodcritic/internal/infra/persistence/memory"
	"foodcritic/internal/infra/qrcode"
	"foodcritic/internal/usecase"
	"foodcritic/internal/usecase/validator"

	"github.com/stretchr/testify/require"
)

// services wires every use case against one in-memory store.
type services struct {
	contacts    usecase.ContactUsecase
	users       usecase.UserUsecase
	restaurants usecase.RestaurantUsecase
	reviews     usecase.ReviewUsecase
	store       *memory.Store
}

func newServices(t *testing.T, publisher service.EventPublisher) services {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore(logger)
	txManager := memory.NewTransactionManager(store)

	engine, err := validator.NewEngine()
	require.NoError(t, err)

	return services{
		contacts: NewContactService(ContactServiceParams{
			TxManager:   txManager,
			ContactRepo: store.ContactRepository(),
			Validator:   validator.NewContactValidator(engine, store.ContactRepository()),
			Logger:      logger,
		}),
		users: NewUserService(UserServiceParams{
			TxManager: txManager,
			UserRepo:  store.UserRepository(),
			Validator: validator.NewUserValidator(engine, store.UserRepository()),
			Logger:    logger,
		}),
		restaurants: NewRestaurantService(RestaurantServiceParams{
			TxManager:      txManager,
			RestaurantRepo: store.RestaurantRepository(),
			Validator:      validator.NewRestaurantValidator(engine, store.RestaurantRepository()),
			QRCodeService:  qrcode.NewQRCodeService(128, "M", ""),
			Logger:         logger,
		}),
		reviews: NewReviewService(ReviewServiceParams{
			TxManager:  txManager,
			ReviewRepo: store.ReviewRepository(),
			Validator:  validator.NewReviewValidator(engine, store.ReviewRepository()),
			Publisher:  publisher,
			Logger:     logger,
		}),
		store: store,
	}
}

func newContact(email string) *entity.Contact {
	return &entity.Contact{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       email,
		PhoneNumber: "(212) 555-1212",
		BirthDate:   entity.NewDate(time.Date(1980, time.January, 2, 0, 0, 0, 0, time.UTC)),
	}
}

func newUser(name, email string) *entity.User {
	return &entity.User{Name: name, Email: email, PhoneNumber: "07123456789"}
}

func newRestaurant(name, phoneNumber string) *entity.Restaurant {
	return &entity.Restaurant{Name: name, PhoneNumber: phoneNumber, Postcode: "AB12CD"}
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/domain/service"
	"foodcritic/internal/errors"
	"foodcritic/internal/usecase"
	"foodcritic/internal/usecase/validator"

	"go.uber.org/fx"
)

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	validator      *validator.RestaurantValidator
	qrCodeService  service.QRCodeService
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	Validator      *validator.RestaurantValidator
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		validator:      params.Validator,
		qrCodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *restaurantService) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.FindAll(ctx)

	return restaurants, propagate(err, "failed to find all restaurants")
}

func (srv *restaurantService) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrRestaurantNotFound, domainerrors.ErrRestaurantNotFound, "failed to find restaurant by id")
	}

	return restaurant, nil
}

func (srv *restaurantService) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, notFound(err, repository.ErrRestaurantNotFound, domainerrors.ErrRestaurantNotFound, "failed to find restaurant by phone number")
	}

	return restaurant, nil
}

// Create validates the restaurant and inserts it in one transaction.
func (srv *restaurantService) Create(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	srv.log(ctx).Debug("Creating restaurant", slog.String("phonenumber", restaurant.PhoneNumber))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.NewRestaurantRepository()

		if err := srv.validator.WithRepository(restaurantRepo).Validate(ctx, restaurant); err != nil {
			return err
		}

		return restaurantRepo.Create(ctx, restaurant)
	})
	if err != nil {
		return nil, propagate(err, "failed to create restaurant")
	}

	return restaurant, nil
}

// Delete removes the restaurant; storage cascades the delete to its reviews.
func (srv *restaurantService) Delete(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	if restaurant.ID == 0 {
		return nil, nil
	}

	var deleted *entity.Restaurant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		deleted, err = repoFactory.NewRestaurantRepository().Delete(ctx, restaurant)

		return err
	})
	if err != nil {
		return nil, propagate(err, "failed to delete restaurant")
	}

	return deleted, nil
}

// ReviewQRCode renders the QR code for an existing restaurant.
func (srv *restaurantService) ReviewQRCode(ctx context.Context, id int64) ([]byte, error) {
	restaurant, err := srv.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateReviewQR(restaurant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate review QR code")
	}

	return png, nil
}

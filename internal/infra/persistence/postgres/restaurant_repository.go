package postgres

import (
	"context"
	"log/slog"

	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/errors"
	"foodcritic/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB, logger *slog.Logger) repository.RestaurantRepository {
	return &restaurantRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll returns every restaurant ordered by phone number.
func (repo *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Order("phonenumber").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindByID retrieves a restaurant by its id.
func (repo *restaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByPhoneNumber retrieves the restaurant registered with the given phone number.
func (repo *restaurantRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Restaurant, error) {
	return repo.findOne(ctx, "phonenumber = ?", phoneNumber)
}

// Create persists a new restaurant and assigns its id.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	deliverycontext.GetLoggerOrDefault(ctx, repo.logger).InfoContext(ctx, "Creating restaurant", slog.Any("restaurant", restaurant))

	restaurantM := fromRestaurantDomain(restaurant)
	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRestaurantPhonenumberTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID

	return nil
}

// Delete removes the restaurant. Its reviews go with it through ON DELETE CASCADE.
func (repo *restaurantRepository) Delete(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	deliverycontext.GetLoggerOrDefault(ctx, repo.logger).InfoContext(ctx, "Deleting restaurant", slog.Any("restaurant", restaurant))

	if restaurant.ID == 0 {
		return restaurant, nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", restaurant.ID).
		Delete(&model.RestaurantModel{}).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete restaurant")
	}

	return restaurant, nil
}

func (repo *restaurantRepository) findOne(ctx context.Context, where string, arg any) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where(where, arg).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrapf(err, "failed to find restaurant where %s", where)
	}

	return toRestaurantDomain(&restaurantM), nil
}

// --- Mapper Functions ---

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:          data.ID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		Postcode:    data.Postcode,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:          data.ID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		Postcode:    data.Postcode,
	}
}

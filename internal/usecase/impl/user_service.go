package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/usecase"
	"foodcritic/internal/usecase/validator"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	validator *validator.UserValidator
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Validator *validator.UserValidator
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) FindAll(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)

	return users, propagate(err, "failed to find all users")
}

func (srv *userService) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user by id")
	}

	return user, nil
}

func (srv *userService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user by email")
	}

	return user, nil
}

// Create validates the user and inserts it in one transaction.
func (srv *userService) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	srv.log(ctx).Debug("Creating user", slog.String("email", user.Email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := srv.validator.WithRepository(userRepo).Validate(ctx, user); err != nil {
			return err
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, propagate(err, "failed to create user")
	}

	srv.log(ctx).Debug("User created", slog.Int64("userID", user.ID))

	return user, nil
}

// Delete removes the user; storage cascades the delete to their reviews.
func (srv *userService) Delete(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.ID == 0 {
		return nil, nil
	}

	var deleted *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		deleted, err = repoFactory.NewUserRepository().Delete(ctx, user)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, propagate(err, "failed to delete user")
	}

	return deleted, nil
}

package handler

import (
	"log/slog"
	"net/http"

	"foodcritic/internal/delivery/api/response"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const userEntityName = "User"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// ListUsers returns every user, or the user owning ?email=.
func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	if email := c.QueryParam("email"); email != "" {
		user, err := h.userUC.FindByEmail(ctx, email)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, user)
	}

	users, err := h.userUC.FindAll(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetUser returns one user by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrUserNotFound, userEntityName, id)
	}

	return response.Success(c, http.StatusOK, user)
}

// CreateUser registers a new reviewer.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var user *entity.User
	if err := c.Bind(&user); err != nil || user == nil {
		return response.BindingError(c, "Invalid user input")
	}

	if user.ID != 0 {
		return idNotAllowed(c, "user")
	}

	created, err := h.userUC.Create(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// DeleteUser removes a user and every review they wrote.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	user, err := h.userUC.FindByID(ctx, id)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrUserNotFound, userEntityName, id)
	}

	if _, err := h.userUC.Delete(ctx, user); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

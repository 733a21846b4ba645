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

const restaurantEntityName = "Restaurant"

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler serves the restaurant endpoints.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// ListRestaurants returns every restaurant, or the one answering ?phonenumber=.
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	ctx := c.Request().Context()

	if phoneNumber := c.QueryParam("phonenumber"); phoneNumber != "" {
		restaurant, err := h.restaurantUC.FindByPhoneNumber(ctx, phoneNumber)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, restaurant)
	}

	restaurants, err := h.restaurantUC.FindAll(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants)
}

// GetRestaurant returns one restaurant by id.
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.restaurantUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrRestaurantNotFound, restaurantEntityName, id)
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// GetReviewQRCode returns a PNG QR code that opens the restaurant's reviews.
func (h *RestaurantHandler) GetReviewQRCode(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.restaurantUC.ReviewQRCode(c.Request().Context(), id)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrRestaurantNotFound, restaurantEntityName, id)
	}

	return response.PNG(c, png)
}

// CreateRestaurant stores a new restaurant.
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var restaurant *entity.Restaurant
	if err := c.Bind(&restaurant); err != nil || restaurant == nil {
		return response.BindingError(c, "Invalid restaurant input")
	}

	if restaurant.ID != 0 {
		return idNotAllowed(c, "restaurant")
	}

	created, err := h.restaurantUC.Create(c.Request().Context(), restaurant)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// DeleteRestaurant removes a restaurant and all of its reviews.
func (h *RestaurantHandler) DeleteRestaurant(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	restaurant, err := h.restaurantUC.FindByID(ctx, id)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrRestaurantNotFound, restaurantEntityName, id)
	}

	if _, err := h.restaurantUC.Delete(ctx, restaurant); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodcritic/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ContactHandler    *handler.ContactHandler
	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	ReviewHandler     *handler.ReviewHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	contactHandler    *handler.ContactHandler
	userHandler       *handler.UserHandler
	restaurantHandler *handler.RestaurantHandler
	reviewHandler     *handler.ReviewHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		contactHandler:    params.ContactHandler,
		userHandler:       params.UserHandler,
		restaurantHandler: params.RestaurantHandler,
		reviewHandler:     params.ReviewHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	contacts := e.Group("/contacts")
	{
		contacts.GET("", r.contactHandler.ListContacts)
		contacts.GET("/:id", r.contactHandler.GetContact)
		contacts.POST("", r.contactHandler.CreateContact)
		contacts.PUT("", r.contactHandler.UpdateContact)
		contacts.PUT("/:id", r.contactHandler.UpdateContact)
		contacts.DELETE("/:id", r.contactHandler.DeleteContact)
	}

	users := e.Group("/user")
	{
		users.GET("", r.userHandler.ListUsers)
		users.GET("/:id", r.userHandler.GetUser)
		users.POST("", r.userHandler.CreateUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)
	}

	restaurants := e.Group("/restaurants")
	{
		restaurants.GET("", r.restaurantHandler.ListRestaurants)
		restaurants.GET("/:id", r.restaurantHandler.GetRestaurant)
		restaurants.GET("/:id/qr", r.restaurantHandler.GetReviewQRCode)
		restaurants.POST("", r.restaurantHandler.CreateRestaurant)
		restaurants.DELETE("/:id", r.restaurantHandler.DeleteRestaurant)
	}

	reviews := e.Group("/reviews")
	{
		reviews.GET("", r.reviewHandler.ListReviews)
		reviews.GET("/getByUserId", r.reviewHandler.ListReviewsByUser)
		reviews.GET("/:id", r.reviewHandler.GetReview)
		reviews.POST("", r.reviewHandler.CreateReview)
		reviews.DELETE("/:id", r.reviewHandler.DeleteReview)
	}
}

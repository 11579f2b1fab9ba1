// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"restro/internal/delivery/http/middleware"
	"restro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	BookingHandler *handler.BookingHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	bookingHandler *handler.BookingHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		bookingHandler: params.BookingHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The four
// POST paths are the public wire contract.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.POST("/createacc", r.accountHandler.CreateAccount)
	e.POST("/login", r.accountHandler.Login)
	e.POST("/contact", r.bookingHandler.CreateBooking)
	e.POST("/place_order", r.orderHandler.PlaceOrder)

	// Routes that require a valid access token
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.accountHandler.GetProfile)
	}
}

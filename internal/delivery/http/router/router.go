// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"athletehub/internal/delivery/http/middleware"
	"athletehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AthleteHandler *handler.AthleteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	athleteHandler *handler.AthleteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		athleteHandler: params.AthleteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/register", r.athleteHandler.Register)
	e.POST("/login", r.athleteHandler.Login)

	// Routes that require a bearer token
	auth := r.authMiddleware.Authenticate
	e.GET("/athletes", r.athleteHandler.ListAthletes, auth)
	e.GET("/athlete/:id", r.athleteHandler.GetAthlete, auth)
	e.PUT("/athletes/:id", r.athleteHandler.UpdateAthlete, auth)
	e.DELETE("/athletes/:id", r.athleteHandler.DeleteAthlete, auth)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"challengehub/config"
	"challengehub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ChallengeHandler *handler.ChallengeHandler
	Gatherer         prometheus.Gatherer
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	challengeHandler *handler.ChallengeHandler
	gatherer         prometheus.Gatherer
	config           *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		challengeHandler: params.ChallengeHandler,
		gatherer:         params.Gatherer,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths are kept as existing clients call them.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	// Challenge routes
	e.POST("/newChallenges", r.challengeHandler.Create)
	e.DELETE("/deleteChallenge/:challengeId", r.challengeHandler.Delete)
	e.GET("/my-challenges", r.challengeHandler.ListMine)
	e.GET("/challenges/:challengeId", r.challengeHandler.GetByID)
	e.GET("/all-challenges", r.challengeHandler.ListAll)
}

// RegisterMetricsRoute exposes Prometheus metrics when enabled in config.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.gatherer == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
}

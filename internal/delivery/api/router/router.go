// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"fuelradar/config"
	"fuelradar/internal/delivery/api/middleware"
	"fuelradar/internal/delivery/api/router/handler"
	"fuelradar/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StationHandler *handler.StationHandler
	CatalogHandler *handler.CatalogHandler
	StatusHandler  *handler.StatusHandler
	AlertHandler   *handler.AlertHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	stationHandler *handler.StationHandler
	catalogHandler *handler.CatalogHandler
	statusHandler  *handler.StatusHandler
	alertHandler   *handler.AlertHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		stationHandler: params.StationHandler,
		catalogHandler: params.CatalogHandler,
		statusHandler:  params.StatusHandler,
		alertHandler:   params.AlertHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/telegram", r.authHandler.TelegramLogin)
	}

	apiV1 := e.Group("/api/v1")

	// Public price data
	apiV1.GET("/status", r.statusHandler.Status)
	apiV1.GET("/fuels", r.catalogHandler.AvailableFuels)
	apiV1.GET("/municipalities", r.catalogHandler.Municipalities)
	apiV1.GET("/municipalities/:key/stations", r.stationHandler.StationsByMunicipality)

	stationsGroup := apiV1.Group("/stations")
	{
		stationsGroup.GET("/cheapest", r.stationHandler.CheapestStations)
		stationsGroup.GET("/most-expensive", r.stationHandler.MostExpensiveStations)
		stationsGroup.GET("/nearby", r.stationHandler.NearbyStations)
	}

	// Sharing an alert target needs no account
	apiV1.GET("/alerts/qr", r.alertHandler.GenerateAlertQR)

	alertsGroup := apiV1.Group("/alerts")
	alertsGroup.Use(r.authMiddleware.Authenticate)
	{
		alertsGroup.POST("", r.alertHandler.CreateAlert)
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.DELETE("/:id", r.alertHandler.DeleteAlert)
		alertsGroup.POST("/qr", r.alertHandler.SubscribeFromQR)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.registry == nil {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = "/metrics"
	}
	e.Match([]string{http.MethodGet, http.MethodHead}, path, echo.WrapHandler(metrics.Handler(r.registry)))
}

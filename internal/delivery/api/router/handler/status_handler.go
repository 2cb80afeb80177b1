package handler

import (
	"net/http"

	"fuelradar/internal/delivery/api/response"
	"fuelradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// StatusHandlerParams holds dependencies for StatusHandler, injected by Fx.
type StatusHandlerParams struct {
	fx.In

	StationUC usecase.StationUsecase
}

// StatusHandler reports station data freshness
type StatusHandler struct {
	stationUC usecase.StationUsecase
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(params StatusHandlerParams) *StatusHandler {
	return &StatusHandler{stationUC: params.StationUC}
}

// Status handles GET /status
func (h *StatusHandler) Status(c echo.Context) error {
	status, err := h.stationUC.Status(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

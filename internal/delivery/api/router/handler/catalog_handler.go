package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"fuelradar/internal/delivery/api/response"
	"fuelradar/internal/domain/entity"
	"fuelradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	StationUC usecase.StationUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the fuel and municipality catalogs
type CatalogHandler struct {
	stationUC usecase.StationUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		stationUC: params.StationUC,
		logger:    params.Logger,
	}
}

// AvailableFuels handles GET /fuels
func (h *CatalogHandler) AvailableFuels(c echo.Context) error {
	fuels, err := h.stationUC.AvailableFuels(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fuels)
}

// Municipalities handles GET /municipalities. With ?q= it searches by name.
func (h *CatalogHandler) Municipalities(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("q"))
	if term == "" {
		return response.Success(c, http.StatusOK, entity.Municipalities())
	}

	matches := h.stationUC.SearchMunicipalities(c.Request().Context(), term)
	if matches == nil {
		matches = []entity.Municipality{}
	}

	return response.Success(c, http.StatusOK, matches)
}

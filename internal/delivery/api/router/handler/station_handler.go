package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"fuelradar/internal/delivery/api/response"
	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// StationHandlerParams holds dependencies for StationHandler, injected by Fx.
type StationHandlerParams struct {
	fx.In

	StationUC usecase.StationUsecase
	Logger    *slog.Logger
}

// StationHandler holds dependencies for station browsing handlers
type StationHandler struct {
	stationUC usecase.StationUsecase
	logger    *slog.Logger
}

// NewStationHandler is the constructor for StationHandler
func NewStationHandler(params StationHandlerParams) *StationHandler {
	return &StationHandler{
		stationUC: params.StationUC,
		logger:    params.Logger,
	}
}

// RankingRequest selects a fuel and the number of stations to return
type RankingRequest struct {
	Fuel  string `query:"fuel" validate:"required"`
	Limit int    `query:"limit" validate:"gte=0"`
}

// MunicipalityStationsRequest selects one page of a municipality's stations
type MunicipalityStationsRequest struct {
	Key      string `param:"key" validate:"required"`
	Page     int    `query:"page" validate:"gte=0"`
	PageSize int    `query:"pageSize" validate:"gte=0"`
}

// NearbyRequest is a proximity search around a point
type NearbyRequest struct {
	Latitude  string   `query:"lat" validate:"required"`
	Longitude string   `query:"lon" validate:"required"`
	RadiusKm  string   `query:"radiusKm"`
	Fuel      string   `query:"fuel"`
	Format    string   `query:"format" validate:"omitempty,oneof=json geojson"`
}

// CheapestStations handles GET /stations/cheapest
func (h *StationHandler) CheapestStations(c echo.Context) error {
	var req RankingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	stations, err := h.stationUC.CheapestStations(c.Request().Context(), req.Fuel, req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stations)
}

// MostExpensiveStations handles GET /stations/most-expensive
func (h *StationHandler) MostExpensiveStations(c echo.Context) error {
	var req RankingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	stations, err := h.stationUC.MostExpensiveStations(c.Request().Context(), req.Fuel, req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stations)
}

// StationsByMunicipality handles GET /municipalities/:key/stations
func (h *StationHandler) StationsByMunicipality(c echo.Context) error {
	var req MunicipalityStationsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.stationUC.StationsByMunicipality(c.Request().Context(), req.Key, req.Page, req.PageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page, page.Page, page.PageSize, page.Total)
}

// NearbyStations handles GET /stations/nearby, as JSON or as a GeoJSON FeatureCollection
func (h *StationHandler) NearbyStations(c echo.Context) error {
	var req NearbyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	lat, latErr := strconv.ParseFloat(req.Latitude, 64)
	lon, lonErr := strconv.ParseFloat(req.Longitude, 64)
	if latErr != nil || lonErr != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("lat and lon must be decimal degrees"))
	}

	var radiusKm *float64
	if req.RadiusKm != "" {
		radius, err := strconv.ParseFloat(req.RadiusKm, 64)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("radiusKm must be a number"))
		}
		radiusKm = &radius
	}

	search := &usecase.NearbySearch{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  radiusKm,
		Fuel:      entity.FuelType(req.Fuel),
	}
	ranked, err := h.stationUC.NearbyStations(c.Request().Context(), search)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if req.Format == "geojson" {
		return c.JSON(http.StatusOK, NearbyFeatureCollection(ranked, search.Fuel))
	}

	return response.Success(c, http.StatusOK, ranked)
}

// NearbyFeatureCollection renders ranked stations as GeoJSON points in rank order.
func NearbyFeatureCollection(ranked []*entity.RankedStation, fuel entity.FuelType) *geojson.FeatureCollection {
	if fuel == "" {
		fuel = entity.PrimaryFuel
	}

	fc := geojson.NewFeatureCollection()
	for rank, item := range ranked {
		station := item.Station
		if station.Location == nil {
			continue
		}

		feature := geojson.NewFeature(orb.Point{station.Location.Longitude, station.Location.Latitude})
		feature.ID = station.ID
		feature.Properties["rank"] = rank + 1
		feature.Properties["name"] = station.Name
		feature.Properties["address"] = station.Address
		feature.Properties["municipality"] = station.MunicipalityName
		feature.Properties["distance_km"] = item.DistanceKm
		feature.Properties["fuel"] = string(fuel)
		if price, ok := station.Price(fuel); ok {
			feature.Properties["price"] = price
		}
		fc.Append(feature)
	}

	return fc
}

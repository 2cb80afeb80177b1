package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata" // Atlantic/Canary must resolve on minimal images

	"fuelradar/config"
	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/repository"
	"fuelradar/internal/errors"
	"fuelradar/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultStationLimit = 10
	maxStationLimit     = 100
	defaultPageSize     = 10
	maxPageSize         = 50

	statusTimeLayout = "02/01/2006 15:04"
)

type stationService struct {
	stationRepo repository.StationRepository
	ranker      usecase.ProximityRanker
	config      *config.Config
	location    *time.Location
	logger      *slog.Logger
}

// StationServiceParams holds dependencies for StationService, injected by Fx.
type StationServiceParams struct {
	fx.In

	StationRepo repository.StationRepository
	Ranker      usecase.ProximityRanker
	Config      *config.Config
	Logger      *slog.Logger
}

// NewStationService creates a new station service instance
func NewStationService(params StationServiceParams) usecase.StationUsecase {
	location, err := time.LoadLocation(params.Config.Stations.Timezone)
	if err != nil {
		params.Logger.Warn("Unknown timezone, falling back to UTC",
			slog.String("timezone", params.Config.Stations.Timezone),
			slog.Any("error", err),
		)
		location = time.UTC
	}

	return &stationService{
		stationRepo: params.StationRepo,
		ranker:      params.Ranker,
		config:      params.Config,
		location:    location,
		logger:      params.Logger,
	}
}

// CheapestStations returns the cheapest stations for a fuel.
func (s *stationService) CheapestStations(ctx context.Context, fuel string, limit int) ([]*entity.Station, error) {
	fuelInfo, ok := entity.LookupFuelType(fuel)
	if !ok {
		return nil, domainerrors.ErrUnknownFuel.WithDetails(fuel)
	}

	stations, err := s.stationRepo.FindByFuelAscending(ctx, fuelInfo.Key, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cheapest stations")
	}

	return stations, nil
}

// MostExpensiveStations returns the most expensive stations for a fuel.
func (s *stationService) MostExpensiveStations(ctx context.Context, fuel string, limit int) ([]*entity.Station, error) {
	fuelInfo, ok := entity.LookupFuelType(fuel)
	if !ok {
		return nil, domainerrors.ErrUnknownFuel.WithDetails(fuel)
	}

	stations, err := s.stationRepo.FindByFuelDescending(ctx, fuelInfo.Key, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find most expensive stations")
	}

	return stations, nil
}

// StationsByMunicipality returns one page of a municipality's stations.
func (s *stationService) StationsByMunicipality(ctx context.Context, municipality string, page, pageSize int) (*usecase.StationPage, error) {
	target, ok := entity.ResolveMunicipality(municipality)
	if !ok {
		return nil, domainerrors.ErrUnknownMunicipality.WithDetails(municipality)
	}

	if page < 1 {
		page = 1
	}
	switch {
	case pageSize < 1:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}

	stations, total, err := s.stationRepo.FindByMunicipality(ctx, target.ID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stations by municipality")
	}

	return &usecase.StationPage{
		Municipality: target,
		Stations:     stations,
		Page:         page,
		PageSize:     pageSize,
		Total:        total,
	}, nil
}

// SearchMunicipalities finds municipalities matching term.
func (s *stationService) SearchMunicipalities(_ context.Context, term string) []entity.Municipality {
	return entity.SearchMunicipalities(term)
}

// AvailableFuels returns the fuels reported by at least one station.
func (s *stationService) AvailableFuels(ctx context.Context) ([]*entity.FuelAvailability, error) {
	counts, err := s.stationRepo.CountByFuel(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stations by fuel")
	}

	available := make([]*entity.FuelAvailability, 0, len(counts))
	for _, info := range entity.FuelTypes() {
		if counts[info.Key] <= 0 {
			continue
		}
		available = append(available, &entity.FuelAvailability{FuelTypeInfo: info, StationCount: counts[info.Key]})
	}

	return available, nil
}

// NearbyStations applies the configured radius limits and ranks nearby stations.
func (s *stationService) NearbyStations(ctx context.Context, search *usecase.NearbySearch) ([]*entity.RankedStation, error) {
	if search == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("missing nearby query")
	}

	resolved := usecase.NearbyQuery{
		Latitude:  search.Latitude,
		Longitude: search.Longitude,
		RadiusKm:  s.config.Proximity.DefaultRadiusKm,
		Fuel:      search.Fuel,
	}
	if search.RadiusKm != nil {
		resolved.RadiusKm = *search.RadiusKm
	}
	if resolved.RadiusKm > s.config.Proximity.MaxRadiusKm {
		return nil, domainerrors.ErrInvalidInput.WithDetails(
			fmt.Sprintf("radius %v km exceeds the maximum of %v km", resolved.RadiusKm, s.config.Proximity.MaxRadiusKm))
	}

	return s.ranker.FindNearby(ctx, &resolved)
}

// Status reports the last station refresh in the configured timezone.
func (s *stationService) Status(ctx context.Context) (*usecase.StoreStatus, error) {
	last, err := s.stationRepo.LastImport(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoFeedImport) {
			return nil, domainerrors.ErrNoFeedImport
		}

		return nil, errors.Wrap(err, "failed to load last feed import")
	}

	return &usecase.StoreStatus{
		LastUpdated:  last.ImportedAt,
		LocalTime:    last.ImportedAt.In(s.location).Format(statusTimeLayout),
		Timezone:     s.location.String(),
		StationCount: last.StationCount,
		Source:       last.Source,
	}, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultStationLimit
	case limit > maxStationLimit:
		return maxStationLimit
	default:
		return limit
	}
}

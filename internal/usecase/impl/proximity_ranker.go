package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"fuelradar/config"
	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/repository"
	"fuelradar/internal/errors"
	"fuelradar/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const (
	// earthRadiusKm is the IUGG mean Earth radius.
	earthRadiusKm = 6371.0088

	// radiusToleranceKm keeps stations that sit exactly on the search circle.
	radiusToleranceKm = 1e-6
)

type proximityRanker struct {
	stationRepo repository.StationRepository
	config      *config.Config
	logger      *slog.Logger
}

// ProximityRankerParams holds dependencies for ProximityRanker, injected by Fx.
type ProximityRankerParams struct {
	fx.In

	StationRepo repository.StationRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProximityRanker creates a new proximity ranker instance
func NewProximityRanker(params ProximityRankerParams) usecase.ProximityRanker {
	return &proximityRanker{
		stationRepo: params.StationRepo,
		config:      params.Config,
		logger:      params.Logger,
	}
}

// FindNearby returns the stations within query.RadiusKm of the query point.
func (r *proximityRanker) FindNearby(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.RankedStation, error) {
	if err := validateNearbyQuery(query); err != nil {
		return nil, err
	}

	fuel := query.Fuel
	if fuel == "" {
		fuel = entity.PrimaryFuel
	}

	stations, err := r.stationRepo.FindWithCoordinates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stations with coordinates")
	}

	center := orb.Point{query.Longitude, query.Latitude}
	bound, prefilter := r.prefilterBound(center, query.RadiusKm)

	ranked := make([]*entity.RankedStation, 0)
	for _, station := range stations {
		if station.Location == nil {
			continue
		}
		point := orb.Point{station.Location.Longitude, station.Location.Latitude}
		if prefilter && !bound.Contains(point) {
			continue
		}

		distance := haversine(query.Latitude, query.Longitude, station.Location.Latitude, station.Location.Longitude)
		if distance > query.RadiusKm+radiusToleranceKm {
			continue
		}

		ranked = append(ranked, &entity.RankedStation{Station: station, DistanceKm: distance})
	}

	sortRanked(ranked, fuel)

	r.logger.Debug("Nearby search completed",
		slog.Float64("lat", query.Latitude),
		slog.Float64("lon", query.Longitude),
		slog.Float64("radius_km", query.RadiusKm),
		slog.String("fuel", string(fuel)),
		slog.Int("candidates", len(stations)),
		slog.Int("results", len(ranked)),
	)

	return ranked, nil
}

// prefilterBound returns a padded box around center. The box is unusable when it
// wraps a pole or the antimeridian, or when it is not padded.
func (r *proximityRanker) prefilterBound(center orb.Point, radiusKm float64) (orb.Bound, bool) {
	multiplier := r.config.Proximity.PreFilterRadiusMultiplier
	if multiplier <= 1 {
		return orb.Bound{}, false
	}

	// orb sizes bounds on its own sphere; convert so the box spans the search angle.
	distanceM := (radiusKm*multiplier + radiusToleranceKm) * orb.EarthRadius / earthRadiusKm
	bound := geo.NewBoundAroundPoint(center, distanceM)
	if bound.Min.Lon() > bound.Max.Lon() || bound.Min.Lat() <= -90 || bound.Max.Lat() >= 90 {
		return orb.Bound{}, false
	}

	return bound, true
}

// sortRanked orders stations with a price for fuel first, then by price and distance.
func sortRanked(ranked []*entity.RankedStation, fuel entity.FuelType) {
	slices.SortStableFunc(ranked, func(a, b *entity.RankedStation) int {
		priceA, okA := a.Station.Price(fuel)
		priceB, okB := b.Station.Price(fuel)

		switch {
		case okA && !okB:
			return -1
		case !okA && okB:
			return 1
		case okA && okB:
			if c := cmp.Compare(priceA, priceB); c != 0 {
				return c
			}
		}

		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
}

func validateNearbyQuery(query *usecase.NearbyQuery) error {
	if query == nil {
		return domainerrors.ErrInvalidInput.WithDetails("missing nearby query")
	}
	if !isValidCoordinate(query.Latitude, query.Longitude) {
		return domainerrors.ErrInvalidInput.WithDetails(
			fmt.Sprintf("coordinates out of range: lat=%v lon=%v", query.Latitude, query.Longitude))
	}
	if math.IsNaN(query.RadiusKm) || math.IsInf(query.RadiusKm, 0) || query.RadiusKm <= 0 {
		return domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("radius must be positive: %v", query.RadiusKm))
	}
	if query.Fuel != "" && !query.Fuel.Valid() {
		return domainerrors.ErrUnknownFuel.WithDetails(string(query.Fuel))
	}

	return nil
}

// isValidCoordinate validates latitude and longitude values.
func isValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// haversine returns the great-circle distance in kilometres between two WGS84 points.
func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	const toRad = math.Pi / 180

	dLat := (lat2 - lat1) * toRad
	dLng := (lng2 - lng1) * toRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*toRad)*math.Cos(lat2*toRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

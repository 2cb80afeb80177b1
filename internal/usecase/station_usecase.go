package usecase

import (
	"context"
	"time"

	"fuelradar/internal/domain/entity"
)

// StationPage is one page of a municipality's stations.
type StationPage struct {
	Municipality entity.Municipality `json:"municipality"`
	Stations     []*entity.Station   `json:"stations"`
	Page         int                 `json:"page"`
	PageSize     int                 `json:"page_size"`
	Total        int64               `json:"total"`
}

// StoreStatus describes the freshness of the station data.
type StoreStatus struct {
	LastUpdated  time.Time `json:"last_updated"`
	LocalTime    string    `json:"local_time"` // LastUpdated formatted in the configured timezone
	Timezone     string    `json:"timezone"`
	StationCount int       `json:"station_count"`
	Source       string    `json:"source"`
}

// NearbySearch is a proximity search as requested by a client.
// A nil RadiusKm selects the configured default radius.
type NearbySearch struct {
	Latitude  float64
	Longitude float64
	RadiusKm  *float64
	Fuel      entity.FuelType
}

// StationUsecase defines the interface for station browsing use cases
type StationUsecase interface {
	// CheapestStations returns up to limit stations selling fuel, cheapest first
	CheapestStations(ctx context.Context, fuel string, limit int) ([]*entity.Station, error)

	// MostExpensiveStations returns up to limit stations selling fuel, most expensive first
	MostExpensiveStations(ctx context.Context, fuel string, limit int) ([]*entity.Station, error)

	// StationsByMunicipality returns one page of stations for a municipality key
	StationsByMunicipality(ctx context.Context, municipality string, page, pageSize int) (*StationPage, error)

	// SearchMunicipalities finds municipalities by a case and accent insensitive substring
	SearchMunicipalities(ctx context.Context, term string) []entity.Municipality

	// AvailableFuels returns fuels currently sold by at least one station, by priority
	AvailableFuels(ctx context.Context) ([]*entity.FuelAvailability, error)

	// NearbyStations returns stations around a point, ranked by price then distance
	NearbyStations(ctx context.Context, search *NearbySearch) ([]*entity.RankedStation, error)

	// Status reports when the station data was last refreshed
	Status(ctx context.Context) (*StoreStatus, error)
}

package repository

import (
	"context"

	"fuelradar/internal/domain/entity"
	"fuelradar/internal/errors"
)

// Domain-specific errors for station persistence.
var (
	// ErrNoPriceData is returned when no station reports a positive price for the query.
	ErrNoPriceData = errors.New("no price data")
	// ErrNoFeedImport is returned when the store has never been refreshed.
	ErrNoFeedImport = errors.New("no feed import recorded")
)

// StationRepository defines the read and refresh operations of the station price store.
// Only strictly positive prices are ever considered present.
type StationRepository interface {
	// FindByFuelAscending returns stations with a price for fuel, cheapest first; ties by station ID.
	// A non-positive limit returns every match.
	FindByFuelAscending(ctx context.Context, fuel entity.FuelType, limit int) ([]*entity.Station, error)

	// FindByFuelDescending returns stations with a price for fuel, most expensive first; ties by station ID.
	FindByFuelDescending(ctx context.Context, fuel entity.FuelType, limit int) ([]*entity.Station, error)

	// FindByMunicipality returns a page of stations in a municipality ordered by name and the total count.
	FindByMunicipality(ctx context.Context, municipalityID, offset, limit int) ([]*entity.Station, int64, error)

	// FindCheapestInMunicipality returns the minimum positive price for fuel in a municipality.
	// Ties are broken by station ID. Returns ErrNoPriceData when no station reports the fuel.
	FindCheapestInMunicipality(ctx context.Context, fuel entity.FuelType, municipalityID int) (*entity.CheapestStation, error)

	// FindWithCoordinates returns every station that has a valid coordinate pair.
	FindWithCoordinates(ctx context.Context) ([]*entity.Station, error)

	// CountByFuel returns how many stations report a positive price for each fuel.
	CountByFuel(ctx context.Context) (map[entity.FuelType]int64, error)

	// ReplaceAll atomically swaps the whole station set and records the import.
	// Readers observe either the previous set or the new one, never a mix.
	ReplaceAll(ctx context.Context, stations []*entity.Station, feedImport *entity.FeedImport) error

	// LastImport returns the most recent feed import. Returns ErrNoFeedImport when none exists.
	LastImport(ctx context.Context) (*entity.FeedImport, error)
}

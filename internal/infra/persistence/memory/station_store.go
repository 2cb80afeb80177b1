// Package memory provides an in-process station price store.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync/atomic"
	"time"

	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/repository"
)

// snapshot is immutable once published.
type snapshot struct {
	stations   []*entity.Station
	feedImport *entity.FeedImport
}

// StationStore keeps the whole station set in memory and swaps it atomically on refresh.
// Returned stations are shared between readers and must be treated as read-only.
type StationStore struct {
	current  atomic.Pointer[snapshot]
	importID atomic.Int64
}

// NewStationStore returns an empty store.
func NewStationStore() *StationStore {
	store := &StationStore{}
	store.current.Store(&snapshot{})

	return store
}

// NewStationRepository returns an empty store as a repository.StationRepository.
func NewStationRepository() repository.StationRepository {
	return NewStationStore()
}

func (s *StationStore) load() *snapshot {
	return s.current.Load()
}

// FindByFuelAscending returns stations with a price for fuel, cheapest first.
func (s *StationStore) FindByFuelAscending(_ context.Context, fuel entity.FuelType, limit int) ([]*entity.Station, error) {
	return s.findByFuel(fuel, limit, false)
}

// FindByFuelDescending returns stations with a price for fuel, most expensive first.
func (s *StationStore) FindByFuelDescending(_ context.Context, fuel entity.FuelType, limit int) ([]*entity.Station, error) {
	return s.findByFuel(fuel, limit, true)
}

func (s *StationStore) findByFuel(fuel entity.FuelType, limit int, desc bool) ([]*entity.Station, error) {
	if !fuel.Valid() {
		return nil, domainerrors.ErrUnknownFuel
	}

	var matches []*entity.Station
	for _, station := range s.load().stations {
		if _, ok := station.Price(fuel); ok {
			matches = append(matches, station)
		}
	}

	slices.SortFunc(matches, func(a, b *entity.Station) int {
		pa, _ := a.Price(fuel)
		pb, _ := b.Price(fuel)
		byPrice := cmp.Compare(pa, pb)
		if desc {
			byPrice = -byPrice
		}

		return cmp.Or(byPrice, cmp.Compare(a.ID, b.ID))
	})

	return truncate(matches, limit), nil
}

// FindByMunicipality returns a page of stations in a municipality ordered by name.
func (s *StationStore) FindByMunicipality(_ context.Context, municipalityID, offset, limit int) ([]*entity.Station, int64, error) {
	var matches []*entity.Station
	for _, station := range s.load().stations {
		if station.MunicipalityID == municipalityID {
			matches = append(matches, station)
		}
	}

	slices.SortFunc(matches, func(a, b *entity.Station) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	total := int64(len(matches))
	offset = max(offset, 0)
	if offset >= len(matches) {
		return []*entity.Station{}, total, nil
	}

	return truncate(matches[offset:], limit), total, nil
}

// FindCheapestInMunicipality returns the minimum positive price for fuel in a municipality.
func (s *StationStore) FindCheapestInMunicipality(_ context.Context, fuel entity.FuelType, municipalityID int) (*entity.CheapestStation, error) {
	if !fuel.Valid() {
		return nil, domainerrors.ErrUnknownFuel
	}

	var best *entity.Station
	var bestPrice float64
	for _, station := range s.load().stations {
		if station.MunicipalityID != municipalityID {
			continue
		}
		price, ok := station.Price(fuel)
		if !ok {
			continue
		}
		if best == nil || price < bestPrice || (price == bestPrice && station.ID < best.ID) {
			best, bestPrice = station, price
		}
	}

	if best == nil {
		return nil, repository.ErrNoPriceData
	}

	return &entity.CheapestStation{
		Fuel:           fuel,
		MunicipalityID: municipalityID,
		Price:          bestPrice,
		StationID:      best.ID,
		StationName:    best.Name,
		StationAddress: best.Address,
	}, nil
}

// FindWithCoordinates returns every station that has a coordinate pair.
func (s *StationStore) FindWithCoordinates(_ context.Context) ([]*entity.Station, error) {
	var located []*entity.Station
	for _, station := range s.load().stations {
		if station.Location != nil {
			located = append(located, station)
		}
	}

	return located, nil
}

// CountByFuel returns how many stations report a positive price for each fuel.
func (s *StationStore) CountByFuel(_ context.Context) (map[entity.FuelType]int64, error) {
	counts := make(map[entity.FuelType]int64)
	for _, info := range entity.FuelTypes() {
		counts[info.Key] = 0
	}
	for _, station := range s.load().stations {
		for fuel := range counts {
			if _, ok := station.Price(fuel); ok {
				counts[fuel]++
			}
		}
	}

	return counts, nil
}

// ReplaceAll publishes a new snapshot. Stations are copied so later caller mutations are not observed.
func (s *StationStore) ReplaceAll(_ context.Context, stations []*entity.Station, feedImport *entity.FeedImport) error {
	next := &snapshot{stations: make([]*entity.Station, 0, len(stations))}

	seen := make(map[string]int, len(stations))
	for _, station := range stations {
		if station == nil {
			continue
		}
		cloned := cloneStation(station)
		if idx, dup := seen[station.ID]; dup {
			next.stations[idx] = cloned

			continue
		}
		seen[station.ID] = len(next.stations)
		next.stations = append(next.stations, cloned)
	}
	slices.SortFunc(next.stations, func(a, b *entity.Station) int {
		return cmp.Compare(a.ID, b.ID)
	})

	if feedImport == nil {
		feedImport = &entity.FeedImport{}
	}
	if feedImport.ImportedAt.IsZero() {
		feedImport.ImportedAt = time.Now()
	}
	feedImport.ID = s.importID.Add(1)
	feedImport.StationCount = len(next.stations)
	recorded := *feedImport
	next.feedImport = &recorded

	s.current.Store(next)

	return nil
}

// LastImport returns the most recent feed import.
func (s *StationStore) LastImport(_ context.Context) (*entity.FeedImport, error) {
	current := s.load()
	if current.feedImport == nil {
		return nil, repository.ErrNoFeedImport
	}
	feedImport := *current.feedImport

	return &feedImport, nil
}

func truncate(stations []*entity.Station, limit int) []*entity.Station {
	if limit > 0 && len(stations) > limit {
		return stations[:limit]
	}
	if stations == nil {
		return []*entity.Station{}
	}

	return stations
}

func cloneStation(station *entity.Station) *entity.Station {
	cloned := *station
	if station.Location != nil {
		location := *station.Location
		cloned.Location = &location
	}
	cloned.Prices = make(map[entity.FuelType]float64, len(station.Prices))
	for fuel, price := range station.Prices {
		if price > 0 {
			cloned.Prices[fuel] = price
		}
	}

	return &cloned
}

package memory

import (
	"context"
	"sync"
	"testing"

	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func station(id string, municipalityID int, name string, prices map[entity.FuelType]float64) *entity.Station {
	return &entity.Station{ID: id, MunicipalityID: municipalityID, Name: name, Prices: prices}
}

func ids(stations []*entity.Station) []string {
	out := make([]string, 0, len(stations))
	for _, s := range stations {
		out = append(out, s.ID)
	}

	return out
}

func TestStationStore_Queries(t *testing.T) {
	ctx := context.Background()
	store := NewStationStore()

	located := station("3", 5691, "A", map[entity.FuelType]float64{entity.FuelGasoleoA: 1.50})
	located.Location = &entity.Coordinate{Latitude: 28.1, Longitude: -16.7}
	require.NoError(t, store.ReplaceAll(ctx, []*entity.Station{
		station("1", 5691, "C", map[entity.FuelType]float64{entity.FuelGasoleoA: 1.40}),
		station("2", 5691, "B", map[entity.FuelType]float64{entity.FuelGasoleoA: 1.40, entity.FuelGLP: -1}),
		located,
		station("4", 5696, "D", map[entity.FuelType]float64{entity.FuelGasolina95E5: 1.30}),
	}, nil))

	asc, err := store.FindByFuelAscending(ctx, entity.FuelGasoleoA, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(asc))

	desc, err := store.FindByFuelDescending(ctx, entity.FuelGasoleoA, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(desc))

	page, total, err := store.FindByMunicipality(ctx, 5691, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"3", "2"}, ids(page))

	page, _, err = store.FindByMunicipality(ctx, 5691, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page)

	cheapest, err := store.FindCheapestInMunicipality(ctx, entity.FuelGasoleoA, 5691)
	require.NoError(t, err)
	assert.Equal(t, "1", cheapest.StationID)
	assert.InDelta(t, 1.40, cheapest.Price, 1e-9)

	_, err = store.FindCheapestInMunicipality(ctx, entity.FuelGLP, 5691)
	assert.ErrorIs(t, err, repository.ErrNoPriceData)

	withCoords, err := store.FindWithCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(withCoords))

	counts, err := store.CountByFuel(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[entity.FuelGasoleoA])
	assert.Equal(t, int64(0), counts[entity.FuelGLP])
}

func TestStationStore_LastImport(t *testing.T) {
	ctx := context.Background()
	store := NewStationStore()

	_, err := store.LastImport(ctx)
	require.ErrorIs(t, err, repository.ErrNoFeedImport)

	require.NoError(t, store.ReplaceAll(ctx, []*entity.Station{station("1", 1, "x", nil)}, &entity.FeedImport{Source: "dir"}))

	last, err := store.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dir", last.Source)
	assert.Equal(t, 1, last.StationCount)
	assert.Equal(t, int64(1), last.ID)
	assert.False(t, last.ImportedAt.IsZero())
}

func TestStationStore_ReplaceAllCopiesInput(t *testing.T) {
	ctx := context.Background()
	store := NewStationStore()

	input := station("1", 5691, "A", map[entity.FuelType]float64{entity.FuelGasoleoA: 1.40})
	require.NoError(t, store.ReplaceAll(ctx, []*entity.Station{input}, nil))

	input.Prices[entity.FuelGasoleoA] = 9.99

	cheapest, err := store.FindCheapestInMunicipality(ctx, entity.FuelGasoleoA, 5691)
	require.NoError(t, err)
	assert.InDelta(t, 1.40, cheapest.Price, 1e-9)
}

func TestStationStore_DuplicateIDsKeepLast(t *testing.T) {
	ctx := context.Background()
	store := NewStationStore()

	require.NoError(t, store.ReplaceAll(ctx, []*entity.Station{
		station("1", 5691, "old", map[entity.FuelType]float64{entity.FuelGasoleoA: 1.40}),
		station("1", 5691, "new", map[entity.FuelType]float64{entity.FuelGasoleoA: 1.30}),
	}, nil))

	all, err := store.FindByFuelAscending(ctx, entity.FuelGasoleoA, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Name)
}

// Readers must observe either the old or the new snapshot, never a mix.
func TestStationStore_RefreshIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewStationStore()

	build := func(price float64) []*entity.Station {
		out := make([]*entity.Station, 0, 50)
		for i := range 50 {
			out = append(out, station(string(rune('A'+i%26))+string(rune('a'+i/26)), 5691, "s",
				map[entity.FuelType]float64{entity.FuelGasoleoA: price}))
		}

		return out
	}
	require.NoError(t, store.ReplaceAll(ctx, build(1.0), nil))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			_ = store.ReplaceAll(ctx, build(float64(i%2)+1), nil)
		}
	}()

	for range 200 {
		all, err := store.FindByFuelAscending(ctx, entity.FuelGasoleoA, 0)
		require.NoError(t, err)
		require.Len(t, all, 50)
		first, _ := all[0].Price(entity.FuelGasoleoA)
		for _, s := range all {
			p, _ := s.Price(entity.FuelGasoleoA)
			require.InDelta(t, first, p, 1e-9)
		}
	}

	close(stop)
	wg.Wait()
}

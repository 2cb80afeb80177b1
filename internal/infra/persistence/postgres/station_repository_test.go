package postgres

import (
	"context"
	"testing"
	"time"

	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureStations() []*entity.Station {
	return []*entity.Station{
		{
			ID: "100", MunicipalityID: 5691, MunicipalityName: "Adeje", Name: "CEPSA", Address: "Calle 1",
			Location: &entity.Coordinate{Latitude: 28.12, Longitude: -16.72},
			Prices:   map[entity.FuelType]float64{entity.FuelGasoleoA: 1.55, entity.FuelGasolina95E5: 1.60},
		},
		{
			ID: "101", MunicipalityID: 5691, MunicipalityName: "Adeje", Name: "BP", Address: "Calle 2",
			Prices: map[entity.FuelType]float64{entity.FuelGasoleoA: 1.45},
		},
		{
			ID: "102", MunicipalityID: 5691, MunicipalityName: "Adeje", Name: "DISA", Address: "Calle 3",
			Location: &entity.Coordinate{Latitude: 28.10, Longitude: -16.70},
			Prices:   map[entity.FuelType]float64{entity.FuelGasoleoA: 1.45, entity.FuelGLP: 0},
		},
		{
			ID: "200", MunicipalityID: 5696, MunicipalityName: "Arona", Name: "SHELL", Address: "Avenida 9",
			Location: &entity.Coordinate{Latitude: 28.05, Longitude: -16.71},
			Prices:   map[entity.FuelType]float64{entity.FuelGasolina95E5: 1.30},
		},
	}
}

func seedStations(t *testing.T, repo repository.StationRepository) {
	t.Helper()
	require.NoError(t, repo.ReplaceAll(context.Background(), fixtureStations(), &entity.FeedImport{Source: "test"}))
}

func stationIDs(stations []*entity.Station) []string {
	ids := make([]string, 0, len(stations))
	for _, s := range stations {
		ids = append(ids, s.ID)
	}

	return ids
}

func TestStationRepository_FindByFuel(t *testing.T) {
	ctx := context.Background()
	repo := NewStationRepository(newTestDB(t))
	seedStations(t, repo)

	asc, err := repo.FindByFuelAscending(ctx, entity.FuelGasoleoA, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102", "100"}, stationIDs(asc))

	desc, err := repo.FindByFuelDescending(ctx, entity.FuelGasoleoA, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"100", "101"}, stationIDs(desc))

	none, err := repo.FindByFuelAscending(ctx, entity.FuelGLP, 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStationRepository_FindCheapestInMunicipality(t *testing.T) {
	ctx := context.Background()
	repo := NewStationRepository(newTestDB(t))
	seedStations(t, repo)

	cheapest, err := repo.FindCheapestInMunicipality(ctx, entity.FuelGasoleoA, 5691)
	require.NoError(t, err)
	assert.InDelta(t, 1.45, cheapest.Price, 1e-9)
	assert.Equal(t, "101", cheapest.StationID, "ties broken by station ID")
	assert.Equal(t, "BP", cheapest.StationName)
	assert.Equal(t, "Calle 2", cheapest.StationAddress)

	_, err = repo.FindCheapestInMunicipality(ctx, entity.FuelGasoleoA, 5696)
	assert.ErrorIs(t, err, repository.ErrNoPriceData)

	_, err = repo.FindCheapestInMunicipality(ctx, entity.FuelGLP, 5691)
	assert.ErrorIs(t, err, repository.ErrNoPriceData, "zero prices are absent")
}

func TestStationRepository_FindByMunicipality(t *testing.T) {
	ctx := context.Background()
	repo := NewStationRepository(newTestDB(t))
	seedStations(t, repo)

	page, total, err := repo.FindByMunicipality(ctx, 5691, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"100"}, stationIDs(page))

	page, total, err = repo.FindByMunicipality(ctx, 5742, 0, 5)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, page)
}

func TestStationRepository_FindWithCoordinates(t *testing.T) {
	ctx := context.Background()
	repo := NewStationRepository(newTestDB(t))
	seedStations(t, repo)

	stations, err := repo.FindWithCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"100", "102", "200"}, stationIDs(stations))
	for _, s := range stations {
		require.NotNil(t, s.Location)
	}
}

func TestStationRepository_CountByFuel(t *testing.T) {
	ctx := context.Background()
	repo := NewStationRepository(newTestDB(t))
	seedStations(t, repo)

	counts, err := repo.CountByFuel(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[entity.FuelGasoleoA])
	assert.Equal(t, int64(2), counts[entity.FuelGasolina95E5])
	assert.Equal(t, int64(0), counts[entity.FuelGLP])
	assert.Len(t, counts, len(entity.FuelTypes()))
}

func TestStationRepository_ReplaceAllAndLastImport(t *testing.T) {
	ctx := context.Background()
	repo := NewStationRepository(newTestDB(t))

	_, err := repo.LastImport(ctx)
	require.ErrorIs(t, err, repository.ErrNoFeedImport)

	seedStations(t, repo)

	importedAt := time.Now().Add(time.Minute).UTC().Truncate(time.Second)
	replacement := []*entity.Station{{
		ID: "900", MunicipalityID: 5742, Name: "VILAFLOR",
		Prices: map[entity.FuelType]float64{entity.FuelGasoleoA: 1.70},
	}}
	feedImport := &entity.FeedImport{Source: "second", Checksum: "abc", ImportedAt: importedAt}
	require.NoError(t, repo.ReplaceAll(ctx, replacement, feedImport))
	assert.NotZero(t, feedImport.ID)

	all, err := repo.FindByFuelAscending(ctx, entity.FuelGasoleoA, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"900"}, stationIDs(all))

	last, err := repo.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", last.Source)
	assert.Equal(t, 1, last.StationCount)
	assert.True(t, importedAt.Equal(last.ImportedAt.UTC()))
}

func TestStationRepository_ReplaceAllRollsBackOnDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewStationRepository(newTestDB(t))
	seedStations(t, repo)

	duplicated := []*entity.Station{{ID: "1", MunicipalityID: 5691}, {ID: "1", MunicipalityID: 5691}}
	require.Error(t, repo.ReplaceAll(ctx, duplicated, &entity.FeedImport{Source: "bad"}))

	stations, err := repo.FindByFuelAscending(ctx, entity.FuelGasoleoA, 0)
	require.NoError(t, err)
	assert.Len(t, stations, 3, "previous snapshot survives a failed refresh")
}

func TestStationRepository_ReplaceAllSkipsNilStations(t *testing.T) {
	ctx := context.Background()
	repo := NewStationRepository(newTestDB(t))

	stations := []*entity.Station{
		nil,
		{ID: "300", MunicipalityID: 5742, Prices: map[entity.FuelType]float64{entity.FuelGasoleoA: 1.50}},
		nil,
	}
	require.NoError(t, repo.ReplaceAll(ctx, stations, &entity.FeedImport{Source: "sparse"}))

	all, err := repo.FindByFuelAscending(ctx, entity.FuelGasoleoA, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"300"}, stationIDs(all))

	last, err := repo.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, last.StationCount)
}

func TestStationRepository_UnknownFuel(t *testing.T) {
	repo := NewStationRepository(newTestDB(t))

	_, err := repo.FindByFuelAscending(context.Background(), entity.FuelType("KEROSENO"), 1)
	assert.Error(t, err)
}

package impl

import (
	"context"
	"testing"
	"time"

	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/infra/persistence/memory"
	mockUsecase "fuelradar/internal/mocks/usecase"
	"fuelradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStationService(t *testing.T, stations ...*entity.Station) (usecase.StationUsecase, *memory.StationStore) {
	t.Helper()

	store := memory.NewStationStore()
	if len(stations) > 0 {
		require.NoError(t, store.ReplaceAll(context.Background(), stations, &entity.FeedImport{
			Source:     "file",
			ImportedAt: time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
		}))
	}

	cfg := newTestConfig()
	ranker := NewProximityRanker(ProximityRankerParams{StationRepo: store, Config: cfg, Logger: newDiscardLogger()})

	return NewStationService(StationServiceParams{
		StationRepo: store,
		Ranker:      ranker,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	}), store
}

func TestStationService_CheapestAndMostExpensive(t *testing.T) {
	svc, _ := newTestStationService(t,
		priced("1", adejeID, entity.FuelGasoleoA, 1.40),
		priced("2", aronaID, entity.FuelGasoleoA, 1.20),
		priced("3", aronaID, entity.FuelGasoleoA, 1.60),
		priced("4", aronaID, entity.FuelGLP, 0.90),
	)
	ctx := context.Background()

	cheapest, err := svc.CheapestStations(ctx, "GASOLEO_A", 2)
	require.NoError(t, err)
	require.Len(t, cheapest, 2)
	assert.Equal(t, "2", cheapest[0].ID)
	assert.Equal(t, "1", cheapest[1].ID)

	expensive, err := svc.MostExpensiveStations(ctx, "GASOLEO_A", 0)
	require.NoError(t, err)
	require.Len(t, expensive, 3)
	assert.Equal(t, "3", expensive[0].ID)

	_, err = svc.CheapestStations(ctx, "KEROSENE", 5)
	requireAppError(t, err, "UNKNOWN_FUEL")
}

func TestStationService_StationsByMunicipality(t *testing.T) {
	stations := make([]*entity.Station, 0, 12)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		stations = append(stations, priced(id, aronaID, entity.FuelGLP, 1))
	}
	stations = append(stations, priced("z", adejeID, entity.FuelGLP, 1))
	svc, _ := newTestStationService(t, stations...)
	ctx := context.Background()

	page, err := svc.StationsByMunicipality(ctx, "ARONA", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "Arona", page.Municipality.DisplayName)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, defaultPageSize, page.PageSize)
	assert.Equal(t, int64(11), page.Total)
	assert.Len(t, page.Stations, 1)

	page, err = svc.StationsByMunicipality(ctx, "Arona", -3, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, maxPageSize, page.PageSize)
	assert.Len(t, page.Stations, 11)

	_, err = svc.StationsByMunicipality(ctx, "NOWHERE", 1, 10)
	requireAppError(t, err, "UNKNOWN_MUNICIPALITY")
}

func TestStationService_SearchMunicipalities(t *testing.T) {
	svc, _ := newTestStationService(t)

	results := svc.SearchMunicipalities(context.Background(), "guimar")
	require.Len(t, results, 1)
	assert.Equal(t, "Güímar", results[0].DisplayName)
}

func TestStationService_AvailableFuels(t *testing.T) {
	svc, _ := newTestStationService(t,
		priced("1", adejeID, entity.FuelGLP, 0.90),
		priced("2", adejeID, entity.FuelGasoleoA, 1.20),
		priced("3", adejeID, entity.FuelGasoleoA, 1.30),
		priced("4", adejeID, entity.FuelAdBlue, 0),
	)

	fuels, err := svc.AvailableFuels(context.Background())
	require.NoError(t, err)
	require.Len(t, fuels, 2)
	assert.Equal(t, entity.FuelGasoleoA, fuels[0].Key)
	assert.Equal(t, int64(2), fuels[0].StationCount)
	assert.Equal(t, entity.FuelGLP, fuels[1].Key)
}

func TestStationService_NearbyStations_AppliesRadiusLimits(t *testing.T) {
	ranker := mockUsecase.NewMockProximityRanker(t)
	svc := NewStationService(StationServiceParams{
		StationRepo: memory.NewStationStore(),
		Ranker:      ranker,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()

	ranker.EXPECT().
		FindNearby(ctx, mock.MatchedBy(func(q *usecase.NearbyQuery) bool { return q.RadiusKm == 10 })).
		Return([]*entity.RankedStation{}, nil)

	ranked, err := svc.NearbyStations(ctx, &usecase.NearbySearch{Latitude: originLat, Longitude: originLon})
	require.NoError(t, err)
	assert.Empty(t, ranked)

	tooFar := 250.0
	_, err = svc.NearbyStations(ctx, &usecase.NearbySearch{Latitude: originLat, Longitude: originLon, RadiusKm: &tooFar})
	requireAppError(t, err, "INVALID_INPUT")
}

func TestStationService_NearbyStations_RejectsNonPositiveRadius(t *testing.T) {
	svc, _ := newTestStationService(t, located("1", originLat, originLon, nil))

	for _, radius := range []float64{0, -2} {
		_, err := svc.NearbyStations(context.Background(), &usecase.NearbySearch{Latitude: originLat, Longitude: originLon, RadiusKm: &radius})
		requireAppError(t, err, "INVALID_INPUT")
	}
}

func TestStationService_Status(t *testing.T) {
	svc, _ := newTestStationService(t, priced("1", adejeID, entity.FuelGLP, 1))

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Atlantic/Canary", status.Timezone)
	// Canary Islands are on WET (UTC+0) in March.
	assert.Equal(t, "01/03/2026 08:30", status.LocalTime)
	assert.Equal(t, 1, status.StationCount)
	assert.Equal(t, "file", status.Source)
}

func TestStationService_Status_NoImport(t *testing.T) {
	svc, _ := newTestStationService(t)

	status, err := svc.Status(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNoFeedImport)
	assert.Nil(t, status)
}

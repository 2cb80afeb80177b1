package impl

import (
	"context"
	"testing"

	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/infra/persistence/memory"
	mockSvc "fuelradar/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestService_RefreshStations(t *testing.T) {
	source := mockSvc.NewMockStationFeedSource(t)
	metrics := mockSvc.NewMockAlertMetrics(t)
	store := memory.NewStationStore()
	ingest := NewIngestService(IngestServiceParams{
		Source:      source,
		StationRepo: store,
		Metrics:     metrics,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	source.EXPECT().Fetch(ctx).Return(&service.FeedSnapshot{
		Source:   "file",
		Checksum: "abc123",
		Stations: []*entity.Station{
			priced("1", adejeID, entity.FuelGasoleoA, 1.40),
			priced("2", aronaID, entity.FuelGasoleoA, 1.30),
		},
	}, nil)
	metrics.EXPECT().ObserveFeedImport(2, true).Return()

	feedImport, err := ingest.RefreshStations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "file", feedImport.Source)
	assert.Equal(t, "abc123", feedImport.Checksum)
	assert.Equal(t, 2, feedImport.StationCount)

	last, err := store.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, feedImport.ID, last.ID)

	cheapest, err := store.FindCheapestInMunicipality(ctx, entity.FuelGasoleoA, aronaID)
	require.NoError(t, err)
	assert.Equal(t, "2", cheapest.StationID)
}

func TestIngestService_RefreshStations_EmptyFeedKeepsStore(t *testing.T) {
	source := mockSvc.NewMockStationFeedSource(t)
	metrics := mockSvc.NewMockAlertMetrics(t)
	store := memory.NewStationStore()
	ctx := context.Background()
	require.NoError(t, store.ReplaceAll(ctx, []*entity.Station{priced("1", adejeID, entity.FuelGLP, 0.9)}, nil))

	ingest := NewIngestService(IngestServiceParams{Source: source, StationRepo: store, Metrics: metrics, Logger: newDiscardLogger()})

	source.EXPECT().Fetch(ctx).Return(&service.FeedSnapshot{Source: "http"}, nil)
	metrics.EXPECT().ObserveFeedImport(0, false).Return()

	feedImport, err := ingest.RefreshStations(ctx)
	requireAppError(t, err, "FEED_UNAVAILABLE")
	assert.Nil(t, feedImport)

	stations, err := store.FindByFuelAscending(ctx, entity.FuelGLP, 0)
	require.NoError(t, err)
	assert.Len(t, stations, 1)
}

func TestIngestService_RefreshStations_FetchError(t *testing.T) {
	source := mockSvc.NewMockStationFeedSource(t)
	metrics := mockSvc.NewMockAlertMetrics(t)
	ingest := NewIngestService(IngestServiceParams{
		Source:      source,
		StationRepo: memory.NewStationStore(),
		Metrics:     metrics,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	fetchErr := errors.New("503 Service Unavailable")
	source.EXPECT().Fetch(ctx).Return(nil, fetchErr)
	metrics.EXPECT().ObserveFeedImport(0, false).Return()

	_, err := ingest.RefreshStations(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)
}

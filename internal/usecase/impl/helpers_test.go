package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fuelradar/config"
	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/repository"
	"fuelradar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Stations: &config.StationsConfig{Backend: "memory", Timezone: "Atlantic/Canary"},
		Alerts:   &config.AlertsConfig{MaxThreshold: 10},
		Proximity: &config.ProximityConfig{
			DefaultRadiusKm:           10,
			MaxRadiusKm:               100,
			PreFilterRadiusMultiplier: 1.3,
		},
	}
}

// requireAppError asserts that err is a domain error carrying code.
func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.ErrorCode())
}

// testTxManager runs fn directly against a fixed repository factory.
type testTxManager struct {
	factory repository.RepositoryFactory
	calls   int
}

func (m *testTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.calls++

	return fn(m.factory)
}

type testRepoFactory struct {
	subscriptionRepo repository.SubscriptionRepository
}

func (f *testRepoFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return f.subscriptionRepo
}

func priced(id string, municipalityID int, fuel entity.FuelType, price float64) *entity.Station {
	return &entity.Station{
		ID:             id,
		MunicipalityID: municipalityID,
		Name:           "Station " + id,
		Address:        "Calle " + id,
		Prices:         map[entity.FuelType]float64{fuel: price},
	}
}

func located(id string, lat, lon float64, prices map[entity.FuelType]float64) *entity.Station {
	return &entity.Station{
		ID:             id,
		MunicipalityID: 5691,
		Name:           "Station " + id,
		Location:       &entity.Coordinate{Latitude: lat, Longitude: lon},
		Prices:         prices,
	}
}

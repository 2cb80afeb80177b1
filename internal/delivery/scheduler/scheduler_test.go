package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"fuelradar/config"
	"fuelradar/internal/domain/entity"
	mockUsecase "fuelradar/internal/mocks/usecase"
	"fuelradar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestConfig(check, refresh time.Duration) *config.Config {
	return &config.Config{
		Alerts: &config.AlertsConfig{CheckInterval: check, SchedulerEnabled: true},
		Feed:   &config.FeedConfig{RefreshInterval: refresh},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewScheduler_RequiresCheckInterval(t *testing.T) {
	_, err := NewScheduler(Params{
		Lc:       fxtest.NewLifecycle(t),
		Cfg:      &config.Config{Alerts: &config.AlertsConfig{SchedulerEnabled: true}},
		Logger:   testLogger(),
		Dispatch: mockUsecase.NewMockDispatchUsecase(t),
	})

	require.Error(t, err)
}

func TestScheduler_NothingEnabled(t *testing.T) {
	s, err := NewScheduler(Params{
		Lc:       fxtest.NewLifecycle(t),
		Cfg:      &config.Config{Alerts: &config.AlertsConfig{CheckInterval: time.Minute}},
		Logger:   testLogger(),
		Dispatch: mockUsecase.NewMockDispatchUsecase(t),
		Ingest:   mockUsecase.NewMockIngestUsecase(t),
	})
	require.NoError(t, err)

	require.NoError(t, s.Serve(context.Background()))
}

func TestScheduler_RunsJobsUntilStopped(t *testing.T) {
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	ingest := mockUsecase.NewMockIngestUsecase(t)

	var order []string
	var dispatched, refreshed atomic.Int32
	ingest.EXPECT().RefreshStations(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.FeedImport, error) {
			if refreshed.Add(1) == 1 {
				order = append(order, "refresh")
			}

			return &entity.FeedImport{Source: "file:testdata", StationCount: 3}, nil
		})
	dispatch.EXPECT().DispatchAlerts(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.DispatchReport, error) {
			if dispatched.Add(1) == 1 {
				order = append(order, "dispatch")
			}

			return &usecase.DispatchReport{Evaluation: &usecase.EvaluationReport{Evaluated: 2, Matched: 1}, Published: 1}, nil
		})

	lc := fxtest.NewLifecycle(t)
	s, err := NewScheduler(Params{
		Lc:       lc,
		Cfg:      newTestConfig(10*time.Millisecond, 15*time.Millisecond),
		Logger:   testLogger(),
		Dispatch: dispatch,
		Ingest:   ingest,
	})
	require.NoError(t, err)
	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	assert.Eventually(t, func() bool {
		return dispatched.Load() >= 3 && refreshed.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	lc.RequireStop()
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	assert.Equal(t, []string{"refresh", "dispatch"}, order)
}

func TestScheduler_KeepsRunningAfterFailure(t *testing.T) {
	dispatch := mockUsecase.NewMockDispatchUsecase(t)

	var calls atomic.Int32
	dispatch.EXPECT().DispatchAlerts(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.DispatchReport, error) {
			calls.Add(1)

			return nil, errors.New("store unavailable")
		})

	lc := fxtest.NewLifecycle(t)
	s, err := NewScheduler(Params{
		Lc:       lc,
		Cfg:      newTestConfig(10*time.Millisecond, 0),
		Logger:   testLogger(),
		Dispatch: dispatch,
	})
	require.NoError(t, err)
	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	lc.RequireStop()
	require.NoError(t, <-served)
}

func TestScheduler_StopBeforeServe(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	s, err := NewScheduler(Params{
		Lc:       lc,
		Cfg:      newTestConfig(time.Minute, 0),
		Logger:   testLogger(),
		Dispatch: mockUsecase.NewMockDispatchUsecase(t),
	})
	require.NoError(t, err)

	lc.RequireStart()
	lc.RequireStop()

	require.NoError(t, s.Serve(context.Background()))
}

// Package scheduler runs the periodic alert dispatch and feed refresh jobs.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fuelradar/config"
	"fuelradar/internal/delivery"
	deliverycontext "fuelradar/internal/delivery/context"
	"fuelradar/internal/usecase"
	"fuelradar/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// job is a unit of periodic work.
type job struct {
	name       string
	interval   time.Duration
	runAtStart bool // Run once when its loop starts.
	warmUp     bool // Run once before any loop starts.
	run        func(ctx context.Context) error
}

type scheduler struct {
	jobs   []job
	logger *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Dispatch usecase.DispatchUsecase
	Ingest   usecase.IngestUsecase `optional:"true"`
}

// NewScheduler creates the scheduler delivery. Alert dispatch runs when alerts.schedulerEnabled
// is set and feed refresh when feed.refreshInterval is positive. The feed refresh job runs once
// before the first alert dispatch so alerts are matched against fresh prices.
func NewScheduler(params Params) (delivery.Delivery, error) {
	s := &scheduler{
		logger: params.Logger,
		done:   make(chan struct{}),
	}

	if params.Ingest != nil && params.Cfg.Feed != nil && params.Cfg.Feed.RefreshInterval > 0 {
		s.jobs = append(s.jobs, job{
			name:     "refresh_stations",
			interval: params.Cfg.Feed.RefreshInterval,
			warmUp:   true,
			run:      refreshStations(params.Ingest),
		})
	}

	if params.Cfg.Alerts != nil && params.Cfg.Alerts.SchedulerEnabled {
		if params.Cfg.Alerts.CheckInterval <= 0 {
			return nil, errors.New("alerts.checkInterval must be positive")
		}
		s.jobs = append(s.jobs, job{
			name:       "dispatch_alerts",
			interval:   params.Cfg.Alerts.CheckInterval,
			runAtStart: true,
			run:        dispatchAlerts(params.Dispatch),
		})
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve blocks until the scheduler is stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	if len(s.jobs) == 0 {
		s.logger.Info("[Scheduler] No jobs enabled")

		return nil
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()

		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer close(s.done)
	defer cancel()

	s.logger.Info("[Scheduler] Starting", slog.Int("jobs", len(s.jobs)))

	for _, j := range s.jobs {
		if j.warmUp {
			s.runJob(runCtx, j)
		}
	}

	g, gctx := errgroup.WithContext(runCtx)
	for _, j := range s.jobs {
		g.Go(func() error {
			s.loop(gctx, j)

			return nil
		})
	}

	return errors.WithStack(g.Wait())
}

func (s *scheduler) loop(ctx context.Context, j job) {
	if j.runAtStart {
		s.runJob(ctx, j)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runJob(ctx, j)
		}
	}
}

// runJob runs one job bounded by its interval. Failures are logged and the next tick retries.
func (s *scheduler) runJob(parent context.Context, j job) {
	if parent.Err() != nil {
		return
	}

	requestID := uuid.New().String()
	logger := s.logger.With(
		slog.String("job", j.name),
		slog.String("request_id", requestID),
	)

	ctx, cancel := context.WithTimeout(parent, j.interval)
	defer cancel()
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	start := time.Now()
	if err := j.run(ctx); err != nil {
		logger.Error("[Scheduler] Job failed",
			slog.String("duration", util.FormatDuration(time.Since(start))),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("[Scheduler] Job finished", slog.String("duration", util.FormatDuration(time.Since(start))))
}

func (s *scheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}

	s.logger.Info("[Scheduler] Stopping")
	cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler did not stop in time")
	}
}

func dispatchAlerts(dispatch usecase.DispatchUsecase) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		report, err := dispatch.DispatchAlerts(ctx)
		if err != nil {
			return errors.Wrap(err, "dispatch alerts")
		}

		attrs := []any{
			slog.Int("published", report.Published),
			slog.Int("failed", report.Failed),
		}
		if report.Evaluation != nil {
			attrs = append(attrs,
				slog.Int("evaluated", report.Evaluation.Evaluated),
				slog.Int("matched", report.Evaluation.Matched),
			)
		}
		deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Info("[Scheduler] Alerts dispatched", attrs...)

		return nil
	}
}

func refreshStations(ingest usecase.IngestUsecase) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		imported, err := ingest.RefreshStations(ctx)
		if err != nil {
			return errors.Wrap(err, "refresh stations")
		}

		deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Info("[Scheduler] Stations refreshed",
			slog.String("source", imported.Source),
			slog.Int("stations", imported.StationCount),
		)

		return nil
	}
}

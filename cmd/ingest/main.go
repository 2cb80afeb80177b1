// Command ingest runs a single station price import into PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fuelradar/config"
	"fuelradar/internal/domain/lifecycle"
	"fuelradar/internal/infra/feed"
	logs "fuelradar/internal/infra/log"
	"fuelradar/internal/infra/metrics"
	"fuelradar/internal/infra/persistence/postgres"
	"fuelradar/internal/usecase"
	"fuelradar/internal/usecase/impl"
	"fuelradar/internal/util"

	"go.uber.org/fx"
)

func main() {
	source := flag.String("source", "", "feed source override: file or http")
	dir := flag.String("dir", "", "directory of feed JSON files (file source)")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall import timeout")
	flag.Parse()

	var ingest usecase.IngestUsecase
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewStationRepository,
			metrics.NewRegistry,
			metrics.NewAlertMetrics,
			feed.NewStationFeedSource,
			impl.NewIngestService,
		),
		fx.Decorate(func(cfg *config.Config) *config.Config {
			applyOverrides(cfg, *source, *dir)

			return cfg
		}),
		fx.Populate(&ingest),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build ingest", slog.Any("error", err))
		os.Exit(1)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		slog.Error("Failed to start ingest", slog.Any("error", err))
		os.Exit(1)
	}

	exitCode := run(ingest, *timeout)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("Failed to stop ingest", slog.Any("error", err))
	}

	os.Exit(exitCode)
}

func applyOverrides(cfg *config.Config, source, dir string) {
	if cfg.Feed == nil {
		cfg.Feed = &config.FeedConfig{}
	}
	if source != "" {
		cfg.Feed.Source = source
	}
	if dir != "" {
		cfg.Feed.Dir = dir
	}
}

func run(ingest usecase.IngestUsecase, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	imported, err := ingest.RefreshStations(ctx)
	if err != nil {
		slog.Error("Import failed", slog.Any("error", err))

		return 1
	}

	fmt.Printf("Imported %d stations from %s in %s (checksum %s)\n",
		imported.StationCount, imported.Source, util.FormatDuration(time.Since(start)), imported.Checksum)

	return 0
}

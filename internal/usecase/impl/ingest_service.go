package impl

import (
	"context"
	"log/slog"
	"time"

	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/repository"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/errors"
	"fuelradar/internal/usecase"

	"go.uber.org/fx"
)

type ingestService struct {
	source      service.StationFeedSource
	stationRepo repository.StationRepository
	metrics     service.AlertMetrics
	logger      *slog.Logger
	now         func() time.Time
}

// IngestServiceParams holds dependencies for IngestService, injected by Fx.
type IngestServiceParams struct {
	fx.In

	Source      service.StationFeedSource
	StationRepo repository.StationRepository
	Metrics     service.AlertMetrics
	Logger      *slog.Logger
}

// NewIngestService creates a new ingest service instance
func NewIngestService(params IngestServiceParams) usecase.IngestUsecase {
	return &ingestService{
		source:      params.Source,
		stationRepo: params.StationRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// RefreshStations replaces the station set with the current feed contents.
// An empty feed never wipes the store.
func (s *ingestService) RefreshStations(ctx context.Context) (*entity.FeedImport, error) {
	start := s.now()

	snapshot, err := s.source.Fetch(ctx)
	if err != nil {
		s.metrics.ObserveFeedImport(0, false)

		return nil, errors.Wrap(err, "failed to fetch station feed")
	}
	if len(snapshot.Stations) == 0 {
		s.metrics.ObserveFeedImport(0, false)

		return nil, domainerrors.ErrFeedUnavailable.WithDetails("feed returned no stations")
	}

	feedImport := &entity.FeedImport{
		Source:     snapshot.Source,
		Checksum:   snapshot.Checksum,
		ImportedAt: s.now(),
	}
	if err := s.stationRepo.ReplaceAll(ctx, snapshot.Stations, feedImport); err != nil {
		s.metrics.ObserveFeedImport(0, false)

		return nil, errors.Wrap(err, "failed to replace stations")
	}
	s.metrics.ObserveFeedImport(feedImport.StationCount, true)

	s.logger.Info("Station prices refreshed",
		slog.String("source", feedImport.Source),
		slog.Int("stations", feedImport.StationCount),
		slog.String("checksum", feedImport.Checksum),
		slog.Duration("duration", s.now().Sub(start)),
	)

	return feedImport, nil
}

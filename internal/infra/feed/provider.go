package feed

import (
	"log/slog"
	"time"
	_ "time/tzdata"

	"fuelradar/config"
	"fuelradar/internal/domain/constants"
	"fuelradar/internal/domain/service"

	"github.com/pkg/errors"
)

// NewStationFeedSource selects the feed source configured in feed.source.
func NewStationFeedSource(cfg *config.Config, logger *slog.Logger) (service.StationFeedSource, error) {
	loc, err := time.LoadLocation(cfg.Stations.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid stations timezone %q", cfg.Stations.Timezone)
	}
	decoder := NewDecoder(loc)

	switch cfg.Feed.Source {
	case constants.FeedSourceFile:
		if cfg.Feed.Dir == "" {
			return nil, errors.New("feed.dir is required for the file source")
		}

		return NewFileSource(cfg.Feed.Dir, decoder, logger), nil
	case constants.FeedSourceHTTP:
		return NewHTTPSource(cfg.Feed.BaseURL, cfg.Feed.Timeout, decoder, logger), nil
	default:
		return nil, errors.Errorf("unknown feed source: %s", cfg.Feed.Source)
	}
}

package feed

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/util"

	"github.com/pkg/errors"
)

// fileSource reads every *.json listing in a directory.
type fileSource struct {
	dir     string
	decoder *Decoder
	logger  *slog.Logger
}

// NewFileSource creates a StationFeedSource over a directory of ministry listings.
func NewFileSource(dir string, decoder *Decoder, logger *slog.Logger) service.StationFeedSource {
	return &fileSource{dir: dir, decoder: decoder, logger: logger}
}

func (s *fileSource) Fetch(ctx context.Context) (*service.FeedSnapshot, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", s.dir)
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no JSON listings found in %s", s.dir)
	}
	sort.Strings(files)

	var (
		batches  [][]*entity.Station
		contents [][]byte
		total    int64
	)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", file)
		}

		stations, err := s.decoder.Decode(data)
		if err != nil {
			s.logger.Warn("[Feed] Skipping unreadable listing",
				slog.String("file", filepath.Base(file)),
				slog.Any("error", err),
			)

			continue
		}

		batches = append(batches, stations)
		contents = append(contents, data)
		total += int64(len(data))
	}

	merged := Merge(batches...)
	s.logger.Info("[Feed] Loaded listings from directory",
		slog.String("dir", s.dir),
		slog.Int("files", len(contents)),
		slog.String("size", util.FormatBytes(total)),
		slog.Int("stations", len(merged)),
	)

	return &service.FeedSnapshot{
		Source:   "file:" + s.dir,
		Checksum: util.ChecksumBytes(contents...),
		Stations: merged,
	}, nil
}

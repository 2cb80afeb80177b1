package feed

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/util"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// DefaultBaseURL is the ministry REST service for land stations.
const DefaultBaseURL = "https://sedeaplicaciones.minetur.gob.es/ServiciosRESTCarburantes/PreciosCarburantes/EstacionesTerrestres"

// httpSource queries the ministry REST service once per catalog municipality.
type httpSource struct {
	baseURL string
	client  *resty.Client
	decoder *Decoder
	logger  *slog.Logger
}

// NewHTTPSource creates a StationFeedSource backed by the ministry REST service.
func NewHTTPSource(baseURL string, timeout time.Duration, decoder *Decoder, logger *slog.Logger) service.StationFeedSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")

	return &httpSource{baseURL: baseURL, client: client, decoder: decoder, logger: logger}
}

// Fetch downloads every municipality. Any failed municipality fails the whole fetch
// so a partial listing never replaces the store.
func (s *httpSource) Fetch(ctx context.Context) (*service.FeedSnapshot, error) {
	municipalities := entity.Municipalities()
	batches := make([][]*entity.Station, 0, len(municipalities))
	contents := make([][]byte, 0, len(municipalities))

	for _, m := range municipalities {
		resp, err := s.client.R().
			SetContext(ctx).
			SetPathParam("id", strconv.Itoa(m.ID)).
			Get("/FiltroMunicipio/{id}")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch %s", m.Key)
		}
		if resp.IsError() {
			return nil, errors.Errorf("ministry returned status %d for %s", resp.StatusCode(), m.Key)
		}

		stations, err := s.decoder.Decode(resp.Body())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", m.Key)
		}

		s.logger.Debug("[Feed] Fetched municipality",
			slog.String("municipality", m.Key),
			slog.Int("stations", len(stations)),
		)
		batches = append(batches, stations)
		contents = append(contents, resp.Body())
	}

	return &service.FeedSnapshot{
		Source:   "http:" + s.baseURL,
		Checksum: util.ChecksumBytes(contents...),
		Stations: Merge(batches...),
	}, nil
}

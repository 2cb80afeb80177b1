package service

import (
	"context"

	"fuelradar/internal/domain/entity"
)

// FeedSnapshot is a decoded ministry price listing.
type FeedSnapshot struct {
	Source   string
	Checksum string
	Stations []*entity.Station
}

// StationFeedSource loads the current station price listing.
type StationFeedSource interface {
	Fetch(ctx context.Context) (*FeedSnapshot, error)
}

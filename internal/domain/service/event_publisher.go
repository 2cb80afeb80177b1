// Package service defines interfaces for core, stateless domain logic
// and the outbound collaborators the use cases depend on.
package service

import (
	"context"

	"fuelradar/internal/domain/entity"
)

// EventPublisher defines the interface for publishing alert events for delivery
type EventPublisher interface {
	// PublishAlertEvent publishes a triggered price alert for async delivery
	PublishAlertEvent(ctx context.Context, event *entity.AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package pubsub

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fuelradar/internal/delivery/context"
	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/price-alert-sub"

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint string
	client   *resty.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   resty.New().SetTimeout(30 * time.Second),
		logger:   logger,
	}
}

// PublishAlertEvent publishes an event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishAlertEvent(ctx context.Context, event *entity.AlertEvent) error {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	pushMsg, err := NewPushMessage(event, requestID, localSubscription)
	if err != nil {
		return err
	}

	p.logger.Info("[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID.String()),
	)

	req := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(pushMsg)
	if requestID != "" {
		req.SetHeader(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := req.Post(p.endpoint)
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.IsError() {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode())
	}

	p.logger.Info("[LocalPubSub] Event published successfully",
		slog.String("event_id", event.EventID.String()),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

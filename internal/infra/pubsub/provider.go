package pubsub

import (
	"context"
	"log/slog"

	"fuelradar/config"
	"fuelradar/internal/domain/constants"
	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directPublisher delivers events in-process without a broker
type directPublisher struct {
	delivery usecase.DeliveryUsecase
	logger   *slog.Logger
}

// NewDirectPublisher creates a publisher that calls the delivery use case synchronously
func NewDirectPublisher(delivery usecase.DeliveryUsecase, logger *slog.Logger) service.EventPublisher {
	return &directPublisher{delivery: delivery, logger: logger}
}

func (p *directPublisher) PublishAlertEvent(ctx context.Context, event *entity.AlertEvent) error {
	if err := p.delivery.DeliverAlert(ctx, event); err != nil {
		return errors.Wrap(err, "direct delivery failed")
	}

	return nil
}

func (p *directPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Delivery usecase.DeliveryUsecase `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := constants.PubSubProviderDirect
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var publisher service.EventPublisher
	var err error

	switch provider {
	case constants.PubSubProviderDirect:
		if params.Delivery == nil {
			return nil, errors.New("delivery use case is required for direct provider")
		}
		logger.Info("Using direct in-process publisher for alert events")

		publisher = NewDirectPublisher(params.Delivery, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

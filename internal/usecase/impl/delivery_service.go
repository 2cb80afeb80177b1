package impl

import (
	"context"
	"log/slog"

	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/errors"
	"fuelradar/internal/usecase"

	"go.uber.org/fx"
)

type deliveryService struct {
	sender  service.NotificationSender
	metrics service.AlertMetrics
	logger  *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	Sender  service.NotificationSender
	Metrics service.AlertMetrics
	Logger  *slog.Logger
}

// NewDeliveryService creates a new delivery service instance
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		sender:  params.Sender,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// DeliverAlert sends one alert event to its subscriber.
func (s *deliveryService) DeliverAlert(ctx context.Context, event *entity.AlertEvent) error {
	if event == nil || event.Notification == nil {
		return domainerrors.ErrInvalidInput.WithDetails("alert event without notification")
	}
	notification := event.Notification
	if notification.UserID == 0 {
		return domainerrors.ErrInvalidInput.WithDetails("alert event without recipient")
	}

	if err := s.sender.SendPriceAlert(ctx, notification); err != nil {
		s.metrics.ObserveDelivery(false)

		return errors.Wrapf(err, "failed to deliver alert event %s", event.EventID)
	}
	s.metrics.ObserveDelivery(true)

	s.logger.Info("Price alert delivered",
		slog.String("event_id", event.EventID.String()),
		slog.String("subscription_id", notification.SubscriptionID.String()),
		slog.Int64("user_id", notification.UserID),
		slog.Float64("price", notification.CurrentPrice),
	)

	return nil
}

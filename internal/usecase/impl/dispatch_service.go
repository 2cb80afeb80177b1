package impl

import (
	"context"
	"log/slog"
	"time"

	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/errors"
	"fuelradar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type dispatchService struct {
	alerts    usecase.AlertUsecase
	publisher service.EventPublisher
	metrics   service.AlertMetrics
	logger    *slog.Logger
	now       func() time.Time
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	Alerts    usecase.AlertUsecase
	Publisher service.EventPublisher
	Metrics   service.AlertMetrics
	Logger    *slog.Logger
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		alerts:    params.Alerts,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// DispatchAlerts evaluates every active alert and publishes the triggered ones.
func (s *dispatchService) DispatchAlerts(ctx context.Context) (*usecase.DispatchReport, error) {
	start := s.now()

	notifications, evaluation, err := s.alerts.EvaluateAlerts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate alerts")
	}
	s.metrics.ObserveEvaluation(
		evaluation.Evaluated,
		evaluation.Matched,
		evaluation.SkippedUnresolved,
		evaluation.SkippedNoData,
		evaluation.Failed(),
	)

	report := &usecase.DispatchReport{Evaluation: evaluation}
	for _, notification := range notifications {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "dispatch interrupted")
		}

		if err := s.publish(ctx, notification); err != nil {
			report.Failed++
			s.metrics.ObservePublish(false)
			s.logger.Error("Failed to publish alert event",
				slog.String("subscription_id", notification.SubscriptionID.String()),
				slog.Int64("user_id", notification.UserID),
				slog.Any("error", err),
			)

			continue
		}
		report.Published++
		s.metrics.ObservePublish(true)
	}
	report.Duration = s.now().Sub(start)

	s.logger.Info("Alert dispatch completed",
		slog.Int("evaluated", evaluation.Evaluated),
		slog.Int("matched", evaluation.Matched),
		slog.Int("skipped_unresolved", evaluation.SkippedUnresolved),
		slog.Int("skipped_no_data", evaluation.SkippedNoData),
		slog.Int("evaluation_failures", evaluation.Failed()),
		slog.Int("published", report.Published),
		slog.Int("publish_failures", report.Failed),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

func (s *dispatchService) publish(ctx context.Context, notification *entity.PriceAlertNotification) error {
	eventID, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate event ID")
	}

	event := &entity.AlertEvent{
		EventID:      eventID,
		Notification: notification,
		PublishedAt:  s.now(),
	}

	return s.publisher.PublishAlertEvent(ctx, event)
}

package impl

import (
	"context"
	"testing"

	"fuelradar/internal/domain/entity"
	mockSvc "fuelradar/internal/mocks/service"
	mockUsecase "fuelradar/internal/mocks/usecase"
	"fuelradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchService_DispatchAlerts_ContinuesAfterPublishFailure(t *testing.T) {
	alerts := mockUsecase.NewMockAlertUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockAlertMetrics(t)
	service := NewDispatchService(DispatchServiceParams{
		Alerts:    alerts,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	notifications := []*entity.PriceAlertNotification{
		{SubscriptionID: uuid.New(), UserID: 1},
		{SubscriptionID: uuid.New(), UserID: 2},
		{SubscriptionID: uuid.New(), UserID: 3},
	}
	report := &usecase.EvaluationReport{Evaluated: 4, Matched: 3, SkippedNoData: 1}

	alerts.EXPECT().EvaluateAlerts(ctx).Return(notifications, report, nil)
	metrics.EXPECT().ObserveEvaluation(4, 3, 0, 1, 0).Return()

	var published []int64
	publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*entity.AlertEvent")).
		RunAndReturn(func(_ context.Context, event *entity.AlertEvent) error {
			assert.NotEqual(t, uuid.Nil, event.EventID)
			assert.False(t, event.PublishedAt.IsZero())
			published = append(published, event.Notification.UserID)
			if event.Notification.UserID == 2 {
				return errors.New("topic not found")
			}

			return nil
		}).
		Times(3)
	metrics.EXPECT().ObservePublish(true).Return().Twice()
	metrics.EXPECT().ObservePublish(false).Return().Once()

	result, err := service.DispatchAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, published)
	assert.Equal(t, 2, result.Published)
	assert.Equal(t, 1, result.Failed)
	assert.Same(t, report, result.Evaluation)
}

func TestDispatchService_DispatchAlerts_EvaluationError(t *testing.T) {
	alerts := mockUsecase.NewMockAlertUsecase(t)
	service := NewDispatchService(DispatchServiceParams{
		Alerts:    alerts,
		Publisher: mockSvc.NewMockEventPublisher(t),
		Metrics:   mockSvc.NewMockAlertMetrics(t),
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	dbErr := errors.New("database is closed")
	alerts.EXPECT().EvaluateAlerts(ctx).Return(nil, nil, dbErr)

	result, err := service.DispatchAlerts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, result)
}

func TestDispatchService_DispatchAlerts_StopsOnCancelledContext(t *testing.T) {
	alerts := mockUsecase.NewMockAlertUsecase(t)
	metrics := mockSvc.NewMockAlertMetrics(t)
	service := NewDispatchService(DispatchServiceParams{
		Alerts:    alerts,
		Publisher: mockSvc.NewMockEventPublisher(t),
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	alerts.EXPECT().EvaluateAlerts(ctx).Return(
		[]*entity.PriceAlertNotification{{UserID: 1}},
		&usecase.EvaluationReport{Evaluated: 1, Matched: 1},
		nil,
	)
	metrics.EXPECT().ObserveEvaluation(1, 1, 0, 0, 0).Return()

	result, err := service.DispatchAlerts(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

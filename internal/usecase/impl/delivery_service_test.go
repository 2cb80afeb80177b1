package impl

import (
	"context"
	"testing"

	"fuelradar/internal/domain/entity"
	mockSvc "fuelradar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryService_DeliverAlert(t *testing.T) {
	sender := mockSvc.NewMockNotificationSender(t)
	metrics := mockSvc.NewMockAlertMetrics(t)
	service := NewDeliveryService(DeliveryServiceParams{Sender: sender, Metrics: metrics, Logger: newDiscardLogger()})

	ctx := context.Background()
	notification := &entity.PriceAlertNotification{SubscriptionID: uuid.New(), UserID: 42, CurrentPrice: 1.45}

	sender.EXPECT().SendPriceAlert(ctx, notification).Return(nil)
	metrics.EXPECT().ObserveDelivery(true).Return()

	err := service.DeliverAlert(ctx, &entity.AlertEvent{EventID: uuid.New(), Notification: notification})
	require.NoError(t, err)
}

func TestDeliveryService_DeliverAlert_SenderError(t *testing.T) {
	sender := mockSvc.NewMockNotificationSender(t)
	metrics := mockSvc.NewMockAlertMetrics(t)
	service := NewDeliveryService(DeliveryServiceParams{Sender: sender, Metrics: metrics, Logger: newDiscardLogger()})

	ctx := context.Background()
	notification := &entity.PriceAlertNotification{UserID: 42}
	sendErr := errors.New("Too Many Requests: retry after 5")

	sender.EXPECT().SendPriceAlert(ctx, notification).Return(sendErr)
	metrics.EXPECT().ObserveDelivery(false).Return()

	err := service.DeliverAlert(ctx, &entity.AlertEvent{EventID: uuid.New(), Notification: notification})
	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
}

func TestDeliveryService_DeliverAlert_InvalidEvent(t *testing.T) {
	service := NewDeliveryService(DeliveryServiceParams{
		Sender:  mockSvc.NewMockNotificationSender(t),
		Metrics: mockSvc.NewMockAlertMetrics(t),
		Logger:  newDiscardLogger(),
	})

	for _, event := range []*entity.AlertEvent{
		nil,
		{EventID: uuid.New()},
		{EventID: uuid.New(), Notification: &entity.PriceAlertNotification{}},
	} {
		err := service.DeliverAlert(context.Background(), event)
		requireAppError(t, err, "INVALID_INPUT")
	}
}

package service

import (
	"context"

	"fuelradar/internal/domain/entity"
)

// NotificationSender defines the interface for delivering alerts to users
type NotificationSender interface {
	// SendPriceAlert delivers one triggered alert to the subscriber's chat
	SendPriceAlert(ctx context.Context, notification *entity.PriceAlertNotification) error
}

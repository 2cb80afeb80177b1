package usecase

import (
	"context"

	"fuelradar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAlertInput is a request to create or replace a price alert.
type CreateAlertInput struct {
	UserID       int64
	Username     string
	FuelType     string  // Catalog fuel key
	Municipality string  // Municipality key or display name
	Threshold    float64 // Euros per litre
}

// CreateAlertResult reports whether the alert was newly created or an existing one was updated.
type CreateAlertResult struct {
	Subscription *entity.PriceAlertSubscription `json:"subscription"`
	Created      bool                           `json:"created"`
}

// QRSubscribeInput is a request to create an alert from a shared QR code.
type QRSubscribeInput struct {
	UserID    int64
	Username  string
	QRData    string
	Threshold float64
}

// AlertUsecase defines the interface for price alert management use cases
type AlertUsecase interface {
	// CreateAlert creates an alert, or replaces the threshold of the user's active alert for the same fuel and municipality
	CreateAlert(ctx context.Context, input *CreateAlertInput) (*CreateAlertResult, error)

	// ListAlerts returns the user's active alerts, newest first
	ListAlerts(ctx context.Context, userID int64) ([]*entity.PriceAlertSubscription, error)

	// DeleteAlert deactivates one of the user's alerts
	DeleteAlert(ctx context.Context, userID int64, alertID uuid.UUID) error

	// GenerateAlertQR returns a PNG QR code sharing a fuel and municipality alert target
	GenerateAlertQR(ctx context.Context, fuel, municipality string) ([]byte, error)

	// SubscribeFromQR creates an alert for the target encoded in a shared QR code
	SubscribeFromQR(ctx context.Context, input *QRSubscribeInput) (*CreateAlertResult, error)

	// EvaluateAlerts loads every active alert and matches it against current prices
	EvaluateAlerts(ctx context.Context) ([]*entity.PriceAlertNotification, *EvaluationReport, error)
}

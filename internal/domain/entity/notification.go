package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceAlertNotification is produced when a subscription's threshold is met. It is never persisted.
type PriceAlertNotification struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	UserID         int64     `json:"user_id"`
	Username       string    `json:"username,omitempty"`
	FuelType       FuelType  `json:"fuel_type"`
	Municipality   string    `json:"municipality"`
	MunicipalityID int       `json:"municipality_id"`
	Threshold      float64   `json:"threshold"`
	CurrentPrice   float64   `json:"current_price"`
	StationID      string    `json:"station_id"`
	StationName    string    `json:"station_name"`
	StationAddress string    `json:"station_address"`
	EvaluatedAt    time.Time `json:"evaluated_at"`
}

// AlertEvent is the message published for asynchronous alert delivery.
type AlertEvent struct {
	EventID      uuid.UUID               `json:"event_id"`
	Notification *PriceAlertNotification `json:"notification"`
	PublishedAt  time.Time               `json:"published_at"`
}

// DeliveryReport summarizes one batch of alert deliveries.
type DeliveryReport struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

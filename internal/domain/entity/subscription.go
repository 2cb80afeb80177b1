package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceAlertSubscription is a user's request to be told when a fuel gets cheap enough in a municipality.
type PriceAlertSubscription struct {
	ID           uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the alert.
	UserID       int64     `json:"user_id"`      // Telegram user ID; also the chat the alert is sent to.
	Username     string    `json:"username"`     // Telegram username at creation time (may be empty).
	FuelType     FuelType  `json:"fuel_type"`    // Catalog fuel key.
	Municipality string    `json:"municipality"` // Municipality display name, e.g. "Adeje".
	Threshold    float64   `json:"threshold"`    // Maximum price in euros per litre that triggers the alert.
	IsActive     bool      `json:"is_active"`    // False once the user deletes the alert.
	CreatedAt    time.Time `json:"created_at"`   // Creation time; refreshed when the threshold is replaced.
	UpdatedAt    time.Time `json:"updated_at"`   // Timestamp of the last modification.
}

// AlertQRPayload is the content encoded in a shareable alert QR code.
type AlertQRPayload struct {
	Type         string   `json:"type"`
	FuelType     FuelType `json:"fuel_type"`
	Municipality string   `json:"municipality"`
}

// Package constants holds string values shared between configuration and wiring.
package constants

// Pub/Sub providers.
const (
	PubSubProviderDirect = "direct"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Station store backends.
const (
	StationBackendPostgres = "postgres"
	StationBackendMemory   = "memory"
)

// Feed sources.
const (
	FeedSourceFile = "file"
	FeedSourceHTTP = "http"
)

// QR code payload types.
const (
	QRTypePriceAlert = "fuelradar_price_alert"
)

// Echo context keys.
const (
	ContextKeyUserID   = "userID"
	ContextKeyUsername = "username"
)

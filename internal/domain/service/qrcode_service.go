package service

import (
	"fuelradar/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateAlertQR generates a PNG QR code that shares a fuel/municipality alert
	GenerateAlertQR(fuel entity.FuelType, municipality string) ([]byte, error)

	// ParseAlertQR parses QR code data and returns the shared alert target
	ParseAlertQR(qrData string) (*entity.AlertQRPayload, error)
}

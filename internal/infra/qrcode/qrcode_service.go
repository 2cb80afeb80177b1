package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"fuelradar/internal/domain/constants"
	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateAlertQR generates a QR code that lets another user subscribe to the same alert target
func (s *qrcodeService) GenerateAlertQR(fuel entity.FuelType, municipality string) ([]byte, error) {
	if !fuel.Valid() {
		return nil, fmt.Errorf("invalid fuel type: %s", fuel)
	}
	if strings.TrimSpace(municipality) == "" {
		return nil, fmt.Errorf("municipality is required")
	}

	data := entity.AlertQRPayload{
		Type:         constants.QRTypePriceAlert,
		FuelType:     fuel,
		Municipality: municipality,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseAlertQR parses QR code data and returns the shared alert target
func (s *qrcodeService) ParseAlertQR(qrData string) (*entity.AlertQRPayload, error) {
	var data entity.AlertQRPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != constants.QRTypePriceAlert {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if !data.FuelType.Valid() {
		return nil, fmt.Errorf("invalid fuel type: %s", data.FuelType)
	}
	if strings.TrimSpace(data.Municipality) == "" {
		return nil, fmt.Errorf("missing municipality")
	}

	return &data, nil
}

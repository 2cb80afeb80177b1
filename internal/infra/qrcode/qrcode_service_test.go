package qrcode

import (
	"encoding/json"
	"testing"

	"fuelradar/internal/domain/constants"
	"fuelradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateAlertQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateAlertQR(entity.FuelGasolina95E5, "Adeje")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateAlertQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateAlertQR(entity.FuelGasoleoA, "Arona")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateAlertQR_InvalidTarget(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateAlertQR(entity.FuelType("KEROSENE"), "Adeje")
	assert.Error(t, err)

	_, err = service.GenerateAlertQR(entity.FuelGasoleoA, "  ")
	assert.Error(t, err)
}

func TestQRCodeService_ParseAlertQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	jsonData, err := json.Marshal(entity.AlertQRPayload{
		Type:         constants.QRTypePriceAlert,
		FuelType:     entity.FuelGasoleoA,
		Municipality: "San Cristóbal de La Laguna",
	})
	require.NoError(t, err)

	payload, err := service.ParseAlertQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, entity.FuelGasoleoA, payload.FuelType)
	assert.Equal(t, "San Cristóbal de La Laguna", payload.Municipality)
}

func TestQRCodeService_ParseAlertQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		data    string
		message string
	}{
		{"Invalid JSON", "invalid json", "failed to unmarshal QR code data"},
		{"Invalid type", `{"type":"subscription","fuel_type":"GASOLEO_A","municipality":"Adeje"}`, "invalid QR code type"},
		{"Unknown fuel", `{"type":"fuelradar_price_alert","fuel_type":"KEROSENE","municipality":"Adeje"}`, "invalid fuel type"},
		{"Missing municipality", `{"type":"fuelradar_price_alert","fuel_type":"GASOLEO_A"}`, "missing municipality"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseAlertQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

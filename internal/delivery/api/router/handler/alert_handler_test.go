package handler

import (
	"net/http"
	"testing"

	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	mockUsecase "fuelradar/internal/mocks/usecase"
	"fuelradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAlertHandler(t *testing.T) (*AlertHandler, *mockUsecase.MockAlertUsecase) {
	alertUC := mockUsecase.NewMockAlertUsecase(t)

	return NewAlertHandler(AlertHandlerParams{AlertUC: alertUC, Logger: testLogger()}), alertUC
}

func TestAlertHandler_CreateAlert(t *testing.T) {
	subscription := &entity.PriceAlertSubscription{
		ID:           uuid.New(),
		UserID:       42,
		FuelType:     entity.FuelGasoleoA,
		Municipality: "Adeje",
		Threshold:    1.2,
		IsActive:     true,
	}

	tests := []struct {
		name          string
		body          string
		authenticated bool
		setupMock     func(alertUC *mockUsecase.MockAlertUsecase)
		wantStatus    int
		wantCode      string
	}{
		{
			name:          "created",
			body:          `{"fuel":"GASOLEO_A","municipality":"ADEJE","threshold":1.2}`,
			authenticated: true,
			setupMock: func(alertUC *mockUsecase.MockAlertUsecase) {
				alertUC.EXPECT().CreateAlert(mock.Anything, &usecase.CreateAlertInput{
					UserID:       42,
					Username:     "ana_tf",
					FuelType:     "GASOLEO_A",
					Municipality: "ADEJE",
					Threshold:    1.2,
				}).Return(&usecase.CreateAlertResult{Subscription: subscription, Created: true}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:          "threshold replaced",
			body:          `{"fuel":"GASOLEO_A","municipality":"ADEJE","threshold":1.2}`,
			authenticated: true,
			setupMock: func(alertUC *mockUsecase.MockAlertUsecase) {
				alertUC.EXPECT().CreateAlert(mock.Anything, mock.Anything).
					Return(&usecase.CreateAlertResult{Subscription: subscription}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unauthenticated",
			body:       `{"fuel":"GASOLEO_A","municipality":"ADEJE","threshold":1.2}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:          "non positive threshold",
			body:          `{"fuel":"GASOLEO_A","municipality":"ADEJE","threshold":0}`,
			authenticated: true,
			wantStatus:    http.StatusBadRequest,
			wantCode:      "VALIDATION_FAILED",
		},
		{
			name:          "unknown municipality",
			body:          `{"fuel":"GASOLEO_A","municipality":"MADRID","threshold":1.2}`,
			authenticated: true,
			setupMock: func(alertUC *mockUsecase.MockAlertUsecase) {
				alertUC.EXPECT().CreateAlert(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrUnknownMunicipality.WithDetails("MADRID"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "UNKNOWN_MUNICIPALITY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, alertUC := newAlertHandler(t)
			if tt.setupMock != nil {
				tt.setupMock(alertUC)
			}

			c, rec := newContext(http.MethodPost, "/alerts", tt.body)
			if tt.authenticated {
				authenticate(c, 42, "ana_tf")
			}
			require.NoError(t, h.CreateAlert(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				env := decodeEnvelope(t, rec)
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
		})
	}
}

func TestAlertHandler_ListAlerts(t *testing.T) {
	h, alertUC := newAlertHandler(t)
	alertUC.EXPECT().ListAlerts(mock.Anything, int64(42)).Return([]*entity.PriceAlertSubscription{
		{ID: uuid.New(), UserID: 42, FuelType: entity.FuelGLP, Municipality: "Arona", Threshold: 0.9, IsActive: true},
	}, nil)

	c, rec := newContext(http.MethodGet, "/alerts", "")
	authenticate(c, 42, "")
	require.NoError(t, h.ListAlerts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"municipality":"Arona"`)
}

func TestAlertHandler_DeleteAlert(t *testing.T) {
	alertID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		h, alertUC := newAlertHandler(t)
		alertUC.EXPECT().DeleteAlert(mock.Anything, int64(42), alertID).Return(nil)

		c, rec := newContext(http.MethodDelete, "/alerts/"+alertID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(alertID.String())
		authenticate(c, 42, "")
		require.NoError(t, h.DeleteAlert(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("someone else's alert", func(t *testing.T) {
		h, alertUC := newAlertHandler(t)
		alertUC.EXPECT().DeleteAlert(mock.Anything, int64(7), alertID).Return(domainerrors.ErrAlertNotFound)

		c, rec := newContext(http.MethodDelete, "/alerts/"+alertID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(alertID.String())
		authenticate(c, 7, "")
		require.NoError(t, h.DeleteAlert(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newAlertHandler(t)

		c, rec := newContext(http.MethodDelete, "/alerts/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")
		authenticate(c, 42, "")
		require.NoError(t, h.DeleteAlert(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAlertHandler_GenerateAlertQR(t *testing.T) {
	h, alertUC := newAlertHandler(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	alertUC.EXPECT().GenerateAlertQR(mock.Anything, "GLP", "ARONA").Return(png, nil)

	c, rec := newContext(http.MethodGet, "/alerts/qr?fuel=GLP&municipality=ARONA", "")
	require.NoError(t, h.GenerateAlertQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAlertHandler_SubscribeFromQR(t *testing.T) {
	h, alertUC := newAlertHandler(t)
	qrData := `{"type":"fuelradar_price_alert","fuel_type":"GLP","municipality":"Arona"}`
	alertUC.EXPECT().SubscribeFromQR(mock.Anything, &usecase.QRSubscribeInput{
		UserID:    42,
		Username:  "ana_tf",
		QRData:    qrData,
		Threshold: 0.95,
	}).Return(&usecase.CreateAlertResult{
		Subscription: &entity.PriceAlertSubscription{ID: uuid.New(), UserID: 42, FuelType: entity.FuelGLP, Municipality: "Arona"},
		Created:      true,
	}, nil)

	body := `{"qr_data":"{\"type\":\"fuelradar_price_alert\",\"fuel_type\":\"GLP\",\"municipality\":\"Arona\"}","threshold":0.95}`
	c, rec := newContext(http.MethodPost, "/alerts/qr", body)
	authenticate(c, 42, "ana_tf")
	require.NoError(t, h.SubscribeFromQR(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fuelradar/config"
	deliverycontext "fuelradar/internal/delivery/context"
	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/infra/pubsub"
	mockUsecase "fuelradar/internal/mocks/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAlertEvent() *entity.AlertEvent {
	return &entity.AlertEvent{
		EventID: uuid.New(),
		Notification: &entity.PriceAlertNotification{
			SubscriptionID: uuid.New(),
			UserID:         123456,
			FuelType:       entity.FuelGasolina95E5,
			Municipality:   "Arona",
			MunicipalityID: 5696,
			Threshold:      1.4,
			CurrentPrice:   1.359,
			StationID:      "4411",
			StationName:    "CEPSA",
		},
		PublishedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func newPushRequest(t *testing.T, event *entity.AlertEvent, requestID string) *http.Request {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, requestID, "projects/test/subscriptions/alerts")
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockDeliveryUsecase) {
	delivery := mockUsecase.NewMockDeliveryUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Delivery: delivery,
	}), delivery
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		deliverErr error
		wantStatus int
	}{
		{name: "delivered", wantStatus: http.StatusOK},
		{name: "transient failure is retried", deliverErr: errors.New("connection reset"), wantStatus: http.StatusServiceUnavailable},
		{name: "invalid event is dropped", deliverErr: domainerrors.ErrInvalidInput.WithDetails("alert event without recipient"), wantStatus: http.StatusOK},
		{
			name:       "blocked bot is dropped",
			deliverErr: errors.Wrap(&tgbotapi.Error{Code: http.StatusForbidden, Message: "Forbidden: bot was blocked by the user"}, "send"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, delivery := newTestPushHandler(t, nil)
			event := newAlertEvent()

			delivery.EXPECT().DeliverAlert(mock.Anything, mock.MatchedBy(func(got *entity.AlertEvent) bool {
				return got.EventID == event.EventID && got.Notification.UserID == event.Notification.UserID
			})).Return(tt.deliverErr)

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(newPushRequest(t, event, "req-1"), rec)
			require.NoError(t, h.HandlePush(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_PropagatesRequestID(t *testing.T) {
	h, delivery := newTestPushHandler(t, nil)
	event := newAlertEvent()

	var gotRequestID string
	delivery.EXPECT().DeliverAlert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *entity.AlertEvent) {
			gotRequestID = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newPushRequest(t, event, "dispatch-42"), rec)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, "dispatch-42", gotRequestID)
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "not json", body: `{"message":`, wantStatus: http.StatusBadRequest},
		{name: "no message id", body: `{"message":{"data":"e30="}}`, wantStatus: http.StatusBadRequest},
		{name: "data not base64", body: `{"message":{"messageId":"m-1","data":"%%%"}}`, wantStatus: http.StatusOK},
		{name: "data not an event", body: `{"message":{"messageId":"m-2","data":"bm90IGpzb24="}}`, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The delivery mock fails the test on any unexpected DeliverAlert call.
			h, _ := newTestPushHandler(t, nil)

			req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewBufferString(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:        "google",
		VerifyPushToken: true,
		PushAudience:    "https://worker.example.com/push",
	}}

	t.Run("rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.verify = func(_ *http.Request, audience string) error {
			assert.Equal(t, "https://worker.example.com/push", audience)

			return errors.New("token expired")
		}

		rec := httptest.NewRecorder()
		require.NoError(t, h.HandlePush(echo.New().NewContext(newPushRequest(t, newAlertEvent(), ""), rec)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := httptest.NewRecorder()
		require.NoError(t, h.HandlePush(echo.New().NewContext(newPushRequest(t, newAlertEvent(), ""), rec)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepted", func(t *testing.T) {
		h, delivery := newTestPushHandler(t, cfg)
		h.verify = func(*http.Request, string) error { return nil }
		delivery.EXPECT().DeliverAlert(mock.Anything, mock.Anything).Return(nil)

		rec := httptest.NewRecorder()
		require.NoError(t, h.HandlePush(echo.New().NewContext(newPushRequest(t, newAlertEvent(), ""), rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

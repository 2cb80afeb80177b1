package pubsub

import (
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
	mockUsecase "fuelradar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *entity.AlertEvent {
	return &entity.AlertEvent{
		EventID: uuid.New(),
		Notification: &entity.PriceAlertNotification{
			SubscriptionID: uuid.New(),
			UserID:         42,
			FuelType:       entity.FuelGasoleoA,
			Municipality:   "Adeje",
			Threshold:      1.50,
			CurrentPrice:   1.45,
			StationName:    "Station A",
		},
		PublishedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestNewEventPublisher_DefaultsToDirect(t *testing.T) {
	delivery := mockUsecase.NewMockDeliveryUsecase(t)
	event := newTestEvent()
	delivery.EXPECT().DeliverAlert(mock.Anything, event).Return(nil).Once()

	publisher, err := NewEventPublisher(PublisherParams{
		Lc:       fxtest.NewLifecycle(t),
		Ctx:      context.Background(),
		Config:   &config.Config{},
		Logger:   newDiscardLogger(),
		Delivery: delivery,
	})
	require.NoError(t, err)
	require.NoError(t, publisher.PublishAlertEvent(context.Background(), event))
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		pubsub *config.PubSubConfig
	}{
		{"Direct without delivery", &config.PubSubConfig{Provider: "direct"}},
		{"Local without endpoint", &config.PubSubConfig{Provider: "local"}},
		{"Google without project", &config.PubSubConfig{Provider: "google", TopicID: "alerts"}},
		{"Google without topic", &config.PubSubConfig{Provider: "google", ProjectID: "fuelradar"}},
		{"Unknown provider", &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newDiscardLogger(),
			})
			assert.Error(t, err)
		})
	}
}

func TestDirectPublisher_PropagatesDeliveryError(t *testing.T) {
	delivery := mockUsecase.NewMockDeliveryUsecase(t)
	delivery.EXPECT().DeliverAlert(mock.Anything, mock.Anything).Return(errors.New("telegram down"))

	publisher := NewDirectPublisher(delivery, newDiscardLogger())

	err := publisher.PublishAlertEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram down")
}

func TestLocalHTTPPublisher_PublishAlertEvent(t *testing.T) {
	event := newTestEvent()

	var received PushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get(deliverycontext.HeaderXRequestID)
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	require.NoError(t, publisher.PublishAlertEvent(ctx, event))
	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, event.EventID.String(), received.Message.MessageID)
	assert.Equal(t, "42", received.Message.Attributes[AttrUserID])
	assert.Equal(t, "req-1", received.Message.Attributes[AttrRequestID])

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, event.Notification.CurrentPrice, decoded.Notification.CurrentPrice)
	assert.Equal(t, event.Notification.Municipality, decoded.Notification.Municipality)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishAlertEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestPushMessage_DecodeEventInvalid(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"

	_, err := msg.DecodeEvent()
	assert.Error(t, err)
}

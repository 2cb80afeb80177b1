package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fuelradar/config"
	"fuelradar/internal/delivery/worker/handler"
	"fuelradar/internal/infra/metrics"
	mockUsecase "fuelradar/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestWorkerRoutes(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:   cfg,
			Logger:   logger,
			Delivery: mockUsecase.NewMockDeliveryUsecase(t),
		}),
		Registry: metrics.NewRegistry(),
	})

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{method: http.MethodPost, path: "/push", wantStatus: http.StatusBadRequest},
		{method: http.MethodGet, path: "/push", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fuelradar/config"
	deliverycontext "fuelradar/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id kept", header: "req-123.abc_X", wantSame: true},
		{name: "missing id generated", header: ""},
		{name: "too long id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "unsafe characters replaced", header: "id\nwith newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	newConfig := func(debug bool) *config.Config {
		cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
		cfg.Env.Debug = debug

		return cfg
	}

	tests := []struct {
		name    string
		debug   bool
		path    string
		handler echo.HandlerFunc
		wantLog string
	}{
		{
			name:    "debug logs successful requests",
			debug:   true,
			path:    "/api/v1/fuels",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: "status=200",
		},
		{
			name:    "quiet mode skips successful requests",
			path:    "/api/v1/fuels",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:    "quiet mode logs server errors",
			path:    "/api/v1/fuels",
			handler: func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) },
			wantLog: "status=502",
		},
		{
			name:    "health checks are never logged",
			debug:   true,
			path:    "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), rec)

			require.NoError(t, NewLoggerMiddleware(logger, newConfig(tt.debug)).Handle(tt.handler)(c))

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.wantLog)
				assert.Contains(t, buf.String(), "uri="+tt.path)
			}
		})
	}
}

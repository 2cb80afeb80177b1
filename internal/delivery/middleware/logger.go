package middleware

import (
	"log/slog"
	"time"

	"fuelradar/config"
	deliverycontext "fuelradar/internal/delivery/context"
	"fuelradar/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

const slowRequestThreshold = 2 * time.Second

// LoggerMiddleware logs HTTP requests. In debug mode every request is logged;
// otherwise only server errors and slow requests are.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	skip := map[string]struct{}{"/health": {}}
	if cfg.Metrics != nil && cfg.Metrics.Path != "" {
		skip[cfg.Metrics.Path] = struct{}{}
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     cfg.Env.Debug,
		skipPaths: skip,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, skip := m.skipPaths[c.Request().URL.Path]; skip {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		// Run the error handler now so the logged status is the one sent
		if err != nil {
			c.Error(err)
		}

		latency := time.Since(start)
		status := c.Response().Status
		if m.debug || status >= 500 || latency >= slowRequestThreshold {
			m.logRequest(c, status, latency, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if userID, ok := c.Get(constants.ContextKeyUserID).(int64); ok {
		fields = append(fields, slog.Int64("user_id", userID))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	switch {
	case status >= 500:
		logLevel = slog.LevelError
	case status >= 400 || latency >= slowRequestThreshold:
		logLevel = slog.LevelWarn
	}

	// The request logger already carries request_id
	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}

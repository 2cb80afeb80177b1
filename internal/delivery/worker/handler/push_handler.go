package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fuelradar/config"
	deliverycontext "fuelradar/internal/delivery/context"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/infra/notification"
	"fuelradar/internal/infra/pubsub"
	"fuelradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenVerifier checks the OIDC token of a push request against an audience.
type tokenVerifier func(req *http.Request, audience string) error

// PushHandler handles Pub/Sub push messages carrying price alert events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verify         tokenVerifier
	logger         *slog.Logger
	delivery       usecase.DeliveryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Delivery usecase.DeliveryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		verify:   verifyPubSubToken,
		logger:   params.Logger,
		delivery: params.Delivery,
	}
	if params.Config.PubSub != nil {
		h.verifyPushAuth = params.Config.PubSub.VerifyPushToken
		h.audience = params.Config.PubSub.PushAudience
	}

	return h
}

// HandlePush delivers one alert event. Requests that are not push envelopes get 400.
// Envelopes whose payload is not an alert event are acknowledged with 200 and dropped,
// transient delivery failures get 503 so Pub/Sub retries, and permanent failures 200.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request(), h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if pushMsg.Message.MessageID == "" {
		h.logger.Error("[Worker] Push message without message ID")

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Dropping undecodable alert event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("event_id", event.EventID.String()),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.delivery.DeliverAlert(ctx, event); err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to deliver alert event",
			slog.String("event_id", event.EventID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert event delivered", slog.String("event_id", event.EventID.String()))

	return c.NoContent(http.StatusOK)
}

// extractRequestID picks the request ID from message attributes, then the
// X-Request-Id of the push request, then generates one.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// isRetryable reports whether redelivering the event could succeed.
func isRetryable(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return false
	}

	return !notification.IsPermanentSendError(err)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests.
// Without a configured audience the push endpoint URL is expected.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

package handler

import (
	"log/slog"
	"net/http"

	"fuelradar/internal/delivery/api/middleware"
	"fuelradar/internal/delivery/api/response"
	deliverycontext "fuelradar/internal/delivery/context"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler manages the authenticated user's price alerts
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// CreateAlertRequest is the body of POST /alerts
type CreateAlertRequest struct {
	Fuel         string  `json:"fuel" validate:"required"`
	Municipality string  `json:"municipality" validate:"required"`
	Threshold    float64 `json:"threshold" validate:"gt=0"`
}

// AlertQRRequest selects the target encoded in a shareable QR code
type AlertQRRequest struct {
	Fuel         string `query:"fuel" validate:"required"`
	Municipality string `query:"municipality" validate:"required"`
}

// SubscribeQRRequest is the body of POST /alerts/qr
type SubscribeQRRequest struct {
	QRData    string  `json:"qr_data" validate:"required"`
	Threshold float64 `json:"threshold" validate:"gt=0"`
}

// CreateAlert handles POST /alerts
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req CreateAlertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.alertUC.CreateAlert(c.Request().Context(), &usecase.CreateAlertInput{
		UserID:       userID,
		Username:     middleware.GetUsername(c),
		FuelType:     req.Fuel,
		Municipality: req.Municipality,
		Threshold:    req.Threshold,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, createdStatus(result), result)
}

// ListAlerts handles GET /alerts
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}

// DeleteAlert handles DELETE /alerts/:id
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("alert id must be a UUID"))
	}

	if err := h.alertUC.DeleteAlert(c.Request().Context(), userID, alertID); err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Alert deleted",
		slog.Int64("user_id", userID),
		slog.String("alert_id", alertID.String()),
	)

	return c.NoContent(http.StatusNoContent)
}

// GenerateAlertQR handles GET /alerts/qr and returns a PNG image
func (h *AlertHandler) GenerateAlertQR(c echo.Context) error {
	var req AlertQRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.alertUC.GenerateAlertQR(c.Request().Context(), req.Fuel, req.Municipality)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// SubscribeFromQR handles POST /alerts/qr
func (h *AlertHandler) SubscribeFromQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req SubscribeQRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.alertUC.SubscribeFromQR(c.Request().Context(), &usecase.QRSubscribeInput{
		UserID:    userID,
		Username:  middleware.GetUsername(c),
		QRData:    req.QRData,
		Threshold: req.Threshold,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, createdStatus(result), result)
}

func createdStatus(result *usecase.CreateAlertResult) int {
	if result.Created {
		return http.StatusCreated
	}

	return http.StatusOK
}

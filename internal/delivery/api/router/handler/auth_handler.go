package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fuelradar/internal/delivery/api/response"
	"fuelradar/internal/domain/entity"
	"fuelradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler handles Telegram login
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// TelegramLoginRequest mirrors the fields posted by the Telegram Login Widget.
type TelegramLoginRequest struct {
	ID        int64  `json:"id" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date" validate:"required"`
	Hash      string `json:"hash" validate:"required,hexadecimal"`
}

// TelegramLogin handles POST /auth/telegram
func (h *AuthHandler) TelegramLogin(c echo.Context) error {
	var req TelegramLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.authUC.LoginWithTelegram(c.Request().Context(), &entity.TelegramLogin{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		PhotoURL:  req.PhotoURL,
		AuthDate:  time.Unix(req.AuthDate, 0),
		Hash:      req.Hash,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

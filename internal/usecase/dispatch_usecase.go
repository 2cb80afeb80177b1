package usecase

import (
	"context"
	"time"

	"fuelradar/internal/domain/entity"
)

// DispatchReport summarizes one scheduled alert run.
type DispatchReport struct {
	Evaluation *EvaluationReport `json:"evaluation"`
	Published  int               `json:"published"`
	Failed     int               `json:"failed"`
	Duration   time.Duration     `json:"duration"`
}

// DispatchUsecase evaluates active alerts and hands triggered ones to the event publisher
type DispatchUsecase interface {
	// DispatchAlerts runs one evaluation pass over all active subscriptions
	DispatchAlerts(ctx context.Context) (*DispatchReport, error)
}

// DeliveryUsecase delivers published alert events to users
type DeliveryUsecase interface {
	// DeliverAlert sends one alert event to its subscriber
	DeliverAlert(ctx context.Context, event *entity.AlertEvent) error
}

// IngestUsecase refreshes the station price store from the ministry feed
type IngestUsecase interface {
	// RefreshStations fetches the feed and atomically replaces the station set
	RefreshStations(ctx context.Context) (*entity.FeedImport, error)
}

// LoginResult is returned after a successful Telegram login.
type LoginResult struct {
	Identity *entity.TelegramIdentity `json:"identity"`
	Token    *entity.AccessToken      `json:"token"`
}

// AuthUsecase authenticates Telegram users for the HTTP API
type AuthUsecase interface {
	// LoginWithTelegram verifies a Login Widget payload and issues an access token
	LoginWithTelegram(ctx context.Context, login *entity.TelegramLogin) (*LoginResult, error)
}

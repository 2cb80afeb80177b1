package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"fuelradar/config"
	deliverycontext "fuelradar/internal/delivery/context"
	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/repository"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/errors"
	"fuelradar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type alertService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	qrcodeService    service.QRCodeService
	matcher          usecase.AlertMatcher
	config           *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.SubscriptionRepository
	QRCodeService    service.QRCodeService
	Matcher          usecase.AlertMatcher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAlertService creates a new alert service instance
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		qrcodeService:    params.QRCodeService,
		matcher:          params.Matcher,
		config:           params.Config,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateAlert creates an alert or replaces the threshold of the matching active one.
func (s *alertService) CreateAlert(ctx context.Context, input *usecase.CreateAlertInput) (*usecase.CreateAlertResult, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("missing alert input")
	}

	fuel, municipality, err := resolveAlertTarget(input.FuelType, input.Municipality)
	if err != nil {
		return nil, err
	}
	if err := s.validateThreshold(input.Threshold); err != nil {
		return nil, err
	}

	result, err := s.upsertAlert(ctx, input, fuel, municipality)
	if errors.Is(err, repository.ErrDuplicateSubscription) {
		// A concurrent request created the same alert; the second attempt updates it.
		result, err = s.upsertAlert(ctx, input, fuel, municipality)
	}
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Price alert saved",
		slog.String("alert_id", result.Subscription.ID.String()),
		slog.Int64("user_id", input.UserID),
		slog.String("fuel", string(fuel)),
		slog.String("municipality", municipality.DisplayName),
		slog.Float64("threshold", input.Threshold),
		slog.Bool("created", result.Created),
	)

	return result, nil
}

func (s *alertService) upsertAlert(
	ctx context.Context,
	input *usecase.CreateAlertInput,
	fuel entity.FuelType,
	municipality entity.Municipality,
) (*usecase.CreateAlertResult, error) {
	var result *usecase.CreateAlertResult

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subscriptionRepo := repoFactory.NewSubscriptionRepository()

		existing, err := subscriptionRepo.FindActiveSubscription(ctx, input.UserID, fuel, municipality.DisplayName)
		if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return errors.Wrap(err, "failed to find active subscription")
		}

		now := s.now()
		if existing != nil {
			if err := subscriptionRepo.UpdateThreshold(ctx, existing.ID, input.Threshold); err != nil {
				return errors.Wrap(err, "failed to update subscription threshold")
			}
			existing.Threshold = input.Threshold
			existing.CreatedAt = now
			existing.UpdatedAt = now
			result = &usecase.CreateAlertResult{Subscription: existing, Created: false}

			return nil
		}

		subscription := &entity.PriceAlertSubscription{
			UserID:       input.UserID,
			Username:     input.Username,
			FuelType:     fuel,
			Municipality: municipality.DisplayName,
			Threshold:    input.Threshold,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := subscriptionRepo.CreateSubscription(ctx, subscription); err != nil {
			if errors.Is(err, repository.ErrDuplicateSubscription) {
				return err
			}

			return errors.Wrap(err, "failed to create subscription")
		}
		result = &usecase.CreateAlertResult{Subscription: subscription, Created: true}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListAlerts returns the user's active alerts.
func (s *alertService) ListAlerts(ctx context.Context, userID int64) ([]*entity.PriceAlertSubscription, error) {
	subscriptions, err := s.subscriptionRepo.FindActiveSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

// DeleteAlert deactivates one of the user's alerts.
func (s *alertService) DeleteAlert(ctx context.Context, userID int64, alertID uuid.UUID) error {
	if err := s.subscriptionRepo.DeactivateSubscription(ctx, alertID, userID); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrAlertNotFound.WithDetails(alertID.String())
		}

		return errors.Wrap(err, "failed to deactivate subscription")
	}

	s.log(ctx).Info("Price alert deleted",
		slog.String("alert_id", alertID.String()),
		slog.Int64("user_id", userID),
	)

	return nil
}

// GenerateAlertQR renders a QR code for a fuel and municipality alert target.
func (s *alertService) GenerateAlertQR(ctx context.Context, fuel, municipality string) ([]byte, error) {
	fuelType, target, err := resolveAlertTarget(fuel, municipality)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateAlertQR(fuelType, target.DisplayName)
	if err != nil {
		s.log(ctx).Error("Failed to generate alert QR code",
			slog.String("fuel", string(fuelType)),
			slog.String("municipality", target.DisplayName),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrQRCodeGenerationFailed.WithDetails(err.Error())
	}

	return png, nil
}

// SubscribeFromQR creates an alert for the target encoded in a QR code.
func (s *alertService) SubscribeFromQR(ctx context.Context, input *usecase.QRSubscribeInput) (*usecase.CreateAlertResult, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("missing QR subscription input")
	}

	payload, err := s.qrcodeService.ParseAlertQR(input.QRData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return s.CreateAlert(ctx, &usecase.CreateAlertInput{
		UserID:       input.UserID,
		Username:     input.Username,
		FuelType:     string(payload.FuelType),
		Municipality: payload.Municipality,
		Threshold:    input.Threshold,
	})
}

// EvaluateAlerts matches every active alert against current prices.
func (s *alertService) EvaluateAlerts(ctx context.Context) ([]*entity.PriceAlertNotification, *usecase.EvaluationReport, error) {
	subscriptions, err := s.subscriptionRepo.FindActiveSubscriptions(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load active subscriptions")
	}

	notifications, report := s.matcher.Evaluate(ctx, subscriptions)

	return notifications, report, nil
}

func (s *alertService) validateThreshold(threshold float64) error {
	maxThreshold := s.config.Alerts.MaxThreshold
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold <= 0 || threshold > maxThreshold {
		return domainerrors.ErrInvalidThreshold.WithDetails(
			fmt.Sprintf("threshold %v outside (0, %v]", threshold, maxThreshold))
	}

	return nil
}

// resolveAlertTarget maps a fuel key and a municipality key or display name onto the catalogs.
func resolveAlertTarget(fuel, municipality string) (entity.FuelType, entity.Municipality, error) {
	fuelInfo, ok := entity.LookupFuelType(fuel)
	if !ok {
		return "", entity.Municipality{}, domainerrors.ErrUnknownFuel.WithDetails(fuel)
	}

	target, ok := entity.ResolveMunicipality(municipality)
	if !ok {
		return "", entity.Municipality{}, domainerrors.ErrUnknownMunicipality.WithDetails(municipality)
	}

	return fuelInfo.Key, target, nil
}

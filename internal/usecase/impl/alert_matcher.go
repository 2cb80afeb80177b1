package impl

import (
	"context"
	"log/slog"
	"time"

	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/repository"
	"fuelradar/internal/errors"
	"fuelradar/internal/usecase"

	"go.uber.org/fx"
)

type alertMatcher struct {
	stationRepo repository.StationRepository
	logger      *slog.Logger
	now         func() time.Time
}

// AlertMatcherParams holds dependencies for AlertMatcher, injected by Fx.
type AlertMatcherParams struct {
	fx.In

	StationRepo repository.StationRepository
	Logger      *slog.Logger
}

// NewAlertMatcher creates a new alert matcher instance
func NewAlertMatcher(params AlertMatcherParams) usecase.AlertMatcher {
	return &alertMatcher{
		stationRepo: params.StationRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// cheapestKey identifies one memoized cheapest-price lookup.
type cheapestKey struct {
	fuel           entity.FuelType
	municipalityID int
}

type cheapestResult struct {
	cheapest *entity.CheapestStation
	err      error
}

// recipientKey identifies one notification target within a pass.
type recipientKey struct {
	userID         int64
	fuel           entity.FuelType
	municipalityID int
}

// Evaluate matches subscriptions against the cheapest current price in their municipality.
func (m *alertMatcher) Evaluate(
	ctx context.Context,
	subscriptions []*entity.PriceAlertSubscription,
) ([]*entity.PriceAlertNotification, *usecase.EvaluationReport) {
	report := &usecase.EvaluationReport{}
	notifications := make([]*entity.PriceAlertNotification, 0)
	lookups := make(map[cheapestKey]cheapestResult)
	notified := make(map[recipientKey]struct{})
	evaluatedAt := m.now()

	for _, sub := range subscriptions {
		if sub == nil || !sub.IsActive {
			report.SkippedInactive++

			continue
		}
		report.Evaluated++

		fuel := sub.FuelType
		if !fuel.Valid() {
			report.SkippedUnresolved++
			m.logger.Warn("Skipping alert with unknown fuel",
				slog.String("subscription_id", sub.ID.String()),
				slog.String("fuel", string(fuel)),
			)

			continue
		}

		municipality, ok := entity.ResolveMunicipality(sub.Municipality)
		if !ok {
			report.SkippedUnresolved++
			m.logger.Warn("Skipping alert with unknown municipality",
				slog.String("subscription_id", sub.ID.String()),
				slog.String("municipality", sub.Municipality),
			)

			continue
		}

		key := cheapestKey{fuel: fuel, municipalityID: municipality.ID}
		result, cached := lookups[key]
		if !cached {
			cheapest, err := m.stationRepo.FindCheapestInMunicipality(ctx, fuel, municipality.ID)
			result = cheapestResult{cheapest: cheapest, err: err}
			lookups[key] = result
		}

		if result.err != nil {
			if errors.Is(result.err, repository.ErrNoPriceData) {
				report.SkippedNoData++

				continue
			}

			report.Failures = append(report.Failures, &usecase.EvaluationFailure{SubscriptionID: sub.ID, Err: result.err})
			m.logger.Error("Failed to evaluate alert",
				slog.String("subscription_id", sub.ID.String()),
				slog.Any("error", result.err),
			)

			continue
		}

		if result.cheapest.Price > sub.Threshold {
			continue
		}

		recipient := recipientKey{userID: sub.UserID, fuel: fuel, municipalityID: municipality.ID}
		if _, seen := notified[recipient]; seen {
			report.SkippedDuplicate++

			continue
		}
		notified[recipient] = struct{}{}

		notifications = append(notifications, &entity.PriceAlertNotification{
			SubscriptionID: sub.ID,
			UserID:         sub.UserID,
			Username:       sub.Username,
			FuelType:       fuel,
			Municipality:   municipality.DisplayName,
			MunicipalityID: municipality.ID,
			Threshold:      sub.Threshold,
			CurrentPrice:   result.cheapest.Price,
			StationID:      result.cheapest.StationID,
			StationName:    result.cheapest.StationName,
			StationAddress: result.cheapest.StationAddress,
			EvaluatedAt:    evaluatedAt,
		})
	}
	report.Matched = len(notifications)

	return notifications, report
}

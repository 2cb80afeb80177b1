package usecase

import (
	"context"

	"fuelradar/internal/domain/entity"

	"github.com/google/uuid"
)

// EvaluationFailure records a subscription whose evaluation hit a store error.
type EvaluationFailure struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	Err            error     `json:"-"`
}

// EvaluationReport summarizes one alert evaluation pass.
type EvaluationReport struct {
	Evaluated         int                  `json:"evaluated"`          // Active subscriptions looked at
	Matched           int                  `json:"matched"`            // Notifications produced
	SkippedInactive   int                  `json:"skipped_inactive"`   // Inactive subscriptions ignored
	SkippedUnresolved int                  `json:"skipped_unresolved"` // Unknown fuel or municipality
	SkippedNoData     int                  `json:"skipped_no_data"`    // No station reports the fuel there
	SkippedDuplicate  int                  `json:"skipped_duplicate"`  // Same user, fuel and municipality already notified
	Failures          []*EvaluationFailure `json:"-"`
}

// Failed returns the number of subscriptions that could not be evaluated.
func (r *EvaluationReport) Failed() int {
	return len(r.Failures)
}

// AlertMatcher evaluates price alert subscriptions against current prices.
// It only reads from the station store.
type AlertMatcher interface {
	// Evaluate returns one notification per subscription whose threshold is met by the
	// cheapest current price, in subscription order.
	Evaluate(ctx context.Context, subscriptions []*entity.PriceAlertSubscription) ([]*entity.PriceAlertNotification, *EvaluationReport)
}

// NearbyQuery is a proximity search request.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Fuel      entity.FuelType // Ranking fuel; empty means entity.PrimaryFuel.
}

// ProximityRanker finds stations around a point.
type ProximityRanker interface {
	// FindNearby returns stations within the radius ordered by
	// (has price for the ranking fuel, price ascending, distance ascending).
	FindNearby(ctx context.Context, query *NearbyQuery) ([]*entity.RankedStation, error)
}

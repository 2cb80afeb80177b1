// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fuelradar/internal/domain/entity"
	"fuelradar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when an active subscription already exists for the same user, fuel and municipality.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for price alert subscription persistence.
type SubscriptionRepository interface {
	// CreateSubscription persists a new active subscription.
	CreateSubscription(ctx context.Context, subscription *entity.PriceAlertSubscription) error

	// FindActiveSubscription retrieves the active subscription for a (user, fuel, municipality) triple.
	FindActiveSubscription(ctx context.Context, userID int64, fuel entity.FuelType, municipality string) (*entity.PriceAlertSubscription, error)

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.PriceAlertSubscription, error)

	// FindActiveSubscriptionsByUser retrieves a user's active subscriptions, newest first.
	FindActiveSubscriptionsByUser(ctx context.Context, userID int64) ([]*entity.PriceAlertSubscription, error)

	// FindActiveSubscriptions retrieves every active subscription in creation order.
	FindActiveSubscriptions(ctx context.Context) ([]*entity.PriceAlertSubscription, error)

	// UpdateThreshold replaces the threshold of an active subscription and refreshes its creation time.
	UpdateThreshold(ctx context.Context, id uuid.UUID, threshold float64) error

	// DeactivateSubscription logically deletes a user's active subscription.
	// Returns ErrSubscriptionNotFound when no active subscription with that ID belongs to the user.
	DeactivateSubscription(ctx context.Context, id uuid.UUID, userID int64) error
}

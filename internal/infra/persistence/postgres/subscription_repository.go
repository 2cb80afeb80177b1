package postgres

import (
	"context"
	"time"

	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/repository"
	"fuelradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// CreateSubscription persists a new active subscription.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.PriceAlertSubscription) error {
	if subscription.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate subscription ID")
		}
		subscription.ID = id
	}
	subscription.IsActive = true

	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindActiveSubscription retrieves the active subscription for a (user, fuel, municipality) triple.
func (repo *subscriptionRepository) FindActiveSubscription(ctx context.Context, userID int64, fuel entity.FuelType, municipality string) (*entity.PriceAlertSubscription, error) {
	var subscriptionM model.PriceAlertModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND fuel_type = ? AND municipality = ? AND is_active = ?", userID, string(fuel), municipality, true).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.PriceAlertSubscription, error) {
	var subscriptionM model.PriceAlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindActiveSubscriptionsByUser retrieves a user's active subscriptions, newest first.
func (repo *subscriptionRepository) FindActiveSubscriptionsByUser(ctx context.Context, userID int64) ([]*entity.PriceAlertSubscription, error) {
	var subscriptionModels []*model.PriceAlertModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	return toSubscriptionDomains(subscriptionModels), nil
}

// FindActiveSubscriptions retrieves every active subscription in creation order.
func (repo *subscriptionRepository) FindActiveSubscriptions(ctx context.Context) ([]*entity.PriceAlertSubscription, error) {
	var subscriptionModels []*model.PriceAlertModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Order("id ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions")
	}

	return toSubscriptionDomains(subscriptionModels), nil
}

// UpdateThreshold replaces the threshold of an active subscription and refreshes its creation time.
func (repo *subscriptionRepository) UpdateThreshold(ctx context.Context, id uuid.UUID, threshold float64) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.PriceAlertModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"threshold":  threshold,
			"created_at": now,
			"updated_at": now,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription threshold")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeactivateSubscription logically deletes a user's active subscription.
func (repo *subscriptionRepository) DeactivateSubscription(ctx context.Context, id uuid.UUID, userID int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PriceAlertModel{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM PriceAlertModel to a domain PriceAlertSubscription entity.
func toSubscriptionDomain(data *model.PriceAlertModel) *entity.PriceAlertSubscription {
	if data == nil {
		return nil
	}

	return &entity.PriceAlertSubscription{
		ID:           data.ID,
		UserID:       data.UserID,
		Username:     data.Username,
		FuelType:     entity.FuelType(data.FuelType),
		Municipality: data.Municipality,
		Threshold:    data.Threshold,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toSubscriptionDomains(models []*model.PriceAlertModel) []*entity.PriceAlertSubscription {
	subscriptions := make([]*entity.PriceAlertSubscription, 0, len(models))
	for _, subscriptionM := range models {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions
}

// fromSubscriptionDomain converts a domain PriceAlertSubscription entity to a GORM PriceAlertModel.
func fromSubscriptionDomain(data *entity.PriceAlertSubscription) *model.PriceAlertModel {
	if data == nil {
		return nil
	}

	return &model.PriceAlertModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Username:     data.Username,
		FuelType:     string(data.FuelType),
		Municipality: data.Municipality,
		Threshold:    data.Threshold,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

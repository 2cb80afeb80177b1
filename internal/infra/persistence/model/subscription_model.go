package model

import (
	"time"

	"github.com/google/uuid"
)

// PriceAlertModel is the GORM-specific struct for the 'price_alerts' table.
// A partial unique index keeps at most one active alert per user, fuel and municipality.
type PriceAlertModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       int64     `gorm:"not null;index;uniqueIndex:idx_price_alerts_active,where:is_active = true"`
	Username     string    `gorm:"type:varchar(255)"`
	FuelType     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_price_alerts_active,where:is_active = true"`
	Municipality string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_price_alerts_active,where:is_active = true"`
	Threshold    float64   `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PriceAlertModel) TableName() string {
	return "price_alerts"
}

// FeedImportModel is the GORM-specific struct for the 'feed_imports' table.
type FeedImportModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Source       string    `gorm:"type:varchar(255);not null"`
	StationCount int       `gorm:"not null"`
	Checksum     string    `gorm:"type:varchar(64)"`
	ImportedAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (FeedImportModel) TableName() string {
	return "feed_imports"
}

// All returns every persistence model, for migrations and code generation.
func All() []any {
	return []any{
		&StationModel{},
		&PriceAlertModel{},
		&FeedImportModel{},
	}
}

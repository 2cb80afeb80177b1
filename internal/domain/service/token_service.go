package service

import (
	"time"

	"fuelradar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username,omitempty"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates an access token for a Telegram user.
	GenerateAccessToken(identity *entity.TelegramIdentity) (*entity.AccessToken, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured access token lifetime.
	GetAccessTokenDuration() time.Duration
}

// TelegramLoginVerifier checks Telegram Login Widget payloads.
type TelegramLoginVerifier interface {
	// Verify validates the payload hash and age and returns the identity it proves.
	Verify(login *entity.TelegramLogin) (*entity.TelegramIdentity, error)
}

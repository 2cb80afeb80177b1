package entity

import "time"

// TelegramLogin is the payload produced by the Telegram Login Widget.
// Hash is an HMAC over the other fields keyed by the bot token.
type TelegramLogin struct {
	ID        int64     // Telegram user ID.
	FirstName string    // Optional.
	LastName  string    // Optional.
	Username  string    // Optional.
	PhotoURL  string    // Optional.
	AuthDate  time.Time // When the user authorized the login.
	Hash      string    // Hex encoded HMAC-SHA256.
}

// TelegramIdentity is an authenticated Telegram user.
type TelegramIdentity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// AccessToken is an issued API token.
type AccessToken struct {
	Token     string    `json:"access_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

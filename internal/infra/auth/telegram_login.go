package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"fuelradar/config"
	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/service"
)

// telegramLoginVerifier checks Telegram Login Widget payloads against the bot token.
type telegramLoginVerifier struct {
	secret     []byte
	maxAuthAge time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// NewTelegramLoginVerifier creates a verifier keyed by SHA256(bot token).
func NewTelegramLoginVerifier(cfg *config.Config, logger *slog.Logger) service.TelegramLoginVerifier {
	secret := sha256.Sum256([]byte(cfg.Telegram.BotToken))

	return &telegramLoginVerifier{
		secret:     secret[:],
		maxAuthAge: cfg.Auth.MaxAuthAge,
		logger:     logger,
		now:        time.Now,
	}
}

// Verify validates the payload hash and age.
func (v *telegramLoginVerifier) Verify(login *entity.TelegramLogin) (*entity.TelegramIdentity, error) {
	if login == nil || login.ID == 0 || login.Hash == "" {
		return nil, domainerrors.ErrInvalidTelegramLogin.WithDetails("missing id or hash")
	}

	expected, err := hex.DecodeString(login.Hash)
	if err != nil {
		return nil, domainerrors.ErrInvalidTelegramLogin.WithDetails("hash is not hex encoded")
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(dataCheckString(login)))
	if !hmac.Equal(mac.Sum(nil), expected) {
		v.logger.Warn("Rejected Telegram login with invalid hash", slog.Int64("user_id", login.ID))

		return nil, domainerrors.ErrInvalidTelegramLogin.WithDetails("hash mismatch")
	}

	if v.maxAuthAge > 0 && v.now().Sub(login.AuthDate) > v.maxAuthAge {
		return nil, domainerrors.ErrTelegramLoginExpired
	}

	return &entity.TelegramIdentity{UserID: login.ID, Username: login.Username}, nil
}

// dataCheckString builds the sorted key=value lines the widget hash is computed over.
func dataCheckString(login *entity.TelegramLogin) string {
	fields := map[string]string{
		"id":        strconv.FormatInt(login.ID, 10),
		"auth_date": strconv.FormatInt(login.AuthDate.Unix(), 10),
	}
	optional := map[string]string{
		"first_name": login.FirstName,
		"last_name":  login.LastName,
		"username":   login.Username,
		"photo_url":  login.PhotoURL,
	}
	for key, value := range optional {
		if value != "" {
			fields[key] = value
		}
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+fields[key])
	}

	return strings.Join(lines, "\n")
}

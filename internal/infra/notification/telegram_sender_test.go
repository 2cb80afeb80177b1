package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fuelradar/config"
	"fuelradar/internal/domain/entity"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)

	return tgbotapi.Message{}, f.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestNotification() *entity.PriceAlertNotification {
	return &entity.PriceAlertNotification{
		UserID:         987654,
		FuelType:       entity.FuelGasoleoA,
		Municipality:   "Adeje",
		Threshold:      1.5,
		CurrentPrice:   1.449,
		StationName:    "DISA_ADEJE",
		StationAddress: "Calle Grande, 1",
	}
}

func TestFormatPriceAlert(t *testing.T) {
	text := FormatPriceAlert(newTestNotification())

	assert.Contains(t, text, "*Gasóleo A:* 1.449€")
	assert.Contains(t, text, "≤ 1.500€")
	assert.Contains(t, text, "*Ubicación:* Adeje")
	assert.Contains(t, text, `DISA\_ADEJE`)
	assert.Contains(t, text, "Calle Grande, 1")
}

func TestFormatPriceAlert_WithoutAddress(t *testing.T) {
	n := newTestNotification()
	n.StationAddress = ""

	text := FormatPriceAlert(n)
	assert.NotContains(t, text, "Calle")
}

func TestTelegramSender_SendPriceAlert(t *testing.T) {
	bot := &fakeBot{}
	sender := &telegramSender{bot: bot, logger: newDiscardLogger()}

	require.NoError(t, sender.SendPriceAlert(context.Background(), newTestNotification()))
	require.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(987654), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
}

func TestTelegramSender_SendError(t *testing.T) {
	bot := &fakeBot{err: errors.New("Forbidden: bot was blocked by the user")}
	sender := &telegramSender{bot: bot, logger: newDiscardLogger()}

	err := sender.SendPriceAlert(context.Background(), newTestNotification())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat 987654")
}

func TestNewTelegramSender_DryRun(t *testing.T) {
	cfg := &config.Config{Telegram: &config.TelegramConfig{DryRun: true}}

	sender, err := NewTelegramSender(cfg, newDiscardLogger())
	require.NoError(t, err)
	assert.NoError(t, sender.SendPriceAlert(context.Background(), newTestNotification()))
}

func TestNewTelegramSender_RequiresToken(t *testing.T) {
	cfg := &config.Config{Telegram: &config.TelegramConfig{}}

	_, err := NewTelegramSender(cfg, newDiscardLogger())
	assert.Error(t, err)
}

func TestIsPermanentSendError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "blocked bot", err: &tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}, want: true},
		{name: "chat not found", err: errors.Wrap(&tgbotapi.Error{Code: 400, Message: "Bad Request: chat not found"}, "send"), want: true},
		{name: "rate limited", err: &tgbotapi.Error{Code: 429, Message: "Too Many Requests"}},
		{name: "network failure", err: errors.New("dial tcp: i/o timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPermanentSendError(tt.err))
		})
	}
}

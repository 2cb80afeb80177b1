package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fuelradar/config"
	deliverycontext "fuelradar/internal/delivery/context"
	"fuelradar/internal/domain/entity"
	"fuelradar/internal/domain/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

// chattableSender is the part of tgbotapi.BotAPI used to deliver messages.
type chattableSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// telegramSender delivers price alerts as Telegram chat messages.
type telegramSender struct {
	bot    chattableSender
	dryRun bool
	logger *slog.Logger
}

// NewTelegramSender creates a NotificationSender backed by the Telegram Bot API.
// In dry-run mode no connection is made and messages are only logged.
func NewTelegramSender(cfg *config.Config, logger *slog.Logger) (service.NotificationSender, error) {
	if cfg.Telegram.DryRun {
		logger.Info("Telegram sender running in dry-run mode")

		return &telegramSender{dryRun: true, logger: logger}, nil
	}

	if cfg.Telegram.BotToken == "" {
		return nil, errors.New("telegram bot token is required")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to Telegram")
	}
	bot.Debug = cfg.Env.Debug

	logger.Info("Telegram bot authorized", slog.String("username", bot.Self.UserName))

	return &telegramSender{bot: bot, logger: logger}, nil
}

// SendPriceAlert sends a Markdown message to the chat of the subscribed user.
func (s *telegramSender) SendPriceAlert(ctx context.Context, notification *entity.PriceAlertNotification) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	text := FormatPriceAlert(notification)

	if s.dryRun {
		logger.Info("[DryRun] Price alert message",
			slog.Int64("chat_id", notification.UserID),
			slog.String("text", text),
		)

		return nil
	}

	msg := tgbotapi.NewMessage(notification.UserID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true

	if _, err := s.bot.Send(msg); err != nil {
		return errors.Wrapf(err, "failed to send alert to chat %d", notification.UserID)
	}

	return nil
}

// FormatPriceAlert renders the alert message body.
func FormatPriceAlert(n *entity.PriceAlertNotification) string {
	escape := func(s string) string {
		return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
	}

	var b strings.Builder
	b.WriteString("🚨 *¡ALERTA DE PRECIO!*\n\n")
	fmt.Fprintf(&b, "⛽ *%s:* %.3f€\n", escape(n.FuelType.DisplayName()), n.CurrentPrice)
	fmt.Fprintf(&b, "💰 *Tu límite:* ≤ %.3f€\n", n.Threshold)
	fmt.Fprintf(&b, "📍 *Ubicación:* %s\n\n", escape(n.Municipality))
	fmt.Fprintf(&b, "🏪 *Estación:* %s\n", escape(n.StationName))
	if n.StationAddress != "" {
		fmt.Fprintf(&b, "📍 %s\n", escape(n.StationAddress))
	}
	b.WriteString("\n💡 ¡Precio por debajo de tu alerta!")

	return b.String()
}

// IsPermanentSendError reports whether Telegram rejected a message in a way retrying
// cannot fix, such as a blocked bot or an unknown chat.
func IsPermanentSendError(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.Code == http.StatusBadRequest || apiErr.Code == http.StatusForbidden
}

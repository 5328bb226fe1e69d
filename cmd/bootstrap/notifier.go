package bootstrap

import (
	"log/slog"

	"storefront-api/internal/infra/telegram"
	"storefront-api/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
	fx.Invoke(ReportNotifierSettings),
)

func NewNotifier(cfg config.Config, logger *slog.Logger) *telegram.Client {
	return telegram.NewClient(cfg.Telegram, logger)
}

// ReportNotifierSettings logs which Telegram settings are present, never their values.
func ReportNotifierSettings(client *telegram.Client, logger *slog.Logger) {
	logger.Info("telegram settings",
		"bot_token", configured(client.HasBotToken()),
		"chat_id", configured(client.HasChatID()),
	)

	if !client.HasBotToken() {
		logger.Warn("TELEGRAM_BOT_TOKEN is not set, notifications are disabled",
			"hint", "create a bot with @BotFather and export its token as TELEGRAM_BOT_TOKEN")
	}
	if !client.HasChatID() {
		logger.Warn("TELEGRAM_CHAT_ID is not set, notifications are disabled",
			"hint", "send a message to the bot, read chat.id from https://api.telegram.org/bot<TOKEN>/getUpdates and export it as TELEGRAM_CHAT_ID")
	}
}

func configured(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

package response

import (
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
)

// isoMillis is ISO 8601 in UTC with millisecond precision.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Setting flags are shown to the shop operator as is.
const (
	SettingConfigured    = "Sozlangan"
	SettingNotConfigured = "Sozlanmagan"
)

type TelegramSettingsResponse struct {
	BotToken string `json:"botToken"`
	ChatID   string `json:"chatId"`
}

type HealthResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Uptime    float64                  `json:"uptime"`
	Telegram  TelegramSettingsResponse `json:"telegram"`
	Database  string                   `json:"database"`
}

type SelfTestResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	BotToken string `json:"botToken"`
	ChatID   string `json:"chatId"`
}

// ErrorResponse is the body of every 4xx and 5xx answer.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func FromHealthView(v *queries.HealthView) *HealthResponse {
	return &HealthResponse{
		Status:    v.Status,
		Timestamp: v.Timestamp.UTC().Format(isoMillis),
		Uptime:    v.Uptime.Seconds(),
		Telegram: TelegramSettingsResponse{
			BotToken: setting(v.BotTokenConfigured),
			ChatID:   setting(v.ChatIDConfigured),
		},
		Database: setting(v.DatabaseEnabled),
	}
}

func FromSelfTestResult(r *commands.SelfTestResult, message string) *SelfTestResponse {
	return &SelfTestResponse{
		Success:  r.Delivered,
		Message:  message,
		BotToken: setting(r.BotTokenSet),
		ChatID:   setting(r.ChatIDSet),
	}
}

func setting(ok bool) string {
	if ok {
		return SettingConfigured
	}
	return SettingNotConfigured
}

// Package telegram delivers operator notifications through the Telegram Bot API.
// The client is a soft dependency: without a bot token and chat id every send is a no-op.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-api/internal/pkg/config"

	"github.com/tidwall/gjson"
)

const (
	DefaultAPIBase = "https://api.telegram.org"
	DefaultTimeout = 10 * time.Second

	parseModeHTML   = "HTML"
	maxPayloadBytes = 1 << 20
)

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type Client struct {
	botToken   string
	chatID     string
	apiBase    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.TelegramConfig, logger *slog.Logger) *Client {
	apiBase := strings.TrimRight(cfg.APIBase, "/")
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
		apiBase:    apiBase,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) HasBotToken() bool { return c.botToken != "" }
func (c *Client) HasChatID() bool   { return c.chatID != "" }

func (c *Client) Enabled() bool {
	return c.HasBotToken() && c.HasChatID()
}

// Send reports whether the provider confirmed delivery. Failures are logged, never returned.
func (c *Client) Send(ctx context.Context, text string) bool {
	err := c.Deliver(ctx, text)
	if err == nil {
		c.logger.Info("telegram notification delivered", "chat_id", c.chatID)
		return true
	}

	var de *DeliveryError
	if !errors.As(err, &de) {
		c.logger.Error("telegram delivery failed", "error", err.Error())
		return false
	}

	switch de.Kind {
	case KindNotConfigured:
		c.logger.Warn("telegram is not configured, notification skipped",
			"bot_token_set", c.HasBotToken(),
			"chat_id_set", c.HasChatID(),
			"hint", "set TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
	case KindRejected:
		c.logger.Error("telegram API rejected the message",
			"status_code", de.StatusCode,
			"payload", de.Payload)
	case KindUnreachable:
		c.logger.Error("could not reach the telegram API, check network connectivity",
			"error", de.Error())
	default:
		c.logger.Error("telegram delivery failed", "error", de.Error())
	}
	return false
}

// Deliver performs a single sendMessage call without retries and classifies the outcome.
func (c *Client) Deliver(ctx context.Context, text string) error {
	if !c.Enabled() {
		return &DeliveryError{Kind: KindNotConfigured, msg: "bot token or chat id missing"}
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: parseModeHTML,
	})
	if err != nil {
		return &DeliveryError{Kind: KindUnexpected, msg: "encode request", err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Kind: KindUnexpected, msg: "build request", err: redactURL(err)}
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending telegram notification", "chat_id", c.chatID, "length", len(text))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &DeliveryError{Kind: KindUnreachable, msg: "no response from telegram", err: redactURL(err)}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return &DeliveryError{Kind: KindUnexpected, msg: "read response", err: err}
	}

	if resp.StatusCode == http.StatusOK && gjson.ValidBytes(payload) && gjson.GetBytes(payload, "ok").Bool() {
		return nil
	}

	return &DeliveryError{
		Kind:       KindRejected,
		msg:        rejectionReason(payload),
		StatusCode: resp.StatusCode,
		Payload:    string(payload),
	}
}

func (c *Client) endpoint(method string) string {
	return c.apiBase + "/bot" + c.botToken + "/" + method
}

func rejectionReason(payload []byte) string {
	if !gjson.ValidBytes(payload) {
		return "non-JSON response"
	}
	if desc := gjson.GetBytes(payload, "description"); desc.Exists() {
		return desc.String()
	}
	return "provider did not acknowledge the message"
}

// redactURL drops the request URL from transport errors; it embeds the bot token.
func redactURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

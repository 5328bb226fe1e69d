package queries

import (
	"context"
	"time"

	"storefront-api/internal/pkg/clock"
)

const StatusOK = "OK"

// TelegramSettings reports which notifier settings are present, never their values.
type TelegramSettings interface {
	HasBotToken() bool
	HasChatID() bool
}

type StoreStatus interface {
	Enabled() bool
}

type HealthView struct {
	Status             string
	Timestamp          time.Time
	Uptime             time.Duration
	BotTokenConfigured bool
	ChatIDConfigured   bool
	DatabaseEnabled    bool
}

type HealthQueries interface {
	Health(ctx context.Context) (*HealthView, error)
}

type healthQueriesImpl struct {
	telegram  TelegramSettings
	store     StoreStatus
	clock     clock.Clock
	startedAt time.Time
}

// NewHealthQueries starts the uptime clock.
func NewHealthQueries(telegram TelegramSettings, store StoreStatus, clk clock.Clock) HealthQueries {
	return &healthQueriesImpl{
		telegram:  telegram,
		store:     store,
		clock:     clk,
		startedAt: clk.Now(),
	}
}

func (q *healthQueriesImpl) Health(_ context.Context) (*HealthView, error) {
	return &HealthView{
		Status:             StatusOK,
		Timestamp:          q.clock.Now().UTC(),
		Uptime:             q.clock.Since(q.startedAt),
		BotTokenConfigured: q.telegram.HasBotToken(),
		ChatIDConfigured:   q.telegram.HasChatID(),
		DatabaseEnabled:    q.store.Enabled(),
	}, nil
}

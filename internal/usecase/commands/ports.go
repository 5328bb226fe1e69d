package commands

import (
	"context"
	"time"

	"storefront-api/internal/domain/contact"
	"storefront-api/internal/domain/order"
	"storefront-api/internal/usecase/readmodel"
)

// Sinks are optional collaborators. A disabled or failing sink never fails a submission;
// stores report "not persisted" as a nil record.

type ContactStore interface {
	Enabled() bool
	InsertContact(ctx context.Context, msg *contact.Message, submittedAt string) (*readmodel.ContactRM, error)
}

type OrderStore interface {
	Enabled() bool
	InsertOrder(ctx context.Context, o *order.Order, message, submittedAt string) (*readmodel.OrderRM, error)
}

type Notifier interface {
	Enabled() bool
	HasBotToken() bool
	HasChatID() bool
	Send(ctx context.Context, text string) bool
}

// Timestamper renders the submission time shown to operators and stored with each record.
type Timestamper interface {
	Format(t time.Time) string
}

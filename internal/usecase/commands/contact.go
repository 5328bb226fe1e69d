package commands

import (
	"context"
	"log/slog"

	"storefront-api/internal/domain/contact"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/metrics"
	"storefront-api/internal/usecase/message"
)

type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type SubmitContactResult struct {
	ContactID   *int64
	SubmittedAt string
	Persisted   bool
	Notified    bool
}

type ContactCommands interface {
	SubmitContact(ctx context.Context, in SubmitContactInput) (*SubmitContactResult, error)
}

type contactUseCaseImpl struct {
	store    ContactStore
	notifier Notifier
	clock    clock.Clock
	stamp    Timestamper
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

func NewContactUseCase(store ContactStore, notifier Notifier, clk clock.Clock, stamp Timestamper, rec *metrics.Recorder, logger *slog.Logger) ContactCommands {
	return &contactUseCaseImpl{
		store:    store,
		notifier: notifier,
		clock:    clk,
		stamp:    stamp,
		metrics:  rec,
		logger:   logger,
	}
}

// SubmitContact validates, persists (best-effort), then notifies (best-effort). Only a
// validation failure is returned as an error.
func (uc *contactUseCaseImpl) SubmitContact(ctx context.Context, in SubmitContactInput) (*SubmitContactResult, error) {
	msg, err := contact.NewMessage(in.Name, in.Email, in.Subject, in.Message)
	if err != nil {
		uc.metrics.Submission(metrics.KindContact, metrics.OutcomeRejected)
		return nil, err
	}

	// sinks run to completion even if the client goes away
	ctx = context.WithoutCancel(ctx)
	submittedAt := uc.stamp.Format(uc.clock.Now())

	var report sinkReport
	var contactID *int64

	// the store logs its own failures; a nil record means "not persisted"
	stored, _ := uc.store.InsertContact(ctx, msg, submittedAt)
	if stored != nil {
		contactID = &stored.ID
		report.persisted = true
	}
	recordStore(uc.metrics, uc.store.Enabled(), report.persisted)

	report.notified = uc.notifier.Send(ctx, message.ContactNotice(msg, submittedAt, contactID))
	recordNotify(uc.metrics, uc.notifier.Enabled(), report.notified)

	uc.metrics.Submission(metrics.KindContact, metrics.OutcomeAccepted)
	uc.logger.Info("contact message accepted",
		"contact_id", message.FormatID(contactID),
		"name", msg.Name(),
		"email", msg.Email(),
		"subject", msg.Subject(),
		"saved_to", report.savedTo())

	return &SubmitContactResult{
		ContactID:   contactID,
		SubmittedAt: submittedAt,
		Persisted:   report.persisted,
		Notified:    report.notified,
	}, nil
}

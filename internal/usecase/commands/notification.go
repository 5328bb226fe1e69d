package commands

import (
	"context"
	"log/slog"

	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/metrics"
	"storefront-api/internal/usecase/message"
)

type SelfTestResult struct {
	Delivered   bool
	BotTokenSet bool
	ChatIDSet   bool
}

type NotificationCommands interface {
	SendTestMessage(ctx context.Context) (*SelfTestResult, error)
}

type notificationUseCaseImpl struct {
	notifier Notifier
	clock    clock.Clock
	stamp    Timestamper
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

func NewNotificationUseCase(notifier Notifier, clk clock.Clock, stamp Timestamper, rec *metrics.Recorder, logger *slog.Logger) NotificationCommands {
	return &notificationUseCaseImpl{
		notifier: notifier,
		clock:    clk,
		stamp:    stamp,
		metrics:  rec,
		logger:   logger,
	}
}

// SendTestMessage pushes a fixed message through the notifier so operators can check the
// bot settings end to end.
func (uc *notificationUseCaseImpl) SendTestMessage(ctx context.Context) (*SelfTestResult, error) {
	ctx = context.WithoutCancel(ctx)

	delivered := uc.notifier.Send(ctx, message.SelfTest(uc.stamp.Format(uc.clock.Now())))
	recordNotify(uc.metrics, uc.notifier.Enabled(), delivered)
	uc.metrics.Submission(metrics.KindSelfTest, metrics.OutcomeAccepted)

	uc.logger.Info("telegram self-test finished", "delivered", delivered)

	return &SelfTestResult{
		Delivered:   delivered,
		BotTokenSet: uc.notifier.HasBotToken(),
		ChatIDSet:   uc.notifier.HasChatID(),
	}, nil
}

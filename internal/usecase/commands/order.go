package commands

import (
	"context"
	"log/slog"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/metrics"
	"storefront-api/internal/usecase/message"
)

type OrderItemInput struct {
	Name     string
	Quantity float64
	Price    float64
}

type CustomerInfoInput struct {
	Name    string
	Phone   string
	Address string
}

type SubmitOrderInput struct {
	Items        []OrderItemInput
	Total        *float64
	CustomerInfo *CustomerInfoInput
}

type SubmitOrderResult struct {
	OrderID     *int64
	Summary     string
	SubmittedAt string
	Persisted   bool
	Notified    bool
}

type OrderCommands interface {
	SubmitOrder(ctx context.Context, in SubmitOrderInput) (*SubmitOrderResult, error)
}

type orderUseCaseImpl struct {
	store    OrderStore
	notifier Notifier
	clock    clock.Clock
	stamp    Timestamper
	currency string
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

func NewOrderUseCase(store OrderStore, notifier Notifier, clk clock.Clock, stamp Timestamper, currency string, rec *metrics.Recorder, logger *slog.Logger) OrderCommands {
	return &orderUseCaseImpl{
		store:    store,
		notifier: notifier,
		clock:    clk,
		stamp:    stamp,
		currency: currency,
		metrics:  rec,
		logger:   logger,
	}
}

// SubmitOrder keeps the caller's total as submitted. The same summary text is stored with the
// order, sent to the operator chat and returned to the caller.
func (uc *orderUseCaseImpl) SubmitOrder(ctx context.Context, in SubmitOrderInput) (*SubmitOrderResult, error) {
	o, err := buildOrder(in)
	if err != nil {
		uc.metrics.Submission(metrics.KindOrder, metrics.OutcomeRejected)
		return nil, err
	}
	if !o.TotalMatchesItems() {
		uc.logger.Warn("order total differs from the sum of its lines, keeping the submitted total",
			"total", o.Total(),
			"items_total", o.ItemsTotal())
	}

	ctx = context.WithoutCancel(ctx)
	submittedAt := uc.stamp.Format(uc.clock.Now())
	summary := message.OrderSummary(o, submittedAt, uc.currency)

	var report sinkReport
	var orderID *int64

	// the store logs its own failures; a nil record means "not persisted"
	stored, _ := uc.store.InsertOrder(ctx, o, summary, submittedAt)
	if stored != nil {
		orderID = &stored.ID
		report.persisted = true
	}
	recordStore(uc.metrics, uc.store.Enabled(), report.persisted)

	report.notified = uc.notifier.Send(ctx, summary)
	recordNotify(uc.metrics, uc.notifier.Enabled(), report.notified)

	uc.metrics.Submission(metrics.KindOrder, metrics.OutcomeAccepted)
	uc.logger.Info("order accepted",
		"order_id", message.FormatID(orderID),
		"total", o.Total(),
		"items_count", o.ItemCount(),
		"saved_to", report.savedTo())

	return &SubmitOrderResult{
		OrderID:     orderID,
		Summary:     summary,
		SubmittedAt: submittedAt,
		Persisted:   report.persisted,
		Notified:    report.notified,
	}, nil
}

// buildOrder checks items before the total so an empty cart is always reported as such.
func buildOrder(in SubmitOrderInput) (*order.Order, error) {
	if len(in.Items) == 0 {
		return nil, order.ErrEmptyItems
	}

	items := make([]order.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		li, err := order.NewLineItem(it.Name, it.Quantity, it.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}

	if in.Total == nil {
		return nil, order.ErrTotalRequired
	}

	var customer order.Customer
	if in.CustomerInfo != nil {
		customer = order.NewCustomer(in.CustomerInfo.Name, in.CustomerInfo.Phone, in.CustomerInfo.Address)
	}

	return order.NewOrder(items, *in.Total, customer)
}

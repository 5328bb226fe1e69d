//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/pkg/metrics"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/readmodel"
	"storefront-api/tests/common/builder"
	"storefront-api/tests/common/testutil"
	commandsmock "storefront-api/tests/mock/commands"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubmitOrder(t *testing.T) {
	type fixture struct {
		store    *commandsmock.MockOrderStore
		notifier *commandsmock.MockNotifier
		rec      *metrics.Recorder
		uc       commands.OrderCommands
	}
	setup := func(t *testing.T) fixture {
		ctrl := gomock.NewController(t)
		f := fixture{
			store:    commandsmock.NewMockOrderStore(ctrl),
			notifier: commandsmock.NewMockNotifier(ctrl),
			rec:      metrics.NewRecorder(),
		}
		f.store.EXPECT().Enabled().Return(true).AnyTimes()
		f.notifier.EXPECT().Enabled().Return(true).AnyTimes()
		f.uc = commands.NewOrderUseCase(f.store, f.notifier, clock.NewMockClock(fixedNow), newStamp(), "so'm", f.rec, testutil.DiscardLogger())
		return f
	}

	t.Run("stores and sends the same summary", func(t *testing.T) {
		f := setup(t)
		var stored, sent string

		f.store.EXPECT().InsertOrder(gomock.Any(), gomock.Any(), gomock.Any(), wantStamp).
			DoAndReturn(func(_ context.Context, o *order.Order, msg, _ string) (*readmodel.OrderRM, error) {
				assert.Equal(t, order.StatusPending, o.Status())
				assert.Equal(t, 100000.0, o.Total())
				stored = msg
				return &readmodel.OrderRM{ID: 12}, nil
			})
		f.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, text string) bool {
				sent = text
				return true
			})

		res, err := f.uc.SubmitOrder(context.Background(), builder.NewOrderBuilder().BuildInput())

		require.NoError(t, err)
		require.NotNil(t, res.OrderID)
		assert.Equal(t, int64(12), *res.OrderID)
		assert.Equal(t, res.Summary, stored)
		assert.Equal(t, res.Summary, sent)
		assert.Contains(t, res.Summary, "Almond")
		assert.Contains(t, res.Summary, "Miqdor: 2")
		assert.Contains(t, res.Summary, "100 000")
		assert.True(t, res.Persisted)
		assert.True(t, res.Notified)
	})

	t.Run("total is taken as submitted", func(t *testing.T) {
		f := setup(t)

		f.store.EXPECT().InsertOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *order.Order, _, _ string) (*readmodel.OrderRM, error) {
				assert.Equal(t, 1.0, o.Total())
				return nil, nil
			})
		f.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true)

		res, err := f.uc.SubmitOrder(context.Background(), builder.NewOrderBuilder().WithTotal(1).BuildInput())

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(res.Summary, "<b>Umumiy summa: 1 so'm</b>"))
	})

	t.Run("customer block only when customer info was sent", func(t *testing.T) {
		f := setup(t)
		f.store.EXPECT().InsertOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true)

		in := builder.NewOrderBuilder().WithCustomer("", "+998901234567", "").BuildInput()
		res, err := f.uc.SubmitOrder(context.Background(), in)

		require.NoError(t, err)
		assert.Contains(t, res.Summary, "Telefon: +998901234567")
		assert.NotContains(t, res.Summary, "Ism:")
		assert.NotContains(t, res.Summary, "Manzil:")
	})

	t.Run("sink failures never fail the order", func(t *testing.T) {
		f := setup(t)
		f.store.EXPECT().InsertOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.RepositoryError{Kind: infra.KindInvalidData})
		f.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(false)

		res, err := f.uc.SubmitOrder(context.Background(), builder.NewOrderBuilder().BuildInput())

		require.NoError(t, err)
		assert.Nil(t, res.OrderID)
		assert.False(t, res.Persisted)
		assert.False(t, res.Notified)
		assert.NotEmpty(t, res.Summary)

		expected := `
# HELP storefront_sink_results_total Persistence and notification attempts, by sink and result.
# TYPE storefront_sink_results_total counter
storefront_sink_results_total{result="failed",sink="database"} 1
storefront_sink_results_total{result="failed",sink="telegram"} 1
`
		assert.NoError(t, promtestutil.GatherAndCompare(f.rec.Registry(), strings.NewReader(expected), "storefront_sink_results_total"))
	})

	t.Run("invalid orders are rejected before any sink", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.OrderBuilder)
			errIs  error
		}{
			{"no items", func(b *builder.OrderBuilder) { b.Items = nil }, order.ErrEmptyItems},
			{"empty items", func(b *builder.OrderBuilder) { b.Items = []builder.OrderItem{} }, order.ErrEmptyItems},
			{"empty items without total", func(b *builder.OrderBuilder) { b.Items = nil; b.Total = nil }, order.ErrEmptyItems},
			{"missing total", func(b *builder.OrderBuilder) { b.Total = nil }, order.ErrTotalRequired},
			{"negative total", func(b *builder.OrderBuilder) { b.WithTotal(-1) }, order.ErrNegativeTotal},
			{"item without name", func(b *builder.OrderBuilder) { b.Items[0].Name = " " }, order.ErrItemNameRequired},
			{"zero quantity", func(b *builder.OrderBuilder) { b.Items[0].Quantity = 0 }, order.ErrInvalidQuantity},
			{"negative price", func(b *builder.OrderBuilder) { b.Items[0].Price = -5 }, order.ErrNegativePrice},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := setup(t)

				res, err := f.uc.SubmitOrder(context.Background(), builder.NewOrderBuilder().With(tc.mutate).BuildInput())

				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, res)
				assert.True(t, errs.IsValidation(err))
			})
		}

		expected := `
# HELP storefront_submissions_total Submissions received, by kind and outcome.
# TYPE storefront_submissions_total counter
storefront_submissions_total{kind="order",outcome="rejected"} 1
`
		f := setup(t)
		_, _ = f.uc.SubmitOrder(context.Background(), commands.SubmitOrderInput{})
		assert.NoError(t, promtestutil.GatherAndCompare(f.rec.Registry(), strings.NewReader(expected), "storefront_submissions_total"))
	})
}

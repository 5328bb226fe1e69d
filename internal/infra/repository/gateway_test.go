//go:build unit

package repository_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/infra/repository"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"
	"storefront-api/tests/common/builder"
	"storefront-api/tests/common/testutil"
	repositorymock "storefront-api/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// rowFunc adapts a function to pgx.Row.
type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

// scanValues copies values into the scan destinations in order.
func scanValues(values ...any) rowFunc {
	return func(dest ...any) error {
		if len(dest) != len(values) {
			return errors.New("scan arity mismatch")
		}
		for i, v := range values {
			reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
		}
		return nil
	}
}

func scanError(err error) rowFunc {
	return func(...any) error { return err }
}

func TestGatewayDisabled(t *testing.T) {
	g := repository.NewGateway(config.DBConfig{}, testutil.DiscardLogger())

	assert.False(t, g.Connect(context.Background()))
	assert.False(t, g.Enabled())

	msg, err := builder.NewContactBuilder().BuildDomain()
	require.NoError(t, err)
	contactRM, err := g.InsertContact(context.Background(), msg, "now")
	assert.NoError(t, err)
	assert.Nil(t, contactRM)

	o, err := builder.NewOrderBuilder().BuildDomain()
	require.NoError(t, err)
	orderRM, err := g.InsertOrder(context.Background(), o, "summary", "now")
	assert.NoError(t, err)
	assert.Nil(t, orderRM)

	g.Close()
}

func TestGatewayConnectInvalidURL(t *testing.T) {
	g := repository.NewGateway(config.DBConfig{URL: "postgres://%zz"}, testutil.DiscardLogger())

	assert.False(t, g.Connect(context.Background()))
	assert.False(t, g.Enabled())
}

func TestGatewayConnectSchema(t *testing.T) {
	t.Run("creates both tables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := repositorymock.NewMockDBTX(ctrl)
		g := repository.NewGatewayWithDB(mockDB, testutil.DiscardLogger())

		gomock.InOrder(
			mockDB.EXPECT().Exec(gomock.Any(), db.Schema[0]).Return(pgconn.NewCommandTag("CREATE TABLE"), nil),
			mockDB.EXPECT().Exec(gomock.Any(), db.Schema[1]).Return(pgconn.NewCommandTag("CREATE TABLE"), nil),
		)

		assert.True(t, g.Connect(context.Background()))
		assert.True(t, g.Enabled())
	})

	t.Run("schema failure keeps the handle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := repositorymock.NewMockDBTX(ctrl)
		g := repository.NewGatewayWithDB(mockDB, testutil.DiscardLogger())

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any()).Return(pgconn.CommandTag{}, errors.New("permission denied"))

		assert.False(t, g.Connect(context.Background()))
		assert.True(t, g.Enabled())
	})
}

func TestInsertContact(t *testing.T) {
	b := builder.NewContactBuilder()
	msg, err := b.BuildDomain()
	require.NoError(t, err)
	row := b.BuildRow()

	t.Run("returns the stored row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := repositorymock.NewMockDBTX(ctrl)
		g := repository.NewGatewayWithDB(mockDB, testutil.DiscardLogger())

		mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), b.Name, b.Email, b.Subject, b.Message, b.Date).
			Return(scanValues(row.ID, row.Name, row.Email, row.Subject, row.Message, row.Date, row.CreatedAt))

		got, err := g.InsertContact(context.Background(), msg, b.Date)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, row.ID, got.ID)
		assert.Equal(t, b.Subject, got.Subject)
		require.NotNil(t, got.Date)
		assert.Equal(t, b.Date, *got.Date)
		assert.NotNil(t, got.CreatedAt)
	})

	t.Run("failure is classified and returns no record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := repositorymock.NewMockDBTX(ctrl)
		g := repository.NewGatewayWithDB(mockDB, testutil.DiscardLogger())

		mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(scanError(&pgconn.PgError{Code: "22001", Message: "value too long"}))

		got, err := g.InsertContact(context.Background(), msg, b.Date)

		assert.Nil(t, got)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindInvalidData))
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestInsertFailureIsLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctrl := gomock.NewController(t)
	mockDB := repositorymock.NewMockDBTX(ctrl)
	g := repository.NewGatewayWithDB(mockDB, logger)

	mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(scanError(&pgconn.PgError{Code: "22001", Message: "value too long for type character varying(255)"}))

	msg, err := builder.NewContactBuilder().BuildDomain()
	require.NoError(t, err)
	_, err = g.InsertContact(context.Background(), msg, "now")
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, string(infra.KindInvalidData), record["kind"])
	assert.Equal(t, "22001", record["pg_code"])
}

func TestInsertOrder(t *testing.T) {
	const summary = "🛒 <b>Yangi Buyurtma</b>"

	t.Run("stores items, customer info and pending status", func(t *testing.T) {
		b := builder.NewOrderBuilder().WithCustomer("Dilnoza", "+998901234567", "")
		o, err := b.BuildDomain()
		require.NoError(t, err)
		row, err := b.BuildRow(summary)
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		mockDB := repositorymock.NewMockDBTX(ctrl)
		g := repository.NewGatewayWithDB(mockDB, testutil.DiscardLogger())

		mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 6)
				assert.JSONEq(t, `[{"name":"Almond","quantity":2,"price":50000}]`, string(args[0].([]byte)))
				assert.Equal(t, 100000.0, args[1])
				assert.JSONEq(t, `{"name":"Dilnoza","phone":"+998901234567"}`, string(args[2].([]byte)))
				assert.Equal(t, summary, args[3])
				assert.Equal(t, "pending", args[4])
				assert.Equal(t, b.Date, args[5])
				return scanValues(row.ID, row.Items, row.Total, row.CustomerInfo, row.OrderMessage, row.Status, row.Date, row.CreatedAt)
			})

		got, err := g.InsertOrder(context.Background(), o, summary, b.Date)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, row.ID, got.ID)
		assert.Equal(t, 100000.0, got.Total)
		assert.Equal(t, "pending", got.Status)
		assert.Equal(t, "Dilnoza", got.CustomerInfo.Name)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Almond", got.Items[0].Name)
	})

	t.Run("absent customer info is stored as an empty object", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		o, err := b.BuildDomain()
		require.NoError(t, err)
		row, err := b.BuildRow(summary)
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		mockDB := repositorymock.NewMockDBTX(ctrl)
		g := repository.NewGatewayWithDB(mockDB, testutil.DiscardLogger())

		mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, args ...any) pgx.Row {
				var customer map[string]any
				require.NoError(t, json.Unmarshal(args[2].([]byte), &customer))
				assert.Empty(t, customer)
				return scanValues(row.ID, row.Items, row.Total, row.CustomerInfo, row.OrderMessage, row.Status, row.Date, row.CreatedAt)
			})

		got, err := g.InsertOrder(context.Background(), o, summary, b.Date)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("failure returns no record", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		mockDB := repositorymock.NewMockDBTX(ctrl)
		g := repository.NewGatewayWithDB(mockDB, testutil.DiscardLogger())

		mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(scanError(errors.New("connection reset by peer")))

		got, err := g.InsertOrder(context.Background(), o, summary, "now")

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const truncateSQL = "TRUNCATE contacts, orders RESTART IDENTITY;"

// StoredOrder is an orders row read back for assertions.
type StoredOrder struct {
	ID           int64
	Items        []map[string]any
	Total        float64
	CustomerInfo map[string]any
	OrderMessage string
	Status       string
	Date         string
}

type StoredContact struct {
	ID      int64
	Name    string
	Email   string
	Subject string
	Message string
	Date    string
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	// table names come from test code only
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func GetContact(t *testing.T, db DBLike, id int64) StoredContact {
	t.Helper()

	var c StoredContact
	err := db.QueryRow(context.Background(),
		"SELECT id, name, email, subject, message, date FROM contacts WHERE id = $1", id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Date)
	require.NoError(t, err)
	return c
}

func GetOrder(t *testing.T, db DBLike, id int64) StoredOrder {
	t.Helper()

	var (
		o                     StoredOrder
		itemsRaw, customerRaw []byte
	)
	err := db.QueryRow(context.Background(),
		"SELECT id, items, total::float8, customer_info, order_message, status, date FROM orders WHERE id = $1", id,
	).Scan(&o.ID, &itemsRaw, &o.Total, &customerRaw, &o.OrderMessage, &o.Status, &o.Date)
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal(itemsRaw, &o.Items))
	require.NoError(t, json.Unmarshal(customerRaw, &o.CustomerInfo))
	return o
}

// ResetDB empties both submission tables and restarts their id sequences.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, truncateSQL)
	return err
}

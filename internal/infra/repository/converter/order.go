package converter

import (
	"encoding/json"
	"fmt"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/pkg/ptr"
	"storefront-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
)

type InsertOrderParams struct {
	Items        []byte
	Total        float64
	CustomerInfo []byte
	OrderMessage string
	Status       string
	Date         string
}

// OrderRow mirrors the RETURNING list of the orders insert.
type OrderRow struct {
	ID           int64
	Items        []byte
	Total        pgtype.Numeric
	CustomerInfo []byte
	OrderMessage pgtype.Text
	Status       pgtype.Text
	Date         pgtype.Text
	CreatedAt    pgtype.Timestamp
}

func LineItemsToReadModel(items []order.LineItem) []readmodel.LineItemRM {
	out := make([]readmodel.LineItemRM, len(items))
	for i, it := range items {
		out[i] = readmodel.LineItemRM{
			Name:     it.Name(),
			Quantity: it.Quantity(),
			Price:    it.Price(),
		}
	}
	return out
}

func CustomerToReadModel(c order.Customer) readmodel.CustomerInfoRM {
	return readmodel.CustomerInfoRM{
		Name:    c.Name(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

// OrderToInsertParams encodes items and customer info as the JSONB documents stored per order.
// An order without customer info stores an empty object.
func OrderToInsertParams(o *order.Order, message, date string) (InsertOrderParams, error) {
	items, err := json.Marshal(LineItemsToReadModel(o.Items()))
	if err != nil {
		return InsertOrderParams{}, fmt.Errorf("encode items: %w", err)
	}
	customer, err := json.Marshal(CustomerToReadModel(o.Customer()))
	if err != nil {
		return InsertOrderParams{}, fmt.Errorf("encode customer info: %w", err)
	}

	return InsertOrderParams{
		Items:        items,
		Total:        o.Total(),
		CustomerInfo: customer,
		OrderMessage: message,
		Status:       o.Status().String(),
		Date:         date,
	}, nil
}

func OrderRowToReadModel(row OrderRow) (*readmodel.OrderRM, error) {
	rm := &readmodel.OrderRM{
		ID:           row.ID,
		OrderMessage: ptr.StringFromPgtype(row.OrderMessage),
		Status:       ptr.Deref(ptr.StringFromPgtype(row.Status), order.StatusPending.String()),
		Date:         ptr.StringFromPgtype(row.Date),
		CreatedAt:    ptr.TimeFromPgtype(row.CreatedAt),
	}

	if err := json.Unmarshal(row.Items, &rm.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if len(row.CustomerInfo) > 0 {
		if err := json.Unmarshal(row.CustomerInfo, &rm.CustomerInfo); err != nil {
			return nil, fmt.Errorf("decode customer info: %w", err)
		}
	}

	total, err := ptr.Float64FromPgtype(row.Total)
	if err != nil {
		return nil, fmt.Errorf("decode total: %w", err)
	}
	rm.Total = ptr.Deref(total, 0)

	return rm, nil
}

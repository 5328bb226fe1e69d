//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"storefront-api/internal/domain/order"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra/repository/converter"
	"storefront-api/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderItem struct {
	Name     string
	Quantity float64
	Price    float64
}

type OrderCustomer struct {
	Name    string
	Phone   string
	Address string
}

type OrderBuilder struct {
	ID       int64
	Items    []OrderItem
	Total    *float64
	Customer *OrderCustomer
	Date     string
}

// NewOrderBuilder starts from two almonds at 50 000 with a matching total.
func NewOrderBuilder() *OrderBuilder {
	total := 100000.0
	return &OrderBuilder{
		ID:    1,
		Items: []OrderItem{{Name: "Almond", Quantity: 2, Price: 50000}},
		Total: &total,
		Date:  "18/10/2026, 14:05:09",
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithCustomer(name, phone, address string) *OrderBuilder {
	b.Customer = &OrderCustomer{Name: name, Phone: phone, Address: address}
	return b
}

func (b *OrderBuilder) WithTotal(total float64) *OrderBuilder {
	b.Total = &total
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	items := make([]order.LineItem, 0, len(b.Items))
	for _, it := range b.Items {
		li, err := order.NewLineItem(it.Name, it.Quantity, it.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	var customer order.Customer
	if b.Customer != nil {
		customer = order.NewCustomer(b.Customer.Name, b.Customer.Phone, b.Customer.Address)
	}
	var total float64
	if b.Total != nil {
		total = *b.Total
	}
	return order.NewOrder(items, total, customer)
}

func (b *OrderBuilder) BuildDTO() reqdto.OrderRequest {
	req := reqdto.OrderRequest{Total: b.Total}
	for _, it := range b.Items {
		req.Items = append(req.Items, reqdto.OrderItemRequest{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	if b.Customer != nil {
		req.CustomerInfo = &reqdto.CustomerInfoRequest{
			Name:    b.Customer.Name,
			Phone:   b.Customer.Phone,
			Address: b.Customer.Address,
		}
	}
	return req
}

func (b *OrderBuilder) BuildInput() commands.SubmitOrderInput {
	in := commands.SubmitOrderInput{Total: b.Total}
	for _, it := range b.Items {
		in.Items = append(in.Items, commands.OrderItemInput{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	if b.Customer != nil {
		in.CustomerInfo = &commands.CustomerInfoInput{
			Name:    b.Customer.Name,
			Phone:   b.Customer.Phone,
			Address: b.Customer.Address,
		}
	}
	return in
}

// BuildRow returns the row the store echoes back after an insert.
func (b *OrderBuilder) BuildRow(summary string) (converter.OrderRow, error) {
	o, err := b.BuildDomain()
	if err != nil {
		return converter.OrderRow{}, err
	}
	p, err := converter.OrderToInsertParams(o, summary, b.Date)
	if err != nil {
		return converter.OrderRow{}, err
	}

	var total pgtype.Numeric
	if err := total.Scan(strconv.FormatFloat(o.Total(), 'f', 2, 64)); err != nil {
		return converter.OrderRow{}, err
	}

	return converter.OrderRow{
		ID:           b.ID,
		Items:        p.Items,
		Total:        total,
		CustomerInfo: p.CustomerInfo,
		OrderMessage: pgtype.Text{String: summary, Valid: true},
		Status:       pgtype.Text{String: p.Status, Valid: true},
		Date:         pgtype.Text{String: b.Date, Valid: true},
		CreatedAt:    pgtype.Timestamp{Time: time.Date(2026, 10, 18, 9, 5, 9, 0, time.UTC), Valid: true},
	}, nil
}

package repository

import (
	"context"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/repository/converter"
	"storefront-api/internal/usecase/readmodel"
)

const insertOrderSQL = `
INSERT INTO orders (items, total, customer_info, order_message, status, date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, items, total, customer_info, order_message, status, date, created_at`

// InsertOrder returns (nil, nil) while the gateway is disabled.
func (g *Gateway) InsertOrder(ctx context.Context, o *order.Order, message, submittedAt string) (*readmodel.OrderRM, error) {
	if !g.Enabled() {
		return nil, nil
	}

	p, err := converter.OrderToInsertParams(o, message, submittedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(g.logger, "failed to encode order", err)
	}

	var row converter.OrderRow
	err = g.db.QueryRow(ctx, insertOrderSQL,
		p.Items, p.Total, p.CustomerInfo, p.OrderMessage, p.Status, p.Date,
	).Scan(&row.ID, &row.Items, &row.Total, &row.CustomerInfo, &row.OrderMessage, &row.Status, &row.Date, &row.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(g.logger, "failed to insert order", err)
	}

	rm, err := converter.OrderRowToReadModel(row)
	if err != nil {
		// the row is committed; report the id even though the echo could not be decoded
		g.logger.Warn("order stored but returned row could not be decoded", "order_id", row.ID, "error", err.Error())
		return &readmodel.OrderRM{ID: row.ID, Status: p.Status}, nil
	}

	g.logger.Info("order stored", "order_id", row.ID)
	return rm, nil
}

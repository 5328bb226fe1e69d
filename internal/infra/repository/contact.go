package repository

import (
	"context"

	"storefront-api/internal/domain/contact"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/repository/converter"
	"storefront-api/internal/usecase/readmodel"
)

const insertContactSQL = `
INSERT INTO contacts (name, email, subject, message, date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, email, subject, message, date, created_at`

// InsertContact returns (nil, nil) while the gateway is disabled.
func (g *Gateway) InsertContact(ctx context.Context, msg *contact.Message, submittedAt string) (*readmodel.ContactRM, error) {
	if !g.Enabled() {
		return nil, nil
	}

	p := converter.ContactToInsertParams(msg, submittedAt)

	var row converter.ContactRow
	err := g.db.QueryRow(ctx, insertContactSQL,
		p.Name, p.Email, p.Subject, p.Message, p.Date,
	).Scan(&row.ID, &row.Name, &row.Email, &row.Subject, &row.Message, &row.Date, &row.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(g.logger, "failed to insert contact", err)
	}

	g.logger.Info("contact stored", "contact_id", row.ID)
	return converter.ContactRowToReadModel(row), nil
}

package converter

import (
	"storefront-api/internal/domain/contact"
	"storefront-api/internal/pkg/ptr"
	"storefront-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
)

type InsertContactParams struct {
	Name    string
	Email   string
	Subject string
	Message string
	Date    string
}

// ContactRow mirrors the RETURNING list of the contacts insert.
type ContactRow struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Date      pgtype.Text
	CreatedAt pgtype.Timestamp
}

func ContactToInsertParams(m *contact.Message, date string) InsertContactParams {
	return InsertContactParams{
		Name:    m.Name(),
		Email:   m.Email(),
		Subject: m.Subject(),
		Message: m.Body(),
		Date:    date,
	}
}

func ContactRowToReadModel(row ContactRow) *readmodel.ContactRM {
	return &readmodel.ContactRM{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Subject:   row.Subject,
		Message:   row.Message,
		Date:      ptr.StringFromPgtype(row.Date),
		CreatedAt: ptr.TimeFromPgtype(row.CreatedAt),
	}
}

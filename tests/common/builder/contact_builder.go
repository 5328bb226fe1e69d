//go:build unit || e2e

package builder

import (
	"time"

	"storefront-api/internal/domain/contact"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra/repository/converter"
	"storefront-api/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

type ContactBuilder struct {
	ID      int64
	Name    string
	Email   string
	Subject string
	Message string
	Date    string
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		ID:      1,
		Name:    "Aziz Karimov",
		Email:   "aziz@example.com",
		Subject: "Ulgurji narxlar",
		Message: "Bodom uchun ulgurji narx bormi?",
		Date:    "18/10/2026, 14:05:09",
	}
}

func (b *ContactBuilder) With(mutate func(*ContactBuilder)) *ContactBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ContactBuilder) BuildDomain() (*contact.Message, error) {
	return contact.NewMessage(b.Name, b.Email, b.Subject, b.Message)
}

func (b *ContactBuilder) BuildDTO() reqdto.ContactRequest {
	return reqdto.ContactRequest{
		Name:    b.Name,
		Email:   b.Email,
		Subject: b.Subject,
		Message: b.Message,
	}
}

func (b *ContactBuilder) BuildInput() commands.SubmitContactInput {
	return commands.SubmitContactInput{
		Name:    b.Name,
		Email:   b.Email,
		Subject: b.Subject,
		Message: b.Message,
	}
}

func (b *ContactBuilder) BuildRow() converter.ContactRow {
	return converter.ContactRow{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Subject:   b.Subject,
		Message:   b.Message,
		Date:      pgtype.Text{String: b.Date, Valid: true},
		CreatedAt: pgtype.Timestamp{Time: time.Date(2026, 10, 18, 9, 5, 9, 0, time.UTC), Valid: true},
	}
}

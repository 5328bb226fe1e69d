package request

import (
	"storefront-api/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// Presence is checked by the domain so blank and whitespace-only values get the same answer.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *ContactRequest) ToInput() (commands.SubmitContactInput, error) {
	var in commands.SubmitContactInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.SubmitContactInput{}, err
	}
	return in, nil
}

package request

import (
	"storefront-api/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type OrderItemRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type CustomerInfoRequest struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Total stays a pointer so a missing total can be told apart from zero.
type OrderRequest struct {
	Items        []OrderItemRequest   `json:"items"`
	Total        *float64             `json:"total"`
	CustomerInfo *CustomerInfoRequest `json:"customerInfo,omitempty"`
}

func (r *OrderRequest) ToInput() (commands.SubmitOrderInput, error) {
	var in commands.SubmitOrderInput
	if err := copier.CopyWithOption(&in, r, copier.Option{DeepCopy: true}); err != nil {
		return commands.SubmitOrderInput{}, err
	}
	return in, nil
}

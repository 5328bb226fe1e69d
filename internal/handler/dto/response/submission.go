package response

import "storefront-api/internal/usecase/commands"

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrderID is omitted when the order was not persisted.
type OrderResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	OrderMessage string `json:"orderMessage"`
	OrderID      *int64 `json:"orderId,omitempty"`
}

func FromOrderResult(r *commands.SubmitOrderResult, message string) *OrderResponse {
	return &OrderResponse{
		Success:      true,
		Message:      message,
		OrderMessage: r.Summary,
		OrderID:      r.OrderID,
	}
}

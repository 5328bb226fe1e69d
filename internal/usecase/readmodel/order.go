package readmodel

import "time"

type OrderRM struct {
	ID           int64          `json:"id"`
	Items        []LineItemRM   `json:"items"`
	Total        float64        `json:"total"`
	CustomerInfo CustomerInfoRM `json:"customer_info"`
	OrderMessage *string        `json:"order_message,omitempty"`
	Status       string         `json:"status"`
	Date         *string        `json:"date,omitempty"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
}

// LineItemRM and CustomerInfoRM are also the JSONB shapes stored in the orders table.
type LineItemRM struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type CustomerInfoRM struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

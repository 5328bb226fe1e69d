package order

import (
	"math"
	"strings"
)

type LineItem struct {
	name     string
	quantity float64
	price    float64
}

func NewLineItem(name string, quantity, price float64) (LineItem, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return LineItem{}, ErrItemNameRequired
	}
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return LineItem{}, ErrInvalidQuantity
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return LineItem{}, ErrNegativePrice
	}
	return LineItem{name: n, quantity: quantity, price: price}, nil
}

func (li LineItem) Name() string      { return li.name }
func (li LineItem) Quantity() float64 { return li.quantity }
func (li LineItem) Price() float64    { return li.price }

func (li LineItem) Subtotal() float64 {
	return li.price * li.quantity
}

// Customer fields are all optional; an empty Customer means the caller sent none.
type Customer struct {
	name    string
	phone   string
	address string
}

func NewCustomer(name, phone, address string) Customer {
	return Customer{
		name:    strings.TrimSpace(name),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
	}
}

func (c Customer) Name() string    { return c.name }
func (c Customer) Phone() string   { return c.phone }
func (c Customer) Address() string { return c.address }

func (c Customer) IsEmpty() bool {
	return c.name == "" && c.phone == "" && c.address == ""
}

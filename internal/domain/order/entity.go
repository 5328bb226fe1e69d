package order

import "math"

// totalTolerance absorbs float rounding when comparing the caller's total with line subtotals.
const totalTolerance = 0.005

type Order struct {
	items    []LineItem
	total    float64
	customer Customer
	status   Status
}

// NewOrder keeps total exactly as supplied; it is never recomputed from the items.
func NewOrder(items []LineItem, total float64, customer Customer) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if total < 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, ErrNegativeTotal
	}

	copied := make([]LineItem, len(items))
	copy(copied, items)

	return &Order{
		items:    copied,
		total:    total,
		customer: customer,
		status:   StatusPending,
	}, nil
}

func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Total() float64     { return o.total }
func (o *Order) Customer() Customer { return o.customer }
func (o *Order) Status() Status     { return o.status }
func (o *Order) ItemCount() int     { return len(o.items) }

func (o *Order) ItemsTotal() float64 {
	var sum float64
	for _, it := range o.items {
		sum += it.Subtotal()
	}
	return sum
}

func (o *Order) TotalMatchesItems() bool {
	return math.Abs(o.ItemsTotal()-o.total) < totalTolerance
}

package message

import (
	"strconv"
	"strings"

	"storefront-api/internal/domain/order"
)

// OrderSummary renders the order for the operator. The grand total is the caller's total as
// submitted, not the sum of the lines.
func OrderSummary(o *order.Order, submittedAt, currency string) string {
	var b strings.Builder
	b.WriteString("🛒 <b>Yangi Buyurtma</b>\n\n")
	b.WriteString("📅 <b>Sana:</b> " + submittedAt + "\n\n")

	if c := o.Customer(); !c.IsEmpty() {
		b.WriteString("👤 <b>Mijoz ma'lumotlari:</b>\n")
		if c.Name() != "" {
			b.WriteString("Ism: " + escape(c.Name()) + "\n")
		}
		if c.Phone() != "" {
			b.WriteString("Telefon: " + escape(c.Phone()) + "\n")
		}
		if c.Address() != "" {
			b.WriteString("Manzil: " + escape(c.Address()) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("📦 <b>Mahsulotlar:</b>\n")
	for i, it := range o.Items() {
		b.WriteString(strconv.Itoa(i+1) + ". <b>" + escape(it.Name()) + "</b>\n")
		b.WriteString("   Miqdor: " + FormatQuantity(it.Quantity()) + "\n")
		b.WriteString("   Narx: " + money(it.Price(), currency) + "\n")
		b.WriteString("   Jami: " + money(it.Subtotal(), currency) + "\n\n")
	}

	b.WriteString("💰 <b>Umumiy summa: " + money(o.Total(), currency) + "</b>")
	return b.String()
}

func money(v float64, currency string) string {
	if currency == "" {
		return FormatAmount(v)
	}
	return FormatAmount(v) + " " + currency
}

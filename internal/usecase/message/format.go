// Package message renders the HTML texts sent to the operator chat.
package message

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// NotAvailable stands in for an id when the record was not persisted.
const NotAvailable = "N/A"

// FormatAmount groups thousands with a space: 100000 -> "100 000", 1234.5 -> "1 234.5".
// Fractions are rounded to two digits.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	// above 1e15 a float64 carries no cents anyway and v*100 could overflow
	if math.Abs(v) < 1e15 {
		v = math.Round(v*100) / 100
	}
	return strings.ReplaceAll(humanize.Commaf(v), ",", " ")
}

// FormatQuantity prints quantities without trailing zeros.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func FormatID(id *int64) string {
	if id == nil {
		return NotAvailable
	}
	return strconv.FormatInt(*id, 10)
}

// Telegram's HTML mode only reserves these three characters; quotes stay readable.
var markup = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return markup.Replace(s)
}

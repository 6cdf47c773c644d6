package output

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amountFormatter prints two decimals with comma thousand separators and no symbol.
var amountFormatter = money.NewFormatter(2, ".", ",", "", "1")

var half = decimal.NewFromFloat(0.5)

// FormatAmount rounds to two decimals and groups thousands: 1234.5 -> "1,234.50".
// Halves round toward positive infinity, so -0.125 -> "-0.12".
func FormatAmount(d decimal.Decimal) string {
	cents := d.Shift(2).Add(half).Floor().IntPart()
	return amountFormatter.Format(cents)
}

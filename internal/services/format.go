package services

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// percent returns part/whole×100 rounded to two places, or 0 for a zero whole.
func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(2).InexactFloat64()
}

// formatMoney renders amount in the given ISO 4217 currency, e.g. "S$1,234.50".
func formatMoney(amount decimal.Decimal, currency string) string {
	c := money.GetCurrency(currency)
	if c == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(c.Fraction)).Round(0).IntPart()
	return money.New(minor, c.Code).Display()
}

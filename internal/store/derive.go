package store

import (
	"github.com/shopspring/decimal"

	"finboard/internal/models"
)

// Totals is the derived valuation of a set of investments.
type Totals struct {
	Value    decimal.Decimal
	Cost     decimal.Decimal
	GainLoss decimal.Decimal
}

// Recalculate applies the portfolio derivation rule:
//
//	value    = Σ shares × currentPrice
//	cost     = Σ shares × purchasePrice
//	gainLoss = value − cost
func Recalculate(investments []models.Investment) Totals {
	value := decimal.Zero
	cost := decimal.Zero
	for _, inv := range investments {
		value = value.Add(inv.MarketValue())
		cost = cost.Add(inv.CostBasis())
	}
	return Totals{Value: value, Cost: cost, GainLoss: value.Sub(cost)}
}

func applyTotals(p *models.Portfolio) {
	t := Recalculate(p.Investments)
	p.TotalValue = t.Value
	p.TotalGainLoss = t.GainLoss
}

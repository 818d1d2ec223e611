package models

import "github.com/shopspring/decimal"

// InvestmentType represents the kind of asset held.
type InvestmentType string

const (
	InvestmentTypeStock     InvestmentType = "stock"
	InvestmentTypeUnitTrust InvestmentType = "unit_trust"
	InvestmentTypeETF       InvestmentType = "etf"
	InvestmentTypeBond      InvestmentType = "bond"
	InvestmentTypeCrypto    InvestmentType = "crypto"
	InvestmentTypeOther     InvestmentType = "other"
)

// Investment represents a single holding inside a portfolio.
type Investment struct {
	ID             string          `json:"id"`
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	Shares         decimal.Decimal `json:"shares" swaggertype:"number"`
	PurchasePrice  decimal.Decimal `json:"purchase_price" swaggertype:"number"`
	CurrentPrice   decimal.Decimal `json:"current_price" swaggertype:"number"`
	PortfolioID    string          `json:"portfolio_id"`
	PurchaseDate   Date            `json:"purchase_date" swaggertype:"string" example:"2024-01-15"`
	InvestmentType InvestmentType  `json:"investment_type"`
}

// MarketValue returns shares times current price.
func (i Investment) MarketValue() decimal.Decimal {
	return i.Shares.Mul(i.CurrentPrice)
}

// CostBasis returns shares times purchase price.
func (i Investment) CostBasis() decimal.Decimal {
	return i.Shares.Mul(i.PurchasePrice)
}

// InvestmentUpdate holds the fields of an Investment that may be changed.
// Nil fields are left untouched.
type InvestmentUpdate struct {
	Symbol         *string
	Name           *string
	Shares         *decimal.Decimal
	PurchasePrice  *decimal.Decimal
	CurrentPrice   *decimal.Decimal
	PurchaseDate   *Date
	InvestmentType *InvestmentType
}

// Apply merges the non-nil fields of u into inv.
func (u InvestmentUpdate) Apply(inv *Investment) {
	if u.Symbol != nil {
		inv.Symbol = *u.Symbol
	}
	if u.Name != nil {
		inv.Name = *u.Name
	}
	if u.Shares != nil {
		inv.Shares = *u.Shares
	}
	if u.PurchasePrice != nil {
		inv.PurchasePrice = *u.PurchasePrice
	}
	if u.CurrentPrice != nil {
		inv.CurrentPrice = *u.CurrentPrice
	}
	if u.PurchaseDate != nil {
		inv.PurchaseDate = *u.PurchaseDate
	}
	if u.InvestmentType != nil {
		inv.InvestmentType = *u.InvestmentType
	}
}

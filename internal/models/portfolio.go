package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioType represents where a portfolio is held.
type PortfolioType string

const (
	PortfolioTypeBankingApp      PortfolioType = "banking_app"
	PortfolioTypeRoboAdvisor     PortfolioType = "robo_advisor"
	PortfolioTypeInsuranceLinked PortfolioType = "insurance_linked"
	PortfolioTypeBrokerage       PortfolioType = "brokerage"
	PortfolioTypeOther           PortfolioType = "other"
)

// Portfolio represents a named group of investments held at one provider.
// TotalValue and TotalGainLoss are derived from Investments whenever the
// holdings change, but may be overridden through a portfolio update.
type Portfolio struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Provider      string          `json:"provider"`
	PortfolioType PortfolioType   `json:"portfolio_type"`
	AccountNumber string          `json:"account_number,omitempty"`
	TotalValue    decimal.Decimal `json:"total_value" swaggertype:"number"`
	TotalGainLoss decimal.Decimal `json:"total_gain_loss" swaggertype:"number"`
	Investments   []Investment    `json:"investments"`
	LastUpdated   time.Time       `json:"last_updated"`
}

// Clone returns a copy of p that shares no slice storage with it.
func (p Portfolio) Clone() Portfolio {
	out := p
	out.Investments = make([]Investment, len(p.Investments))
	copy(out.Investments, p.Investments)
	return out
}

// PortfolioUpdate holds the fields of a Portfolio that may be changed.
// Nil fields are left untouched. Setting TotalValue or TotalGainLoss is a
// manual override and is not checked against the holdings.
type PortfolioUpdate struct {
	Name          *string
	Description   *string
	Provider      *string
	PortfolioType *PortfolioType
	AccountNumber *string
	TotalValue    *decimal.Decimal
	TotalGainLoss *decimal.Decimal
}

// Apply merges the non-nil fields of u into p.
func (u PortfolioUpdate) Apply(p *Portfolio) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Provider != nil {
		p.Provider = *u.Provider
	}
	if u.PortfolioType != nil {
		p.PortfolioType = *u.PortfolioType
	}
	if u.AccountNumber != nil {
		p.AccountNumber = *u.AccountNumber
	}
	if u.TotalValue != nil {
		p.TotalValue = *u.TotalValue
	}
	if u.TotalGainLoss != nil {
		p.TotalGainLoss = *u.TotalGainLoss
	}
}

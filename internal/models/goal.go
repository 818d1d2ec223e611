package models

import "github.com/shopspring/decimal"

// FinancialGoal represents a savings target.
type FinancialGoal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"target_amount" swaggertype:"number"`
	CurrentAmount decimal.Decimal `json:"current_amount" swaggertype:"number"`
	Deadline      Date            `json:"deadline" swaggertype:"string" example:"2024-01-15"`
	Category      string          `json:"category"`
}

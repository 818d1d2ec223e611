package models

import "github.com/shopspring/decimal"

// Budget represents a spending allocation for a category within one month.
// Spent may exceed Allocated.
type Budget struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Allocated decimal.Decimal `json:"allocated" swaggertype:"number"`
	Spent     decimal.Decimal `json:"spent" swaggertype:"number"`
	Month     string          `json:"month"` // YYYY-MM
}

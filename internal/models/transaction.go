package models

import "github.com/shopspring/decimal"

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents an income or expense entry
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Description string          `json:"description"`
	Date        Date            `json:"date" swaggertype:"string" example:"2024-01-15"`
}

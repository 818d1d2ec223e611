// Package models defines the entities held by the finance store.
package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts travel as JSON numbers, matching what the front end sends.
	decimal.MarshalJSONWithoutQuotes = true
}

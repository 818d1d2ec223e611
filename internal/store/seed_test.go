package store_test

import (
	"strings"
	"testing"

	"finboard/internal/store"
	"finboard/internal/testutil"
)

func TestLoadSeed(t *testing.T) {
	t.Run("valid_document", func(t *testing.T) {
		doc := `{
			"transactions": [{"id":"t1","type":"income","category":"Salary","amount":5000,"description":"","date":"2024-01-15"}],
			"portfolios": [{"id":"p1","name":"DBS","description":"","provider":"DBS","portfolio_type":"banking_app",
				"total_value":0,"total_gain_loss":0,"last_updated":"2024-01-15T10:30:00Z",
				"investments":[{"id":"i1","symbol":"X","name":"X","shares":"10","purchase_price":1,"current_price":2,
					"portfolio_id":"p1","purchase_date":"2023-12-01","investment_type":"unit_trust"}]}],
			"budgets": [],
			"goals": [{"id":"g1","title":"Fund","target_amount":100,"current_amount":10,"deadline":"2024-12-31","category":"Savings"}]
		}`

		seed, err := store.LoadSeed(strings.NewReader(doc))
		testutil.AssertNoError(t, err)

		s, _ := testutil.NewTestStore(t, seed)
		p, err := s.Portfolio("p1")
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "total value", p.TotalValue, testutil.Dec("20"))
		testutil.AssertDecimal(t, "total gain/loss", p.TotalGainLoss, testutil.Dec("10"))
	})

	t.Run("unknown_field", func(t *testing.T) {
		_, err := store.LoadSeed(strings.NewReader(`{"accounts":[]}`))
		testutil.AssertAppError(t, err, "INVALID_SEED")
	})

	t.Run("malformed_json", func(t *testing.T) {
		_, err := store.LoadSeed(strings.NewReader(`{"goals":[`))
		testutil.AssertAppError(t, err, "INVALID_SEED")
	})

	t.Run("duplicate_ids", func(t *testing.T) {
		_, err := store.LoadSeed(strings.NewReader(`{"goals":[{"id":"g"},{"id":"g"}]}`))
		testutil.AssertAppError(t, err, "INVALID_SEED")
	})

	t.Run("missing_id", func(t *testing.T) {
		_, err := store.LoadSeed(strings.NewReader(`{"transactions":[{"type":"income"}]}`))
		testutil.AssertAppError(t, err, "INVALID_SEED")
	})
}

package store_test

import (
	"os"
	"reflect"
	"testing"
	"time"

	"finboard/internal/logger"
	"finboard/internal/models"
	"finboard/internal/store"
	"finboard/internal/testutil"
)

func TestMain(m *testing.M) {
	logger.Init("test", "")
	os.Exit(m.Run())
}

// assertInvariant checks the portfolio's totals against its holdings.
func assertInvariant(t *testing.T, p models.Portfolio) {
	t.Helper()

	value := testutil.Dec("0")
	cost := testutil.Dec("0")
	for _, inv := range p.Investments {
		value = value.Add(inv.Shares.Mul(inv.CurrentPrice))
		cost = cost.Add(inv.Shares.Mul(inv.PurchasePrice))
	}
	testutil.AssertDecimal(t, "total value", p.TotalValue, value)
	testutil.AssertDecimal(t, "total gain/loss", p.TotalGainLoss, value.Sub(cost))
}

func TestNew(t *testing.T) {
	t.Run("recomputes_seeded_totals", func(t *testing.T) {
		s, _ := testutil.NewTestStore(t, testutil.TwoHoldingSeed())

		p, err := s.Portfolio("P")
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "total value", p.TotalValue, testutil.Dec("35"))
		testutil.AssertDecimal(t, "total gain/loss", p.TotalGainLoss, testutil.Dec("5"))
		if !p.LastUpdated.Equal(testutil.Epoch.Add(-24 * time.Hour)) {
			t.Errorf("expected seeded lastUpdated to be kept, got %v", p.LastUpdated)
		}
	})

	t.Run("keeps_totals_of_empty_portfolios", func(t *testing.T) {
		seed := store.Seed{Portfolios: []models.Portfolio{{
			ID: "E", Name: "Empty", TotalValue: testutil.Dec("1200"), TotalGainLoss: testutil.Dec("-40"),
		}}}
		s, _ := testutil.NewTestStore(t, seed)

		p, err := s.Portfolio("E")
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "total value", p.TotalValue, testutil.Dec("1200"))
		testutil.AssertDecimal(t, "total gain/loss", p.TotalGainLoss, testutil.Dec("-40"))
	})

	t.Run("binds_investments_to_owner", func(t *testing.T) {
		seed := testutil.TwoHoldingSeed()
		seed.Portfolios[0].Investments[0].PortfolioID = ""
		s, _ := testutil.NewTestStore(t, seed)

		p, _ := s.Portfolio("P")
		if p.Investments[0].PortfolioID != "P" {
			t.Errorf("expected portfolio id P, got %q", p.Investments[0].PortfolioID)
		}
	})

	t.Run("rejects_mismatched_owner", func(t *testing.T) {
		seed := testutil.TwoHoldingSeed()
		seed.Portfolios[0].Investments[1].PortfolioID = "other"

		_, err := store.New(seed)
		testutil.AssertAppError(t, err, "INVALID_SEED")
	})

	t.Run("rejects_duplicate_ids", func(t *testing.T) {
		seed := testutil.GoalSeed()
		seed.Goals = append(seed.Goals, seed.Goals[0])

		_, err := store.New(seed)
		testutil.AssertAppError(t, err, "INVALID_SEED")
	})

	t.Run("does_not_alias_seed", func(t *testing.T) {
		seed := testutil.TwoHoldingSeed()
		s, _ := testutil.NewTestStore(t, seed)

		seed.Portfolios[0].Investments[0].Shares = testutil.Dec("999")

		p, _ := s.Portfolio("P")
		testutil.AssertDecimal(t, "shares", p.Investments[0].Shares, testutil.Dec("10"))
	})

	t.Run("empty_seed", func(t *testing.T) {
		s, _ := testutil.NewTestStore(t, store.Seed{})

		if s.Transactions() == nil || s.Portfolios() == nil || s.Budgets() == nil || s.Goals() == nil {
			t.Error("expected empty, non-nil collections")
		}
	})
}

func TestSampleSeed(t *testing.T) {
	s, err := store.New(store.SampleSeed())
	testutil.AssertNoError(t, err)

	if n := len(s.Transactions()); n != 5 {
		t.Errorf("expected 5 transactions, got %d", n)
	}
	if n := len(s.Budgets()); n != 4 {
		t.Errorf("expected 4 budgets, got %d", n)
	}
	if n := len(s.Goals()); n != 3 {
		t.Errorf("expected 3 goals, got %d", n)
	}

	portfolios := s.Portfolios()
	if len(portfolios) != 3 {
		t.Fatalf("expected 3 portfolios, got %d", len(portfolios))
	}
	// 1000 × 1.45 + 800 × 1.95
	testutil.AssertDecimal(t, "DBS value", portfolios[0].TotalValue, testutil.Dec("3010"))
	testutil.AssertDecimal(t, "DBS gain", portfolios[0].TotalGainLoss, testutil.Dec("320"))
	testutil.AssertDecimal(t, "StashAway value", portfolios[1].TotalValue, testutil.Dec("15800"))
	testutil.AssertDecimal(t, "Great Eastern gain", portfolios[2].TotalGainLoss, testutil.Dec("750"))
}

func TestAddTransaction(t *testing.T) {
	t.Run("prepends_new_transaction", func(t *testing.T) {
		s, _ := testutil.NewTestStore(t, store.SampleSeed())
		before := s.Transactions()

		tx, err := s.AddTransaction(models.Transaction{
			Type:        models.TransactionTypeExpense,
			Category:    "Food",
			Amount:      testutil.Dec("12.50"),
			Description: "Lunch",
			Date:        models.MustParseDate("2023-06-01"),
		})
		testutil.AssertNoError(t, err)

		if tx.ID != "new-1" {
			t.Errorf("expected id new-1, got %s", tx.ID)
		}
		after := s.Transactions()
		if len(after) != len(before)+1 {
			t.Fatalf("expected %d transactions, got %d", len(before)+1, len(after))
		}
		if after[0].ID != tx.ID {
			t.Errorf("expected new transaction first, got %s", after[0].ID)
		}
		if !reflect.DeepEqual(after[1:], before) {
			t.Error("existing transactions changed")
		}
	})

	t.Run("orders_by_insertion_not_date", func(t *testing.T) {
		s, _ := testutil.NewTestStore(t, store.Seed{})

		first, _ := s.AddTransaction(models.Transaction{Type: models.TransactionTypeIncome, Date: models.MustParseDate("2024-05-01")})
		second, _ := s.AddTransaction(models.Transaction{Type: models.TransactionTypeIncome, Date: models.MustParseDate("2020-01-01")})

		got := s.Transactions()
		if got[0].ID != second.ID || got[1].ID != first.ID {
			t.Errorf("expected [%s %s], got [%s %s]", second.ID, first.ID, got[0].ID, got[1].ID)
		}
	})

	t.Run("accepts_any_amount", func(t *testing.T) {
		s, _ := testutil.NewTestStore(t, store.Seed{})

		tx, err := s.AddTransaction(models.Transaction{Type: models.TransactionTypeExpense, Amount: testutil.Dec("-3")})
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "amount", tx.Amount, testutil.Dec("-3"))
	})
}

func TestReadsReturnCopies(t *testing.T) {
	s, _ := testutil.NewTestStore(t, testutil.TwoHoldingSeed())

	portfolios := s.Portfolios()
	portfolios[0].Name = "mutated"
	portfolios[0].Investments[0].Shares = testutil.Dec("1")

	p, _ := s.Portfolio("P")
	if p.Name != "Test Portfolio" {
		t.Errorf("expected name to be unchanged, got %q", p.Name)
	}
	testutil.AssertDecimal(t, "shares", p.Investments[0].Shares, testutil.Dec("10"))
}

func TestAddGoal(t *testing.T) {
	s, _ := testutil.NewTestStore(t, testutil.GoalSeed())

	g, err := s.AddGoal(models.FinancialGoal{
		Title:         "Laptop",
		TargetAmount:  testutil.Dec("2000"),
		CurrentAmount: testutil.Dec("0"),
		Deadline:      models.MustParseDate("2024-09-01"),
		Category:      "Other",
	})
	testutil.AssertNoError(t, err)

	goals := s.Goals()
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[1].ID != g.ID {
		t.Errorf("expected new goal appended, got %s last", goals[1].ID)
	}
}

func TestUpdateGoal(t *testing.T) {
	t.Run("clamps_to_target", func(t *testing.T) {
		s, _ := testutil.NewTestStore(t, testutil.GoalSeed())

		g, err := s.UpdateGoal("G", testutil.Dec("500"))
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "current amount", g.CurrentAmount, testutil.Dec("1000"))

		stored, _ := s.Goal("G")
		testutil.AssertDecimal(t, "stored current amount", stored.CurrentAmount, testutil.Dec("1000"))
	})

	t.Run("adds_below_target", func(t *testing.T) {
		s, _ := testutil.NewTestStore(t, testutil.GoalSeed())

		g, err := s.UpdateGoal("G", testutil.Dec("25.5"))
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "current amount", g.CurrentAmount, testutil.Dec("925.5"))
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		s, _ := testutil.NewTestStore(t, testutil.GoalSeed())
		before := s.Snapshot()

		_, err := s.UpdateGoal("G", testutil.Dec("-100"))
		testutil.AssertAppError(t, err, "INVALID_CONTRIBUTION")

		if !reflect.DeepEqual(before, s.Snapshot()) {
			t.Error("state changed after rejected contribution")
		}
	})

	t.Run("unknown_goal", func(t *testing.T) {
		s, _ := testutil.NewTestStore(t, testutil.GoalSeed())
		before := s.Snapshot()

		_, err := s.UpdateGoal("missing", testutil.Dec("10"))
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")

		if !reflect.DeepEqual(before, s.Snapshot()) {
			t.Error("state changed after unknown goal")
		}
	})
}

func TestSubscribe(t *testing.T) {
	s, clock := testutil.NewTestStore(t, testutil.TwoHoldingSeed())

	var events []store.Event
	unsubscribe := s.Subscribe(func(ev store.Event) {
		// Listeners may read the store without deadlocking.
		_ = s.Portfolios()
		events = append(events, ev)
	})

	_, err := s.AddInvestment(testutil.TestInvestment("P", "C", "1", "1", "1"))
	testutil.AssertNoError(t, err)
	_, err = s.UpdateGoal("missing", testutil.Dec("1"))
	testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Action != store.ActionCreated || ev.Resource != store.ResourceInvestment {
		t.Errorf("unexpected event %s/%s", ev.Action, ev.Resource)
	}
	if ev.PortfolioID != "P" {
		t.Errorf("expected portfolio P, got %s", ev.PortfolioID)
	}
	if !ev.At.Equal(clock.Now()) {
		t.Errorf("expected event time %v, got %v", clock.Now(), ev.At)
	}

	unsubscribe()
	unsubscribe()
	_ = s.DeletePortfolio("P")
	if len(events) != 1 {
		t.Errorf("expected no events after unsubscribe, got %d", len(events))
	}
}

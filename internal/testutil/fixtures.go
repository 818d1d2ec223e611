package testutil

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finboard/internal/models"
	"finboard/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Epoch is the starting time of every test clock.
var Epoch = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock set to Epoch.
func NewClock() *Clock {
	return &Clock{now: Epoch}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SequentialIDs returns a generator producing prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// NewTestStore builds a store from seed with a fake clock and predictable ids.
func NewTestStore(t *testing.T, seed store.Seed) (*store.Store, *Clock) {
	t.Helper()

	clock := NewClock()
	s, err := store.New(seed, store.WithClock(clock.Now), store.WithIDGenerator(SequentialIDs("new")))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s, clock
}

// Dec parses a decimal literal.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DecPtr parses a decimal literal and returns its address.
func DecPtr(s string) *decimal.Decimal {
	d := Dec(s)
	return &d
}

// Ptr returns the address of v.
func Ptr[T any](v T) *T {
	return &v
}

// TestInvestment creates an unsaved stock holding.
func TestInvestment(portfolioID, symbol, shares, purchasePrice, currentPrice string) models.Investment {
	return models.Investment{
		Symbol:         symbol,
		Name:           symbol + " Holding",
		Shares:         Dec(shares),
		PurchasePrice:  Dec(purchasePrice),
		CurrentPrice:   Dec(currentPrice),
		PortfolioID:    portfolioID,
		PurchaseDate:   models.MustParseDate("2024-01-02"),
		InvestmentType: models.InvestmentTypeStock,
	}
}

// TwoHoldingSeed returns one portfolio "P" holding A (10 @ 1 → 2) and
// B (5 @ 4 → 3), worth 35 with a gain of 5.
func TwoHoldingSeed() store.Seed {
	a := TestInvestment("P", "A", "10", "1", "2")
	a.ID = "A"
	b := TestInvestment("P", "B", "5", "4", "3")
	b.ID = "B"
	return store.Seed{
		Portfolios: []models.Portfolio{{
			ID:            "P",
			Name:          "Test Portfolio",
			Provider:      "Test Broker",
			PortfolioType: models.PortfolioTypeBrokerage,
			Investments:   []models.Investment{a, b},
			LastUpdated:   Epoch.Add(-24 * time.Hour),
		}},
	}
}

// GoalSeed returns a single goal "G" at 900 of 1000.
func GoalSeed() store.Seed {
	return store.Seed{
		Goals: []models.FinancialGoal{{
			ID:            "G",
			Title:         "Rainy Day",
			TargetAmount:  Dec("1000"),
			CurrentAmount: Dec("900"),
			Deadline:      models.MustParseDate("2024-12-31"),
			Category:      "Savings",
		}},
	}
}

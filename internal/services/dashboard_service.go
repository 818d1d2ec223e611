package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"finboard/internal/models"
	"finboard/internal/store"
)

// recentTransactions is the number of transactions shown on the dashboard.
const recentTransactions = 5

// dashboardService derives the headline statistics.
type dashboardService struct {
	store    *store.Store
	currency string
}

// NewDashboardService creates a new DashboardServicer that formats display
// figures in the given ISO 4217 currency.
func NewDashboardService(st *store.Store, currency string) DashboardServicer {
	return &dashboardService{store: st, currency: currency}
}

// GetDashboard computes the dashboard from the current store contents.
func (s *dashboardService) GetDashboard() (*Dashboard, error) {
	transactions := s.store.Transactions()

	d := &Dashboard{
		Currency:          s.currency,
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		PortfolioValue:    decimal.Zero,
		PortfolioGainLoss: decimal.Zero,
		GoalSavings:       decimal.Zero,
	}

	byCategory := map[string]decimal.Decimal{}
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			d.TotalIncome = d.TotalIncome.Add(tx.Amount)
		case models.TransactionTypeExpense:
			d.TotalExpenses = d.TotalExpenses.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}
	d.NetWorth = d.TotalIncome.Sub(d.TotalExpenses)
	d.ExpenseBreakdown = expenseBreakdown(byCategory, d.TotalExpenses)

	for _, p := range s.store.Portfolios() {
		d.PortfolioValue = d.PortfolioValue.Add(p.TotalValue)
		d.PortfolioGainLoss = d.PortfolioGainLoss.Add(p.TotalGainLoss)
	}
	for _, g := range s.store.Goals() {
		d.GoalSavings = d.GoalSavings.Add(g.CurrentAmount)
	}

	n := min(recentTransactions, len(transactions))
	d.RecentTransactions = transactions[:n]

	d.Display = DashboardDisplay{
		NetWorth:       formatMoney(d.NetWorth, s.currency),
		PortfolioValue: formatMoney(d.PortfolioValue, s.currency),
		TotalExpenses:  formatMoney(d.TotalExpenses, s.currency),
		GoalSavings:    formatMoney(d.GoalSavings, s.currency),
	}
	return d, nil
}

// expenseBreakdown orders categories by amount, largest first, then by name.
func expenseBreakdown(byCategory map[string]decimal.Decimal, total decimal.Decimal) []CategoryTotal {
	breakdown := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		breakdown = append(breakdown, CategoryTotal{
			Category: category,
			Amount:   amount,
			SharePct: percent(amount, total),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if c := breakdown[i].Amount.Cmp(breakdown[j].Amount); c != 0 {
			return c > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

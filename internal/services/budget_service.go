package services

import (
	"github.com/shopspring/decimal"

	"finboard/internal/models"
	"finboard/internal/store"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	store *store.Store
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(st *store.Store) BudgetServicer {
	return &budgetService{store: st}
}

// GetBudgets returns budget progress, optionally restricted to one month.
func (s *budgetService) GetBudgets(month string) ([]BudgetProgress, error) {
	budgets := s.budgets(month)

	progress := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		progress = append(progress, BudgetProgress{
			Budget:       b,
			Remaining:    b.Allocated.Sub(b.Spent),
			SpentPct:     percent(b.Spent, b.Allocated),
			IsOverBudget: b.Spent.GreaterThan(b.Allocated),
		})
	}
	return progress, nil
}

// GetSummary totals the budgets of one month, or of all months when month is empty.
func (s *budgetService) GetSummary(month string) (*BudgetSummary, error) {
	budgets := s.budgets(month)

	summary := &BudgetSummary{
		TotalAllocated: decimal.Zero,
		TotalSpent:     decimal.Zero,
		Categories:     len(budgets),
	}
	for _, b := range budgets {
		summary.TotalAllocated = summary.TotalAllocated.Add(b.Allocated)
		summary.TotalSpent = summary.TotalSpent.Add(b.Spent)
		if b.Spent.LessThanOrEqual(b.Allocated) {
			summary.WithinBudget++
		}
	}
	summary.Remaining = summary.TotalAllocated.Sub(summary.TotalSpent)
	summary.SavedPct = percent(summary.Remaining, summary.TotalAllocated)
	return summary, nil
}

func (s *budgetService) budgets(month string) []models.Budget {
	all := s.store.Budgets()
	if month == "" {
		return all
	}
	filtered := make([]models.Budget, 0, len(all))
	for _, b := range all {
		if b.Month == month {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

package services

import (
	"time"

	"github.com/shopspring/decimal"

	"finboard/internal/models"
	"finboard/internal/store"
)

// goalService handles goal-related business logic.
type goalService struct {
	store *store.Store
	now   func() time.Time
}

// NewGoalService creates a new GoalServicer. now supplies "today" for
// days-remaining; nil means time.Now.
func NewGoalService(st *store.Store, now func() time.Time) GoalServicer {
	if now == nil {
		now = time.Now
	}
	return &goalService{store: st, now: now}
}

// CreateGoal appends a new goal.
func (s *goalService) CreateGoal(g models.FinancialGoal) (*models.FinancialGoal, error) {
	created, err := s.store.AddGoal(g)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetGoals returns every goal with its progress and the overall totals.
func (s *goalService) GetGoals() (*GoalList, error) {
	goals := s.store.Goals()
	today := models.DateOf(s.now())

	list := &GoalList{
		Goals:       make([]GoalProgress, 0, len(goals)),
		TotalSaved:  decimal.Zero,
		TotalTarget: decimal.Zero,
	}
	for _, g := range goals {
		p := newGoalProgress(g, today)
		if p.IsCompleted {
			list.Completed++
		}
		list.TotalSaved = list.TotalSaved.Add(g.CurrentAmount)
		list.TotalTarget = list.TotalTarget.Add(g.TargetAmount)
		list.Goals = append(list.Goals, p)
	}
	return list, nil
}

// Contribute adds amount to a goal, capped at its target.
func (s *goalService) Contribute(id string, amount decimal.Decimal) (*GoalProgress, error) {
	updated, err := s.store.UpdateGoal(id, amount)
	if err != nil {
		return nil, err
	}
	p := newGoalProgress(updated, models.DateOf(s.now()))
	return &p, nil
}

func newGoalProgress(g models.FinancialGoal, today models.Date) GoalProgress {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	p := GoalProgress{
		FinancialGoal: g,
		Remaining:     remaining,
		ProgressPct:   percent(g.CurrentAmount, g.TargetAmount),
		IsCompleted:   g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount),
	}
	if !g.Deadline.IsZero() {
		p.DaysRemaining = today.DaysUntil(g.Deadline)
		p.IsOverdue = !p.IsCompleted && g.Deadline.Before(today)
	}
	return p
}

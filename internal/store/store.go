// Package store holds the finance state of a session: transactions,
// portfolios with their investments, budgets and goals. All writes go through
// the Store's methods, which keep derived portfolio totals consistent and
// notify subscribers once the write has been applied.
package store

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "finboard/internal/errors"
	"finboard/internal/logger"
	"finboard/internal/models"
	"finboard/internal/uuid"
)

// Store is the single owned aggregate of finance state. Each method runs to
// completion before the next one starts; readers always get copies.
type Store struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	portfolios   []models.Portfolio
	budgets      []models.Budget
	goals        []models.FinancialGoal

	now   func() time.Time
	newID func() string

	events *dispatcher
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for lastUpdated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source for new records.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a Store populated from seed. The seed is copied; investments
// are bound to the portfolio that holds them and every portfolio with
// holdings has its totals recomputed.
func New(seed Seed, opts ...Option) (*Store, error) {
	s := &Store{
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.New,
		events: newDispatcher(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := seed.Validate(); err != nil {
		return nil, err
	}

	seed = seed.clone()
	for i := range seed.Portfolios {
		p := &seed.Portfolios[i]
		for j := range p.Investments {
			p.Investments[j].PortfolioID = p.ID
		}
		if len(p.Investments) > 0 {
			applyTotals(p)
		}
	}

	s.transactions = seed.Transactions
	s.portfolios = seed.Portfolios
	s.budgets = seed.Budgets
	s.goals = seed.Goals
	return s, nil
}

// Subscribe registers l to receive an Event after every successful mutation.
// Listeners run synchronously on the mutating goroutine, after the store lock
// has been released, so they may read from the store. The returned function
// removes the listener.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	return s.events.add(l)
}

// mutate runs fn under the write lock and publishes the resulting event once
// the lock is released. fn must leave the state untouched when it fails.
func (s *Store) mutate(fn func(now time.Time) (Event, error)) error {
	s.mu.Lock()
	now := s.now()
	ev, err := fn(now)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	ev.At = now
	logger.Get().Debugw("store mutation",
		"action", ev.Action,
		"resource", ev.Resource,
		"resource_id", ev.ResourceID,
	)
	s.events.publish(ev)
	return nil
}

// Transactions returns all transactions, most recently added first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Portfolios returns all portfolios with their investments, in creation order.
func (s *Store) Portfolios() []models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePortfolios(s.portfolios)
}

// Portfolio returns the portfolio with the given id.
func (s *Store) Portfolio(id string) (models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.portfolioIndex(id)
	if i < 0 {
		return models.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	return s.portfolios[i].Clone(), nil
}

// Budgets returns all budgets.
func (s *Store) Budgets() []models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// Goals returns all goals in creation order.
func (s *Store) Goals() []models.FinancialGoal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FinancialGoal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Goal returns the goal with the given id.
func (s *Store) Goal(id string) (models.FinancialGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.goalIndex(id)
	if i < 0 {
		return models.FinancialGoal{}, apperrors.ErrGoalNotFound
	}
	return s.goals[i], nil
}

// Snapshot returns a copy of the whole state in seed form.
func (s *Store) Snapshot() Seed {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Seed{
		Transactions: s.transactions,
		Portfolios:   s.portfolios,
		Budgets:      s.budgets,
		Goals:        s.goals,
	}.clone()
}

// AddTransaction assigns a new id to t and places it first in the sequence.
// Existing transactions are not modified.
func (s *Store) AddTransaction(t models.Transaction) (models.Transaction, error) {
	err := s.mutate(func(time.Time) (Event, error) {
		t.ID = s.newID()
		next := make([]models.Transaction, 0, len(s.transactions)+1)
		next = append(next, t)
		next = append(next, s.transactions...)
		s.transactions = next
		return Event{Action: ActionCreated, Resource: ResourceTransaction, ResourceID: t.ID,
			Changes: map[string]any{"type": t.Type, "category": t.Category, "amount": t.Amount.String()}}, nil
	})
	return t, err
}

// AddGoal assigns a new id to g and appends it.
func (s *Store) AddGoal(g models.FinancialGoal) (models.FinancialGoal, error) {
	err := s.mutate(func(time.Time) (Event, error) {
		g.ID = s.newID()
		s.goals = append(s.goals, g)
		return Event{Action: ActionCreated, Resource: ResourceGoal, ResourceID: g.ID,
			Changes: map[string]any{"title": g.Title, "target_amount": g.TargetAmount.String()}}, nil
	})
	return g, err
}

// UpdateGoal adds amount to the goal's current amount without letting it
// exceed the target. Negative amounts are rejected.
func (s *Store) UpdateGoal(id string, amount decimal.Decimal) (models.FinancialGoal, error) {
	var updated models.FinancialGoal
	err := s.mutate(func(time.Time) (Event, error) {
		if amount.IsNegative() {
			return Event{}, apperrors.ErrInvalidContribution
		}
		i := s.goalIndex(id)
		if i < 0 {
			return Event{}, apperrors.ErrGoalNotFound
		}
		g := &s.goals[i]
		g.CurrentAmount = decimal.Min(g.TargetAmount, g.CurrentAmount.Add(amount))
		updated = *g
		return Event{Action: ActionContributed, Resource: ResourceGoal, ResourceID: id,
			Changes: map[string]any{"amount": amount.String(), "current_amount": g.CurrentAmount.String()}}, nil
	})
	return updated, err
}

func (s *Store) portfolioIndex(id string) int {
	for i := range s.portfolios {
		if s.portfolios[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) goalIndex(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}

func clonePortfolios(in []models.Portfolio) []models.Portfolio {
	out := make([]models.Portfolio, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

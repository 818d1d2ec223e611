package store

import (
	"time"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
)

// AddPortfolio assigns a new id and lastUpdated stamp to p and appends it.
// The portfolio always starts without investments; any TotalValue and
// TotalGainLoss supplied by the caller are kept as a manual override until
// the holdings first change.
func (s *Store) AddPortfolio(p models.Portfolio) (models.Portfolio, error) {
	err := s.mutate(func(now time.Time) (Event, error) {
		p.ID = s.newID()
		p.LastUpdated = now
		p.Investments = []models.Investment{}
		s.portfolios = append(s.portfolios, p)
		return Event{Action: ActionCreated, Resource: ResourcePortfolio, ResourceID: p.ID, PortfolioID: p.ID,
			Changes: map[string]any{"name": p.Name, "portfolio_type": p.PortfolioType}}, nil
	})
	return p.Clone(), err
}

// UpdatePortfolio merges u into the portfolio and refreshes lastUpdated.
// Totals are not recomputed, so values set through u stand as given.
func (s *Store) UpdatePortfolio(id string, u models.PortfolioUpdate) (models.Portfolio, error) {
	var updated models.Portfolio
	err := s.mutate(func(now time.Time) (Event, error) {
		i := s.portfolioIndex(id)
		if i < 0 {
			return Event{}, apperrors.ErrPortfolioNotFound
		}
		p := &s.portfolios[i]
		u.Apply(p)
		p.LastUpdated = now
		updated = p.Clone()
		return Event{Action: ActionUpdated, Resource: ResourcePortfolio, ResourceID: id, PortfolioID: id,
			Changes: portfolioChanges(u)}, nil
	})
	return updated, err
}

// DeletePortfolio removes the portfolio together with every investment it owns.
func (s *Store) DeletePortfolio(id string) error {
	return s.mutate(func(time.Time) (Event, error) {
		i := s.portfolioIndex(id)
		if i < 0 {
			return Event{}, apperrors.ErrPortfolioNotFound
		}
		removed := len(s.portfolios[i].Investments)
		next := make([]models.Portfolio, 0, len(s.portfolios)-1)
		next = append(next, s.portfolios[:i]...)
		next = append(next, s.portfolios[i+1:]...)
		s.portfolios = next
		return Event{Action: ActionDeleted, Resource: ResourcePortfolio, ResourceID: id, PortfolioID: id,
			Changes: map[string]any{"investments_removed": removed}}, nil
	})
}

// RecalculatePortfolio recomputes the portfolio's totals from its
// investments and refreshes lastUpdated. It discards any manual override and
// is safe to call repeatedly.
func (s *Store) RecalculatePortfolio(id string) (models.Portfolio, error) {
	var updated models.Portfolio
	err := s.mutate(func(now time.Time) (Event, error) {
		i := s.portfolioIndex(id)
		if i < 0 {
			return Event{}, apperrors.ErrPortfolioNotFound
		}
		p := &s.portfolios[i]
		applyTotals(p)
		p.LastUpdated = now
		updated = p.Clone()
		return Event{Action: ActionRecalculated, Resource: ResourcePortfolio, ResourceID: id, PortfolioID: id,
			Changes: totalsChanges(p)}, nil
	})
	return updated, err
}

// AddInvestment assigns a new id to inv and appends it to the portfolio named
// by inv.PortfolioID, then recomputes that portfolio's totals.
func (s *Store) AddInvestment(inv models.Investment) (models.Investment, error) {
	err := s.mutate(func(now time.Time) (Event, error) {
		i := s.portfolioIndex(inv.PortfolioID)
		if i < 0 {
			return Event{}, apperrors.ErrPortfolioNotFound
		}
		inv.ID = s.newID()
		p := &s.portfolios[i]
		investments := make([]models.Investment, 0, len(p.Investments)+1)
		investments = append(investments, p.Investments...)
		p.Investments = append(investments, inv)
		applyTotals(p)
		p.LastUpdated = now
		return Event{Action: ActionCreated, Resource: ResourceInvestment, ResourceID: inv.ID, PortfolioID: p.ID,
			Changes: map[string]any{"symbol": inv.Symbol, "shares": inv.Shares.String()}}, nil
	})
	return inv, err
}

// UpdateInvestment merges u into the investment and recomputes the owning
// portfolio's totals.
func (s *Store) UpdateInvestment(portfolioID, investmentID string, u models.InvestmentUpdate) (models.Investment, error) {
	var updated models.Investment
	err := s.mutate(func(now time.Time) (Event, error) {
		i := s.portfolioIndex(portfolioID)
		if i < 0 {
			return Event{}, apperrors.ErrPortfolioNotFound
		}
		p := &s.portfolios[i]
		j := investmentIndex(p.Investments, investmentID)
		if j < 0 {
			return Event{}, apperrors.ErrInvestmentNotFound
		}
		investments := make([]models.Investment, len(p.Investments))
		copy(investments, p.Investments)
		u.Apply(&investments[j])
		p.Investments = investments
		applyTotals(p)
		p.LastUpdated = now
		updated = investments[j]
		return Event{Action: ActionUpdated, Resource: ResourceInvestment, ResourceID: investmentID, PortfolioID: portfolioID,
			Changes: investmentChanges(u)}, nil
	})
	return updated, err
}

// DeleteInvestment removes the investment from its portfolio and recomputes
// the portfolio's totals.
func (s *Store) DeleteInvestment(portfolioID, investmentID string) error {
	return s.mutate(func(now time.Time) (Event, error) {
		i := s.portfolioIndex(portfolioID)
		if i < 0 {
			return Event{}, apperrors.ErrPortfolioNotFound
		}
		p := &s.portfolios[i]
		j := investmentIndex(p.Investments, investmentID)
		if j < 0 {
			return Event{}, apperrors.ErrInvestmentNotFound
		}
		investments := make([]models.Investment, 0, len(p.Investments)-1)
		investments = append(investments, p.Investments[:j]...)
		p.Investments = append(investments, p.Investments[j+1:]...)
		applyTotals(p)
		p.LastUpdated = now
		return Event{Action: ActionDeleted, Resource: ResourceInvestment, ResourceID: investmentID, PortfolioID: portfolioID,
			Changes: totalsChanges(p)}, nil
	})
}

func investmentIndex(investments []models.Investment, id string) int {
	for i := range investments {
		if investments[i].ID == id {
			return i
		}
	}
	return -1
}

func totalsChanges(p *models.Portfolio) map[string]any {
	return map[string]any{
		"total_value":     p.TotalValue.String(),
		"total_gain_loss": p.TotalGainLoss.String(),
	}
}

func portfolioChanges(u models.PortfolioUpdate) map[string]any {
	changes := map[string]any{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.Provider != nil {
		changes["provider"] = *u.Provider
	}
	if u.PortfolioType != nil {
		changes["portfolio_type"] = *u.PortfolioType
	}
	if u.AccountNumber != nil {
		changes["account_number"] = *u.AccountNumber
	}
	if u.TotalValue != nil {
		changes["total_value"] = u.TotalValue.String()
	}
	if u.TotalGainLoss != nil {
		changes["total_gain_loss"] = u.TotalGainLoss.String()
	}
	return changes
}

func investmentChanges(u models.InvestmentUpdate) map[string]any {
	changes := map[string]any{}
	if u.Symbol != nil {
		changes["symbol"] = *u.Symbol
	}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Shares != nil {
		changes["shares"] = u.Shares.String()
	}
	if u.PurchasePrice != nil {
		changes["purchase_price"] = u.PurchasePrice.String()
	}
	if u.CurrentPrice != nil {
		changes["current_price"] = u.CurrentPrice.String()
	}
	if u.PurchaseDate != nil {
		changes["purchase_date"] = u.PurchaseDate.String()
	}
	if u.InvestmentType != nil {
		changes["investment_type"] = *u.InvestmentType
	}
	return changes
}

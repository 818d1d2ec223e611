package services

import (
	"github.com/shopspring/decimal"

	"finboard/internal/models"
	"finboard/internal/store"
)

// portfolioService handles portfolio and investment business logic.
type portfolioService struct {
	store *store.Store
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(st *store.Store) PortfolioServicer {
	return &portfolioService{store: st}
}

// CreatePortfolio adds an empty portfolio. Any totals supplied are kept as a
// manual override until the first investment is added.
func (s *portfolioService) CreatePortfolio(p models.Portfolio) (*models.Portfolio, error) {
	created, err := s.store.AddPortfolio(p)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetOverview returns every portfolio with holding performance and totals.
func (s *portfolioService) GetOverview() (*PortfolioOverview, error) {
	portfolios := s.store.Portfolios()

	overview := &PortfolioOverview{Portfolios: make([]PortfolioView, 0, len(portfolios))}
	for _, p := range portfolios {
		overview.Portfolios = append(overview.Portfolios, newPortfolioView(p))
		overview.TotalValue = overview.TotalValue.Add(p.TotalValue)
		overview.TotalGainLoss = overview.TotalGainLoss.Add(p.TotalGainLoss)
	}
	overview.GainLossPct = portfolioGainPct(overview.TotalValue, overview.TotalGainLoss)
	return overview, nil
}

// GetPortfolio returns one portfolio with holding performance.
func (s *portfolioService) GetPortfolio(id string) (*PortfolioView, error) {
	p, err := s.store.Portfolio(id)
	if err != nil {
		return nil, err
	}
	view := newPortfolioView(p)
	return &view, nil
}

// UpdatePortfolio merges updates into a portfolio without recomputing totals.
func (s *portfolioService) UpdatePortfolio(id string, u models.PortfolioUpdate) (*models.Portfolio, error) {
	updated, err := s.store.UpdatePortfolio(id, u)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePortfolio removes a portfolio and its investments.
func (s *portfolioService) DeletePortfolio(id string) error {
	return s.store.DeletePortfolio(id)
}

// RecalculatePortfolio recomputes a portfolio's totals from its holdings.
func (s *portfolioService) RecalculatePortfolio(id string) (*models.Portfolio, error) {
	updated, err := s.store.RecalculatePortfolio(id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddInvestment adds a holding to the portfolio named by inv.PortfolioID.
func (s *portfolioService) AddInvestment(inv models.Investment) (*models.Investment, error) {
	created, err := s.store.AddInvestment(inv)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateInvestment merges updates into a holding and recomputes its portfolio.
func (s *portfolioService) UpdateInvestment(portfolioID, investmentID string, u models.InvestmentUpdate) (*models.Investment, error) {
	updated, err := s.store.UpdateInvestment(portfolioID, investmentID, u)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteInvestment removes a holding and recomputes its portfolio.
func (s *portfolioService) DeleteInvestment(portfolioID, investmentID string) error {
	return s.store.DeleteInvestment(portfolioID, investmentID)
}

func newPortfolioView(p models.Portfolio) PortfolioView {
	holdings := make([]HoldingView, 0, len(p.Investments))
	for _, inv := range p.Investments {
		holdings = append(holdings, newHoldingView(inv))
	}
	return PortfolioView{
		Portfolio:   p,
		Investments: holdings,
		GainLossPct: portfolioGainPct(p.TotalValue, p.TotalGainLoss),
	}
}

func newHoldingView(inv models.Investment) HoldingView {
	value := inv.MarketValue()
	cost := inv.CostBasis()
	gain := value.Sub(cost)
	return HoldingView{
		Investment:  inv,
		MarketValue: value,
		CostBasis:   cost,
		GainLoss:    gain,
		GainLossPct: percent(gain, cost),
	}
}

// portfolioGainPct measures gain against the implied cost (value − gain).
// It is zero for portfolios without positive value.
func portfolioGainPct(value, gain decimal.Decimal) float64 {
	if !value.IsPositive() {
		return 0
	}
	return percent(gain, value.Sub(gain))
}

package store

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
)

// Seed is the initial content of a Store.
type Seed struct {
	Transactions []models.Transaction   `json:"transactions"`
	Portfolios   []models.Portfolio     `json:"portfolios"`
	Budgets      []models.Budget        `json:"budgets"`
	Goals        []models.FinancialGoal `json:"goals"`
}

// LoadSeed decodes a JSON seed document.
func LoadSeed(r io.Reader) (Seed, error) {
	var seed Seed
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return Seed{}, apperrors.Wrap(apperrors.ErrInvalidSeed, fmt.Errorf("decode seed: %w", err))
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// Validate checks that ids are present and unique within each collection and
// that investments do not claim a different owner than the portfolio holding
// them.
func (s Seed) Validate() error {
	if err := uniqueIDs("transaction", s.Transactions, func(t models.Transaction) string { return t.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("portfolio", s.Portfolios, func(p models.Portfolio) string { return p.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("budget", s.Budgets, func(b models.Budget) string { return b.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("goal", s.Goals, func(g models.FinancialGoal) string { return g.ID }); err != nil {
		return err
	}
	for _, p := range s.Portfolios {
		if err := uniqueIDs("investment", p.Investments, func(i models.Investment) string { return i.ID }); err != nil {
			return err
		}
		for _, inv := range p.Investments {
			if inv.PortfolioID != "" && inv.PortfolioID != p.ID {
				return apperrors.WithMessage(apperrors.ErrInvalidSeed,
					fmt.Sprintf("investment %s is listed under portfolio %s but references portfolio %s", inv.ID, p.ID, inv.PortfolioID))
			}
		}
	}
	return nil
}

func uniqueIDs[T any](kind string, items []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := id(item)
		if key == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidSeed, kind+" without id")
		}
		if _, dup := seen[key]; dup {
			return apperrors.WithMessage(apperrors.ErrInvalidSeed, fmt.Sprintf("duplicate %s id %q", kind, key))
		}
		seen[key] = struct{}{}
	}
	return nil
}

// clone deep-copies s and replaces nil collections with empty ones.
func (s Seed) clone() Seed {
	out := Seed{
		Transactions: make([]models.Transaction, len(s.Transactions)),
		Portfolios:   make([]models.Portfolio, len(s.Portfolios)),
		Budgets:      make([]models.Budget, len(s.Budgets)),
		Goals:        make([]models.FinancialGoal, len(s.Goals)),
	}
	copy(out.Transactions, s.Transactions)
	copy(out.Budgets, s.Budgets)
	copy(out.Goals, s.Goals)
	for i := range s.Portfolios {
		out.Portfolios[i] = s.Portfolios[i].Clone()
	}
	return out
}

// SampleSeed returns the demo dataset shown on first launch.
func SampleSeed() Seed {
	d := decimal.RequireFromString
	date := models.MustParseDate

	return Seed{
		Transactions: []models.Transaction{
			{ID: "1", Type: models.TransactionTypeIncome, Category: "Salary", Amount: d("5000"), Description: "Monthly salary", Date: date("2024-01-15")},
			{ID: "2", Type: models.TransactionTypeExpense, Category: "Food", Amount: d("450"), Description: "Groceries and dining", Date: date("2024-01-14")},
			{ID: "3", Type: models.TransactionTypeExpense, Category: "Transportation", Amount: d("120"), Description: "Gas and parking", Date: date("2024-01-13")},
			{ID: "4", Type: models.TransactionTypeExpense, Category: "Entertainment", Amount: d("200"), Description: "Movies and subscriptions", Date: date("2024-01-12")},
			{ID: "5", Type: models.TransactionTypeIncome, Category: "Freelance", Amount: d("800"), Description: "Web development project", Date: date("2024-01-10")},
		},
		Portfolios: []models.Portfolio{
			{
				ID:            "1",
				Name:          "DBS Unit Trusts",
				Description:   "Unit trust investments through DBS banking app",
				Provider:      "DBS Bank",
				PortfolioType: models.PortfolioTypeBankingApp,
				AccountNumber: "DBS-123456789",
				Investments: []models.Investment{
					{ID: "1", Symbol: "FSMONE-SG", Name: "FSM One Singapore Growth Fund", Shares: d("1000"), PurchasePrice: d("1.25"), CurrentPrice: d("1.45"),
						PortfolioID: "1", PurchaseDate: date("2023-12-01"), InvestmentType: models.InvestmentTypeUnitTrust},
					{ID: "2", Symbol: "FSMONE-ASIA", Name: "FSM One Asia Pacific Fund", Shares: d("800"), PurchasePrice: d("1.80"), CurrentPrice: d("1.95"),
						PortfolioID: "1", PurchaseDate: date("2023-11-15"), InvestmentType: models.InvestmentTypeUnitTrust},
				},
				LastUpdated: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			},
			{
				ID:            "2",
				Name:          "StashAway Portfolio",
				Description:   "Robo-advisor diversified portfolio",
				Provider:      "StashAway",
				PortfolioType: models.PortfolioTypeRoboAdvisor,
				AccountNumber: "SA-987654321",
				Investments: []models.Investment{
					{ID: "3", Symbol: "STASHAWAY-CORE", Name: "StashAway Core Portfolio", Shares: d("1"), PurchasePrice: d("15000"), CurrentPrice: d("15800"),
						PortfolioID: "2", PurchaseDate: date("2023-10-20"), InvestmentType: models.InvestmentTypeETF},
				},
				LastUpdated: time.Date(2024, 1, 14, 16, 45, 0, 0, time.UTC),
			},
			{
				ID:            "3",
				Name:          "Great Eastern ILP",
				Description:   "Investment-linked insurance plan",
				Provider:      "Great Eastern",
				PortfolioType: models.PortfolioTypeInsuranceLinked,
				AccountNumber: "GE-ILP-456789",
				Investments: []models.Investment{
					{ID: "4", Symbol: "GE-ILPFUND", Name: "Great Eastern ILP Growth Fund", Shares: d("5000"), PurchasePrice: d("2.20"), CurrentPrice: d("2.35"),
						PortfolioID: "3", PurchaseDate: date("2023-09-10"), InvestmentType: models.InvestmentTypeUnitTrust},
				},
				LastUpdated: time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC),
			},
		},
		Budgets: []models.Budget{
			{ID: "1", Category: "Food", Allocated: d("600"), Spent: d("450"), Month: "2024-01"},
			{ID: "2", Category: "Transportation", Allocated: d("200"), Spent: d("120"), Month: "2024-01"},
			{ID: "3", Category: "Entertainment", Allocated: d("300"), Spent: d("200"), Month: "2024-01"},
			{ID: "4", Category: "Utilities", Allocated: d("250"), Spent: d("180"), Month: "2024-01"},
		},
		Goals: []models.FinancialGoal{
			{ID: "1", Title: "Emergency Fund", TargetAmount: d("10000"), CurrentAmount: d("6500"), Deadline: date("2024-12-31"), Category: "Savings"},
			{ID: "2", Title: "Vacation Fund", TargetAmount: d("3000"), CurrentAmount: d("1200"), Deadline: date("2024-06-30"), Category: "Travel"},
			{ID: "3", Title: "New Car", TargetAmount: d("25000"), CurrentAmount: d("8500"), Deadline: date("2025-03-31"), Category: "Transportation"},
		},
	}
}

package services

import (
	"github.com/shopspring/decimal"

	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/store"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type   *models.TransactionType
	Search string // case-insensitive match on description or category
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(tx models.Transaction) (*models.Transaction, error)
	GetTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// HoldingView is an investment with its performance computed at read time.
type HoldingView struct {
	models.Investment
	MarketValue decimal.Decimal `json:"market_value" swaggertype:"number"`
	CostBasis   decimal.Decimal `json:"cost_basis" swaggertype:"number"`
	GainLoss    decimal.Decimal `json:"gain_loss" swaggertype:"number"`
	GainLossPct float64         `json:"gain_loss_pct"`
}

// PortfolioView is a portfolio with per-holding performance.
type PortfolioView struct {
	models.Portfolio
	Investments []HoldingView `json:"investments"`
	GainLossPct float64       `json:"gain_loss_pct"`
}

// PortfolioOverview aggregates every portfolio.
type PortfolioOverview struct {
	Portfolios    []PortfolioView `json:"portfolios"`
	TotalValue    decimal.Decimal `json:"total_value" swaggertype:"number"`
	TotalGainLoss decimal.Decimal `json:"total_gain_loss" swaggertype:"number"`
	GainLossPct   float64         `json:"gain_loss_pct"`
}

// PortfolioServicer defines the contract for portfolio and investment business logic.
type PortfolioServicer interface {
	CreatePortfolio(p models.Portfolio) (*models.Portfolio, error)
	GetOverview() (*PortfolioOverview, error)
	GetPortfolio(id string) (*PortfolioView, error)
	UpdatePortfolio(id string, u models.PortfolioUpdate) (*models.Portfolio, error)
	DeletePortfolio(id string) error
	RecalculatePortfolio(id string) (*models.Portfolio, error)
	AddInvestment(inv models.Investment) (*models.Investment, error)
	UpdateInvestment(portfolioID, investmentID string, u models.InvestmentUpdate) (*models.Investment, error)
	DeleteInvestment(portfolioID, investmentID string) error
}

// BudgetProgress contains spending vs allocation for one budget.
type BudgetProgress struct {
	models.Budget
	Remaining    decimal.Decimal `json:"remaining" swaggertype:"number"`
	SpentPct     float64         `json:"spent_pct"`
	IsOverBudget bool            `json:"is_over_budget"`
}

// BudgetSummary aggregates a set of budgets.
type BudgetSummary struct {
	TotalAllocated decimal.Decimal `json:"total_allocated" swaggertype:"number"`
	TotalSpent     decimal.Decimal `json:"total_spent" swaggertype:"number"`
	Remaining      decimal.Decimal `json:"remaining" swaggertype:"number"`
	WithinBudget   int             `json:"within_budget"`
	Categories     int             `json:"categories"`
	SavedPct       float64         `json:"saved_pct"`
}

// BudgetServicer defines the contract for budget-related business logic.
// Budgets are read-only.
type BudgetServicer interface {
	GetBudgets(month string) ([]BudgetProgress, error)
	GetSummary(month string) (*BudgetSummary, error)
}

// GoalProgress contains a goal with its progress computed at read time.
type GoalProgress struct {
	models.FinancialGoal
	Remaining     decimal.Decimal `json:"remaining" swaggertype:"number"`
	ProgressPct   float64         `json:"progress_pct"`
	IsCompleted   bool            `json:"is_completed"`
	IsOverdue     bool            `json:"is_overdue"`
	DaysRemaining int             `json:"days_remaining"`
}

// GoalList is the goals view: every goal plus totals.
type GoalList struct {
	Goals       []GoalProgress  `json:"goals"`
	TotalSaved  decimal.Decimal `json:"total_saved" swaggertype:"number"`
	TotalTarget decimal.Decimal `json:"total_target" swaggertype:"number"`
	Completed   int             `json:"completed"`
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(g models.FinancialGoal) (*models.FinancialGoal, error)
	GetGoals() (*GoalList, error)
	Contribute(id string, amount decimal.Decimal) (*GoalProgress, error)
}

// CategoryTotal is the spend of one expense category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"number"`
	SharePct float64         `json:"share_pct"`
}

// DashboardDisplay holds the headline figures formatted in the display currency.
type DashboardDisplay struct {
	NetWorth       string `json:"net_worth"`
	PortfolioValue string `json:"portfolio_value"`
	TotalExpenses  string `json:"total_expenses"`
	GoalSavings    string `json:"goal_savings"`
}

// Dashboard contains the headline statistics across all collections.
type Dashboard struct {
	Currency           string               `json:"currency"`
	TotalIncome        decimal.Decimal      `json:"total_income" swaggertype:"number"`
	TotalExpenses      decimal.Decimal      `json:"total_expenses" swaggertype:"number"`
	NetWorth           decimal.Decimal      `json:"net_worth" swaggertype:"number"`
	PortfolioValue     decimal.Decimal      `json:"portfolio_value" swaggertype:"number"`
	PortfolioGainLoss  decimal.Decimal      `json:"portfolio_gain_loss" swaggertype:"number"`
	GoalSavings        decimal.Decimal      `json:"goal_savings" swaggertype:"number"`
	ExpenseBreakdown   []CategoryTotal      `json:"expense_breakdown"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
	Display            DashboardDisplay     `json:"display"`
}

// DashboardServicer defines the contract for the dashboard view.
type DashboardServicer interface {
	GetDashboard() (*Dashboard, error)
}

// AuditFilter holds optional filter parameters for listing audit entries.
type AuditFilter struct {
	Resource   string
	ResourceID string
}

// AuditServicer defines the contract for audit logging of store mutations.
type AuditServicer interface {
	Record(ev store.Event)
	GetEntries(filter AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

// Package server assembles the HTTP router that exposes the finance store
// to the web front end.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finboard/internal/docs" // Import swagger docs
	"finboard/internal/handlers"
	"finboard/internal/middleware"
	"finboard/internal/services"
)

// Services bundles the view services the router serves.
type Services struct {
	Transactions services.TransactionServicer
	Portfolios   services.PortfolioServicer
	Budgets      services.BudgetServicer
	Goals        services.GoalServicer
	Dashboard    services.DashboardServicer
	Audit        services.AuditServicer
}

// NewRouter builds the Gin engine with middleware, health check, Swagger UI
// and the /api/v1 routes.
func NewRouter(svc Services, corsOrigin string) *gin.Engine {
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions)
	portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolios)
	investmentHandler := handlers.NewInvestmentHandler(svc.Portfolios)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets)
	goalHandler := handlers.NewGoalHandler(svc.Goals)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	auditHandler := handlers.NewAuditHandler(svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(corsOrigin))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.GET("/dashboard", dashboardHandler.GetDashboard)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)

	// Portfolio routes
	portfolios := v1.Group("/portfolios")
	portfolios.GET("", portfolioHandler.GetPortfolios)
	portfolios.POST("", portfolioHandler.CreatePortfolio)
	portfolios.GET("/:id", portfolioHandler.GetPortfolio)
	portfolios.PUT("/:id", portfolioHandler.UpdatePortfolio)
	portfolios.DELETE("/:id", portfolioHandler.DeletePortfolio)
	portfolios.POST("/:id/recalculate", portfolioHandler.RecalculatePortfolio)
	portfolios.POST("/:id/investments", investmentHandler.AddInvestment)
	portfolios.PUT("/:id/investments/:investmentId", investmentHandler.UpdateInvestment)
	portfolios.DELETE("/:id/investments/:investmentId", investmentHandler.DeleteInvestment)

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/summary", budgetHandler.GetBudgetSummary)

	// Goal routes
	goals := v1.Group("/goals")
	goals.GET("", goalHandler.GetGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.POST("/:id/contributions", goalHandler.Contribute)

	v1.GET("/audit", auditHandler.GetAuditEntries)

	return router
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finboard/internal/models"
	"finboard/internal/services"
)

// PortfolioHandler handles portfolio-related requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// CreatePortfolioRequest represents the request payload for creating a portfolio.
// Totals are optional and act as a manual value until the first holding is added.
type CreatePortfolioRequest struct {
	Name          string               `json:"name" binding:"required,max=100"`
	Description   string               `json:"description" binding:"max=500"`
	Provider      string               `json:"provider" binding:"required,max=100"`
	PortfolioType models.PortfolioType `json:"portfolio_type" binding:"required,portfolio_type"`
	AccountNumber string               `json:"account_number" binding:"max=50"`
	TotalValue    decimal.Decimal      `json:"total_value" swaggertype:"number"`
	TotalGainLoss decimal.Decimal      `json:"total_gain_loss" swaggertype:"number"`
}

// UpdatePortfolioRequest represents the request payload for updating a portfolio.
type UpdatePortfolioRequest struct {
	Name          *string               `json:"name" binding:"omitempty,min=1,max=100"`
	Description   *string               `json:"description" binding:"omitempty,max=500"`
	Provider      *string               `json:"provider" binding:"omitempty,min=1,max=100"`
	PortfolioType *models.PortfolioType `json:"portfolio_type" binding:"omitempty,portfolio_type"`
	AccountNumber *string               `json:"account_number" binding:"omitempty,max=50"`
	TotalValue    *decimal.Decimal      `json:"total_value" swaggertype:"number"`
	TotalGainLoss *decimal.Decimal      `json:"total_gain_loss" swaggertype:"number"`
}

// CreatePortfolio handles the creation of a new portfolio
// @Summary     Create a portfolio
// @Description Create a new, empty portfolio
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       request body CreatePortfolioRequest true "Portfolio details"
// @Success     201 {object} models.Portfolio "Portfolio created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios [post]
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	var req CreatePortfolioRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(models.Portfolio{
		Name:          req.Name,
		Description:   req.Description,
		Provider:      req.Provider,
		PortfolioType: req.PortfolioType,
		AccountNumber: req.AccountNumber,
		TotalValue:    req.TotalValue,
		TotalGainLoss: req.TotalGainLoss,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"portfolio": portfolio})
}

// GetPortfolios handles the portfolio overview
// @Summary     List portfolios
// @Description Get every portfolio with holding performance and aggregate totals
// @Tags        portfolios
// @Produce     json
// @Success     200 {object} services.PortfolioOverview "Portfolio overview"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios [get]
func (h *PortfolioHandler) GetPortfolios(c *gin.Context) {
	overview, err := h.portfolioService.GetOverview()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetPortfolio handles the retrieval of a single portfolio
// @Summary     Get portfolio
// @Description Get a portfolio with holding performance
// @Tags        portfolios
// @Produce     json
// @Param       id path string true "Portfolio ID"
// @Success     200 {object} services.PortfolioView "Portfolio details"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id} [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	view, err := h.portfolioService.GetPortfolio(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolio": view})
}

// UpdatePortfolio handles updating a portfolio
// @Summary     Update portfolio
// @Description Update portfolio details. Totals sent here override the computed values until the next recalculation.
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       id      path string                 true "Portfolio ID"
// @Param       request body UpdatePortfolioRequest true "Fields to update"
// @Success     200 {object} models.Portfolio "Updated portfolio"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id} [put]
func (h *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
	var req UpdatePortfolioRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	portfolio, err := h.portfolioService.UpdatePortfolio(c.Param("id"), models.PortfolioUpdate{
		Name:          req.Name,
		Description:   req.Description,
		Provider:      req.Provider,
		PortfolioType: req.PortfolioType,
		AccountNumber: req.AccountNumber,
		TotalValue:    req.TotalValue,
		TotalGainLoss: req.TotalGainLoss,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolio": portfolio})
}

// DeletePortfolio handles deleting a portfolio and its holdings
// @Summary     Delete portfolio
// @Description Delete a portfolio together with all of its investments
// @Tags        portfolios
// @Produce     json
// @Param       id path string true "Portfolio ID"
// @Success     200 {object} map[string]string "Portfolio deleted"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id} [delete]
func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	if err := h.portfolioService.DeletePortfolio(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio deleted successfully"})
}

// RecalculatePortfolio handles refreshing a portfolio's totals
// @Summary     Recalculate portfolio
// @Description Recompute total value and gain/loss from the current holdings
// @Tags        portfolios
// @Produce     json
// @Param       id path string true "Portfolio ID"
// @Success     200 {object} models.Portfolio "Recalculated portfolio"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id}/recalculate [post]
func (h *PortfolioHandler) RecalculatePortfolio(c *gin.Context) {
	portfolio, err := h.portfolioService.RecalculatePortfolio(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolio": portfolio})
}

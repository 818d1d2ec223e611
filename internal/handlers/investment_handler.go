package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finboard/internal/models"
	"finboard/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	portfolioService services.PortfolioServicer
	now              func() time.Time
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(portfolioService services.PortfolioServicer) *InvestmentHandler {
	return &InvestmentHandler{portfolioService: portfolioService, now: time.Now}
}

// AddInvestmentRequest represents the request payload for adding an investment.
type AddInvestmentRequest struct {
	Symbol         string                `json:"symbol" binding:"required,max=50"`
	Name           string                `json:"name" binding:"required,max=200"`
	Shares         decimal.Decimal       `json:"shares" swaggertype:"number" binding:"gte=0"`
	PurchasePrice  decimal.Decimal       `json:"purchase_price" swaggertype:"number" binding:"gte=0"`
	CurrentPrice   decimal.Decimal       `json:"current_price" swaggertype:"number" binding:"gte=0"`
	PurchaseDate   models.Date           `json:"purchase_date" swaggertype:"string" example:"2024-01-15"`
	InvestmentType models.InvestmentType `json:"investment_type" binding:"required,investment_type"`
}

// UpdateInvestmentRequest represents the request payload for updating an investment.
type UpdateInvestmentRequest struct {
	Symbol         *string                `json:"symbol" binding:"omitempty,min=1,max=50"`
	Name           *string                `json:"name" binding:"omitempty,min=1,max=200"`
	Shares         *decimal.Decimal       `json:"shares" swaggertype:"number" binding:"omitempty,gte=0"`
	PurchasePrice  *decimal.Decimal       `json:"purchase_price" swaggertype:"number" binding:"omitempty,gte=0"`
	CurrentPrice   *decimal.Decimal       `json:"current_price" swaggertype:"number" binding:"omitempty,gte=0"`
	PurchaseDate   *models.Date           `json:"purchase_date" swaggertype:"string"`
	InvestmentType *models.InvestmentType `json:"investment_type" binding:"omitempty,investment_type"`
}

// AddInvestment handles adding a holding to a portfolio
// @Summary     Add investment
// @Description Add a holding to a portfolio and recompute its totals
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Portfolio ID"
// @Param       request body AddInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id}/investments [post]
func (h *InvestmentHandler) AddInvestment(c *gin.Context) {
	var req AddInvestmentRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.portfolioService.AddInvestment(models.Investment{
		Symbol:         req.Symbol,
		Name:           req.Name,
		Shares:         req.Shares,
		PurchasePrice:  req.PurchasePrice,
		CurrentPrice:   req.CurrentPrice,
		PortfolioID:    c.Param("id"),
		PurchaseDate:   dateOrToday(req.PurchaseDate, h.now),
		InvestmentType: req.InvestmentType,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// UpdateInvestment handles updating a holding
// @Summary     Update investment
// @Description Update a holding (e.g. its current price) and recompute the portfolio totals
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       id           path string                  true "Portfolio ID"
// @Param       investmentId path string                  true "Investment ID"
// @Param       request      body UpdateInvestmentRequest true "Fields to update"
// @Success     200 {object} models.Investment "Updated investment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Portfolio or investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id}/investments/{investmentId} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	var req UpdateInvestmentRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.portfolioService.UpdateInvestment(c.Param("id"), c.Param("investmentId"), models.InvestmentUpdate{
		Symbol:         req.Symbol,
		Name:           req.Name,
		Shares:         req.Shares,
		PurchasePrice:  req.PurchasePrice,
		CurrentPrice:   req.CurrentPrice,
		PurchaseDate:   req.PurchaseDate,
		InvestmentType: req.InvestmentType,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// DeleteInvestment handles removing a holding
// @Summary     Delete investment
// @Description Remove a holding and recompute the portfolio totals
// @Tags        investments
// @Produce     json
// @Param       id           path string true "Portfolio ID"
// @Param       investmentId path string true "Investment ID"
// @Success     200 {object} map[string]string "Investment deleted"
// @Failure     404 {object} ErrorResponse "Portfolio or investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id}/investments/{investmentId} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	if err := h.portfolioService.DeleteInvestment(c.Param("id"), c.Param("investmentId")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted successfully"})
}

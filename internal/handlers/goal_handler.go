package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"
)

// GoalHandler handles goal-related requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Title         string          `json:"title" binding:"required,max=100"`
	TargetAmount  decimal.Decimal `json:"target_amount" swaggertype:"number" binding:"gt=0"`
	CurrentAmount decimal.Decimal `json:"current_amount" swaggertype:"number" binding:"gte=0"`
	Deadline      models.Date     `json:"deadline" swaggertype:"string" example:"2024-12-31"`
	Category      string          `json:"category" binding:"max=100"`
}

// ContributionRequest represents the request payload for contributing to a goal.
type ContributionRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`
}

// CreateGoal handles the creation of a new goal
// @Summary     Create a goal
// @Description Create a new savings goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.FinancialGoal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	if req.Deadline.IsZero() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "deadline is required"))
		return
	}

	goal, err := h.goalService.CreateGoal(models.FinancialGoal{
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Category:      req.Category,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals handles the retrieval of goals with progress
// @Summary     List goals
// @Description Get every goal with progress, days remaining and totals
// @Tags        goals
// @Produce     json
// @Success     200 {object} services.GoalList "Goals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	list, err := h.goalService.GetGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Contribute handles adding money to a goal
// @Summary     Contribute to goal
// @Description Add an amount to a goal. The saved amount never exceeds the target.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Goal ID"
// @Param       request body ContributionRequest true "Contribution"
// @Success     200 {object} services.GoalProgress "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid contribution"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/contributions [post]
func (h *GoalHandler) Contribute(c *gin.Context) {
	var req ContributionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.Contribute(c.Param("id"), req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

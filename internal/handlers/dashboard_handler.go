package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/services"
)

// DashboardHandler serves the dashboard view.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles the dashboard statistics
// @Summary     Dashboard
// @Description Get income, expenses, net worth, portfolio and goal totals
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.GetDashboard()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

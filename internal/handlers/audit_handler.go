package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/pagination"
	"finboard/internal/services"
)

// AuditHandler serves the audit trail of store mutations.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// GetAuditEntries handles listing the audit trail
// @Summary     List audit entries
// @Description Get recorded store mutations, newest first
// @Tags        audit
// @Produce     json
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Param       resource    query string false "Filter by resource (transaction, portfolio, investment, goal)"
// @Param       resource_id query string false "Filter by resource ID"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Paginated audit entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /audit [get]
func (h *AuditHandler) GetAuditEntries(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.AuditFilter{
		Resource:   c.Query("resource"),
		ResourceID: c.Query("resource_id"),
	}

	result, err := h.auditService.GetEntries(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

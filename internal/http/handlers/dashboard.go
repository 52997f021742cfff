package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardSummary returns the four admin-home counters.
func (h *Handlers) GetDashboardSummary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	summary, err := h.dashboard(c).Summary(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCounterSummary aggregates each approved counter master's paid orders,
// 15 masters per page, optionally scoped to ?selectedDate=DD/MM/YYYY.
func (h *Handlers) GetCounterSummary(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	res, err := h.counters(c).Summary(ctx, c.Query("selectedDate"), page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBuses lists every bus as a card with derived availability and countdown.
func (h *Handlers) GetBuses(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	cards, err := h.buses(c).List(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": cards})
}

// GetBusByID renders one bus with date-scoped seats and its fare plan.
// ?selectedDate=DD/MM/YYYY defaults to today.
func (h *Handlers) GetBusByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	detail, err := h.buses(c).Detail(ctx, c.Param("id"), c.Query("selectedDate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

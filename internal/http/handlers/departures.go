package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDepartures returns the latest tracked snapshot per bus, sorted by name.
func (h *Handlers) GetDepartures(c *gin.Context) {
	if h.Board == nil {
		RespondError(c, http.StatusServiceUnavailable, "departure tracking is not running", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"departures": h.Board.Snapshots()})
}

// WatchDeparture re-scopes one bus's tracker to ?selectedDate=DD/MM/YYYY, or
// back to the unscoped view when the parameter is empty.
func (h *Handlers) WatchDeparture(c *gin.Context) {
	if h.Board == nil {
		RespondError(c, http.StatusServiceUnavailable, "departure tracking is not running", nil)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.Board.Watch(ctx, c.Param("id"), c.Query("selectedDate")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "tracking updated"})
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPaymentHistory renders one bus's seat-level sales, optionally scoped to
// ?selectedDate=DD/MM/YYYY.
func (h *Handlers) GetPaymentHistory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	res, err := h.payments(c).History(ctx, c.Param("busName"), c.Query("selectedDate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteSeat removes one seat allocation (?confirm=true) and returns the
// re-fetched history.
func (h *Handlers) DeleteSeat(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	res, err := h.payments(c).DeleteSeat(ctx, c.Param("busName"), c.Param("seatId"), c.Query("selectedDate"), confirmQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ClearSeats wipes every allocation for a bus (?confirm=true) and returns the
// re-fetched history.
func (h *Handlers) ClearSeats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	res, err := h.payments(c).ClearSeats(ctx, c.Param("busName"), c.Query("selectedDate"), confirmQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

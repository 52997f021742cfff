package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CounterSummaryPDF streams the counter-master sales table as a PDF download.
func (h *Handlers) CounterSummaryPDF(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	data, filename, err := h.docs(c).CounterSummaryPDF(ctx, c.Query("selectedDate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// PaymentHistoryPDF streams one bus's payment history as a PDF download.
func (h *Handlers) PaymentHistoryPDF(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	data, filename, err := h.docs(c).PaymentHistoryPDF(ctx, c.Param("busName"), c.Query("selectedDate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

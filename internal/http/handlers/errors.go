package handlers

import (
	"net/http"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Upstream failures
// come back as 502 with the remote status attached so the admin UI can tell
// "the BRTC API is down" apart from "the gateway broke".
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsUpstream(err):
		payload := gin.H{
			"message":    err.Error(),
			"request_id": middleware.GetRequestID(c),
		}
		if status := domain.UpstreamStatus(err); status > 0 {
			payload["upstreamStatus"] = status
		}
		c.JSON(http.StatusBadGateway, payload)
	default:
		RespondError(c, http.StatusInternalServerError, "internal error", nil)
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"brtc-gateway/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// pageQuery reads the 1-based ?page= parameter, defaulting to 1.
func pageQuery(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		RespondError(c, http.StatusBadRequest, "invalid page parameter", err)
		return 0, false
	}
	return page, true
}

// confirmQuery reads the ?confirm= flag guarding destructive routes. The
// services reject unconfirmed writes; handlers only relay the flag.
func confirmQuery(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}

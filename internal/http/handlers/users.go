package handlers

import (
	"context"
	"net/http"

	"brtc-gateway/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetMembers lists role=="member" users, 12 per page.
func (h *Handlers) GetMembers(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	res, err := h.users(c).Members(ctx, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteMember removes a member. The write is guarded by ?confirm=true and
// the response carries the re-fetched first page of members.
func (h *Handlers) DeleteMember(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	res, err := h.users(c).Delete(ctx, c.Param("id"), confirmQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": domain.UserDeletedMessage,
		"members": res,
	})
}

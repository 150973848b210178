package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchUsers GET /users?query=
func (h *Handler) SearchUsers(c *gin.Context) {
	users, err := h.Services.SearchUsers(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchFilms GET /movies?query=
func (h *Handler) SearchFilms(c *gin.Context) {
	films, err := h.Services.SearchFilms(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

// GetFilm GET /movies/:id
func (h *Handler) GetFilm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	film, err := h.Services.GetFilm(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// Categories GET /categories
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.Services.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dcurrasv25/filmbox-backend/internal/middleware"
	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/dcurrasv25/filmbox-backend/internal/service"
	"github.com/dcurrasv25/filmbox-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AddToList PUT /<list>/:filmId
func (h *Handler) AddToList(kind model.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		filmID, ok := pathID(c, "filmId")
		if !ok {
			return
		}
		u := middleware.CurrentUser(c)

		outcome, err := h.Services.Ledger.Add(c.Request.Context(), kind, u.ID, filmID)
		if err != nil {
			h.respondError(c, err)
			return
		}

		if outcome == service.AlreadyExists {
			utils.Message(c, http.StatusOK, fmt.Sprintf("Movie already in %s list", kind))
			return
		}
		utils.Message(c, http.StatusCreated, fmt.Sprintf("Movie added to %s list", kind))
	}
}

// RemoveFromList DELETE /<list>/:filmId; favorites answer 204, the others 200 with a message
func (h *Handler) RemoveFromList(kind model.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		filmID, ok := pathID(c, "filmId")
		if !ok {
			return
		}
		u := middleware.CurrentUser(c)

		err := h.Services.Ledger.Remove(c.Request.Context(), kind, u.ID, filmID)
		if errors.Is(err, service.ErrNotInList) {
			utils.NotFound(c, fmt.Sprintf("Movie is not in your %s list", kind))
			return
		}
		if err != nil {
			h.respondError(c, err)
			return
		}

		if kind == model.ListFavorite {
			c.Status(http.StatusNoContent)
			return
		}
		utils.Message(c, http.StatusOK, fmt.Sprintf("Movie removed from %s list", kind))
	}
}

// ListFilms GET /<list>
func (h *Handler) ListFilms(kind model.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := middleware.CurrentUser(c)
		films, err := h.Services.Ledger.List(c.Request.Context(), kind, u.ID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, films)
	}
}

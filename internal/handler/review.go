package handler

import (
	"net/http"

	"github.com/dcurrasv25/filmbox-backend/internal/middleware"
	"github.com/dcurrasv25/filmbox-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// rating is left untyped so both 4.5 and "4.5" reach the service
type reviewRequest struct {
	Rating  interface{} `json:"rating"`
	Comment string      `json:"comment"`
}

// ListReviews GET /movies/:id/reviews?show_all=
func (h *Handler) ListReviews(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}

	listing, err := h.Services.Reviews.List(c.Request.Context(), filmID, service.ParseShowAll(c.Query("show_all")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if listing.Preview != nil {
		c.JSON(http.StatusOK, listing.Preview)
		return
	}
	c.JSON(http.StatusOK, listing.All)
}

// UpsertReview PUT /movies/:id/reviews
func (h *Handler) UpsertReview(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input reviewRequest
	if !h.bindJSON(c, &input) {
		return
	}

	review, created, err := h.Services.Reviews.Upsert(c.Request.Context(), middleware.CurrentUser(c), filmID, service.ReviewInput{
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, review)
}

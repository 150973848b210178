package handler

import (
	"errors"
	"net/http"

	"github.com/dcurrasv25/filmbox-backend/internal/middleware"
	"github.com/dcurrasv25/filmbox-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

// Register POST /register
func (h *Handler) Register(c *gin.Context) {
	var input registerRequest
	if !h.bindJSON(c, &input) {
		return
	}

	u, err := h.Services.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.log.Infow("register_failed", "username", input.Username, "err", err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u.Public(h.AvatarURL))
}

// Login POST /login
func (h *Handler) Login(c *gin.Context) {
	var input loginRequest
	if !h.bindJSON(c, &input) {
		return
	}

	res, err := h.Services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Infow("login_failed", "username", input.Username)
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Logout POST /logout
func (h *Handler) Logout(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if err := h.Services.Logout(c.Request.Context(), u.ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

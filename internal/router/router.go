package router

import (
	"net/http"

	"github.com/dcurrasv25/filmbox-backend/internal/handler"
	"github.com/dcurrasv25/filmbox-backend/internal/logger"
	"github.com/dcurrasv25/filmbox-backend/internal/middleware"
	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New builds the engine with the global middleware chain and every route
func New(h *handler.Handler, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	if log != nil {
		r.Use(middleware.Logger(log))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	RegisterRoutes(r, h, log)
	return r
}

// RegisterRoutes registers all routes
func RegisterRoutes(r *gin.Engine, h *handler.Handler, log *logger.Logger) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// every API route resolves the caller; anonymous is allowed unless RequireAuth follows
	api := r.Group("/", middleware.Authenticate(h.Services.Authorization, log))
	requireAuth := middleware.RequireAuth()

	// ==================== auth ====================
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", requireAuth, h.Logout)

	// ==================== catalogue ====================
	api.GET("/movies", h.SearchFilms)
	api.GET("/movies/:id", h.GetFilm)
	api.GET("/movies/:id/reviews", h.ListReviews)
	api.PUT("/movies/:id/reviews", requireAuth, h.UpsertReview)
	api.GET("/categories", h.Categories)

	// ==================== per-user lists ====================
	for _, kind := range model.ListKinds {
		lists := api.Group("/"+string(kind), requireAuth)
		{
			lists.GET("", h.ListFilms(kind))
			lists.PUT("/:filmId", h.AddToList(kind))
			lists.DELETE("/:filmId", h.RemoveFromList(kind))
		}
	}

	// ==================== users ====================
	api.GET("/users", requireAuth, h.SearchUsers)
}

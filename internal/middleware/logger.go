package middleware

import (
	"time"

	"github.com/dcurrasv25/filmbox-backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Logger request log middleware
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Infow("http_request",
			"method", c.Request.Method,
			"path", path,
			"ip", c.ClientIP(),
			"status", statusOf(c),
			"latency", time.Since(start),
		)
	}
}

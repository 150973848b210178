package middleware

import (
	"context"
	"net/http"

	"github.com/dcurrasv25/filmbox-backend/internal/logger"
	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/dcurrasv25/filmbox-backend/internal/service"
	"github.com/dcurrasv25/filmbox-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

const identityKey = "filmbox.identity"

// Resolver turns an Authorization header into an identity.
type Resolver interface {
	Resolve(ctx context.Context, authHeader string) (service.Identity, error)
}

// Authenticate resolves the caller once per request and stores the identity in
// the gin context. Unknown or malformed tokens continue as anonymous.
func Authenticate(resolver Resolver, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			if log != nil {
				log.Errorw("resolve_identity_failed", "path", c.Request.URL.Path, "err", err)
			}
			utils.InternalServerError(c, "")
			c.Abort()
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireAuth rejects anonymous callers with 401. Must run after Authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			utils.Unauthorized(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity resolved caller; anonymous when Authenticate did not run
func Identity(c *gin.Context) service.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(service.Identity); ok {
			return id
		}
	}
	return service.Identity{}
}

// CurrentUser the authenticated user, or nil
func CurrentUser(c *gin.Context) *model.User {
	return Identity(c).User
}

// statusOf is used by the logger and metrics middlewares
func statusOf(c *gin.Context) int {
	if s := c.Writer.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

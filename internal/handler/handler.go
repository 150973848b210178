package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/dcurrasv25/filmbox-backend/internal/logger"
	"github.com/dcurrasv25/filmbox-backend/internal/service"
	"github.com/dcurrasv25/filmbox-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Handler HTTP layer over the domain services
type Handler struct {
	Services  *service.Service
	AvatarURL string
	log       *logger.Logger
}

var setupValidator sync.Once

// NewHandler creates the handler set. log may be nil.
func NewHandler(services *service.Service, avatarURL string, log *logger.Logger) *Handler {
	setupValidator.Do(registerValidations)
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{Services: services, AvatarURL: avatarURL, log: log}
}

// registerValidations makes binding errors report JSON field names and adds notblank
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

// bindJSON binds the body into dst and writes a 400 on failure.
// Returns false if the request was already answered.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		utils.BadRequest(c, bindingMessage(err))
		return false
	}
	return true
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required", "notblank":
			return fe.Field() + " is required"
		default:
			return fe.Field() + " is invalid"
		}
	}
	return "invalid request body"
}

// pathID parses a positive integer path parameter, answering 400 otherwise
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.BadRequest(c, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

// respondError maps a domain error to its status code; unknown errors are 500
func (h *Handler) respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.BadRequest(c, ve.Message)
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.Unauthorized(c, "invalid credentials")
	case errors.Is(err, service.ErrFilmNotFound):
		utils.NotFound(c, "Movie not found")
	case errors.Is(err, service.ErrUsernameTaken):
		utils.Conflict(c, "username already taken")
	default:
		h.log.Errorw("storage_error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"err", err,
		)
		utils.InternalServerError(c, "")
	}
}

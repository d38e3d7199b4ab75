package panel

import (
	"errors"
	"io"
	"net/http"

	"capstore/apps/storefront/handlers/middleware"
	"capstore/internal/responses"
	"capstore/internal/structs"
	"capstore/pkg/logger"
	"capstore/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		Toggle(c *gin.Context)
		Navigate(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger logger.Logger
	}

	handler struct {
		logger logger.Logger
	}
)

func New(p Params) Handler {
	return &handler{
		logger: p.Logger,
	}
}

func (h *handler) Toggle(c *gin.Context) {
	var (
		response structs.Response
		request  structs.Target
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	if !h.bind(c, &request) {
		response = responses.BadRequest
		return
	}

	response = responses.Success
	response.Payload = middleware.FromContext(c).Toggle(ctx, request.Target)
}

func (h *handler) Navigate(c *gin.Context) {
	var (
		response structs.Response
		request  structs.Target
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	if !h.bind(c, &request) || request.Target == "" {
		response = responses.BadRequest
		return
	}

	response = responses.Success
	response.Payload = middleware.FromContext(c).Navigate(ctx, request.Target)
}

// bind accepts an empty body as "no target".
func (h *handler) bind(c *gin.Context, request *structs.Target) bool {
	err := c.ShouldBindJSON(request)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn(c.Request.Context(), "error parse request", zap.Error(err))
		return false
	}
	return true
}

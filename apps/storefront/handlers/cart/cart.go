package cart

import (
	"errors"
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
		Dispatch(c *gin.Context)
		GetCart(c *gin.Context)
		GetPanel(c *gin.Context)
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

func (h *handler) Dispatch(c *gin.Context) {
	var (
		response structs.Response
		request  structs.Command
		ctx      = c.Request.Context()
		s        = middleware.FromContext(c)
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, "error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	snap, err := s.Dispatch(ctx, request)
	switch {
	case err == nil, errors.Is(err, structs.ErrCartEmpty):
		// an empty checkout is reported to the shopper, not failed
		response = responses.Success
	case errors.Is(err, structs.ErrInvalidProduct), errors.Is(err, structs.ErrUnknownCommand):
		response = responses.BadRequest
	case errors.Is(err, structs.ErrSessionNotFound):
		response = responses.NoSession
		return
	default:
		h.logger.Error(ctx, "err on s.Dispatch", zap.Error(err))
		response = responses.InternalErr
		return
	}
	response.Payload = snap
}

func (h *handler) GetCart(c *gin.Context) {
	var (
		response structs.Response
		s        = middleware.FromContext(c)
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	response = responses.Success
	response.Payload = s.Snapshot()
}

func (h *handler) GetPanel(c *gin.Context) {
	var (
		ctx = c.Request.Context()
		s   = middleware.FromContext(c)
	)

	html, err := s.PanelHTML()
	if err != nil {
		response := responses.InternalErr
		if errors.Is(err, structs.ErrSessionNotFound) {
			response = responses.NoSession
		} else {
			h.logger.Error(ctx, "err on s.PanelHTML", zap.Error(err))
		}
		reply.Json(c.Writer, http.StatusOK, &response)
		return
	}
	reply.HTML(c.Writer, http.StatusOK, html)
}

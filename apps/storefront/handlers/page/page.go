package page

import (
	"net/http"

	"capstore/apps/storefront/handlers/middleware"
	"capstore/internal/catalog"
	"capstore/internal/render"
	"capstore/internal/responses"
	"capstore/internal/session"
	"capstore/pkg/config"
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
		Index(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger   logger.Logger
		Config   config.IConfig
		Sessions session.Service
		Catalog  catalog.Service
		Renderer *render.Renderer
	}

	handler struct {
		logger       logger.Logger
		sessions     session.Service
		catalog      catalog.Service
		renderer     *render.Renderer
		cookieMaxAge int
	}
)

func New(p Params) Handler {
	return &handler{
		logger:       p.Logger,
		sessions:     p.Sessions,
		catalog:      p.Catalog,
		renderer:     p.Renderer,
		cookieMaxAge: int(p.Config.GetDuration("session.ttl").Seconds()),
	}
}

// Index starts a fresh session on every page load; a reload empties the
// cart.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	s := h.sessions.Create(ctx)
	snap := s.Snapshot()

	body, err := h.renderer.Page(render.PageData{
		SessionID: s.ID,
		Products:  h.catalog.List(),
		Badge:     snap.Badge,
		Panel:     snap.Panel,
	})
	if err != nil {
		h.logger.Error(ctx, "err on renderer.Page", zap.Error(err))
		h.sessions.Close(ctx, s.ID)
		response := responses.InternalErr
		reply.Json(c.Writer, http.StatusOK, &response)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, s.ID, h.cookieMaxAge, "/", "", false, true)
	reply.HTML(c.Writer, http.StatusOK, body)
}

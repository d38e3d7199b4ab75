package ws

import (
	"net/http"

	"capstore/apps/storefront/handlers/middleware"
	rtws "capstore/internal/ws"
	"capstore/pkg/config"
	"capstore/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		Events(c *gin.Context)
	}

	Params struct {
		fx.In
		Hub    *rtws.Hub
		Config config.IConfig
		Logger logger.Logger
	}

	handler struct {
		hub      *rtws.Hub
		logger   logger.Logger
		upgrader websocket.Upgrader
		buffer   int
	}
)

func New(p Params) Handler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if !p.Config.GetBool("websocket.check_same_origin") {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	return &handler{
		hub:      p.Hub,
		logger:   p.Logger,
		upgrader: upgrader,
		buffer:   p.Config.GetInt("websocket.send_buffer"),
	}
}

// GET /api/v1/ws?session=<id>
func (h *handler) Events(c *gin.Context) {
	var (
		ctx = c.Request.Context()
		s   = middleware.FromContext(c)
	)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "connection websocket err", zap.Error(err))
		return
	}

	client := rtws.NewClient(s.ID, conn, h.hub, h.buffer)
	h.hub.Register(s.ID, client)
	client.Run()
}

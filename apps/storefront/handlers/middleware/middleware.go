package middleware

import (
	"net/http"

	"capstore/internal/responses"
	"capstore/internal/session"
	"capstore/internal/structs"
	"capstore/pkg/logger"
	"capstore/pkg/reply"
	"capstore/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"
	SessionQuery  = "session"

	sessionKey = "session"
)

var (
	Module = fx.Provide(NewMiddleware)
)

type (
	Middleware interface {
		Ctx() gin.HandlerFunc
		Session() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger   logger.Logger
		Sessions session.Service
	}

	mw struct {
		logger   logger.Logger
		sessions session.Service
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger:   params.Logger,
		sessions: params.Sessions,
	}
}

func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := m.logger.Context(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Session resolves the page session from the header, then the cookie, then
// the query string.
func (m *mw) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			response structs.Response
			ctx      = c.Request.Context()
			id       = SessionID(c)
		)

		s, err := m.sessions.Get(ctx, id)
		if err != nil {
			m.logger.Warn(ctx, "session lookup failed", zap.String("session", id), zap.Error(err))
			response = responses.NoSession

			c.Abort()
			reply.Json(c.Writer, http.StatusOK, &response)
			return
		}

		c.Set(sessionKey, s)
		c.Request = c.Request.WithContext(m.logger.WithSession(ctx, s.ID))
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); !utils.StrEmpty(id) {
		return id
	}
	if id, err := c.Cookie(SessionCookie); err == nil && !utils.StrEmpty(id) {
		return id
	}
	return c.Query(SessionQuery)
}

// FromContext returns the session put there by Session. Handlers mounted
// behind that middleware can rely on it being set.
func FromContext(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

package forms

import (
	"net/http"

	"capstore/apps/storefront/handlers/middleware"
	"capstore/internal/responses"
	"capstore/internal/structs"
	"capstore/internal/texts"
	"capstore/pkg/config"
	"capstore/pkg/logger"
	"capstore/pkg/reply"
	"capstore/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	// Handler takes the page's side forms. They only confirm receipt to the
	// shopper; the cart is never touched.
	Handler interface {
		Sell(c *gin.Context)
		Contact(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger logger.Logger
		Config config.IConfig
	}

	handler struct {
		logger logger.Logger
		lang   utils.Lang
	}
)

func New(p Params) Handler {
	lang, ok := utils.ParseLang(p.Config.GetString("storefront.language"))
	if !ok {
		lang = utils.EN
	}
	return &handler{
		logger: p.Logger,
		lang:   lang,
	}
}

func (h *handler) Sell(c *gin.Context) {
	var (
		response structs.Response
		request  structs.SellItem
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBind(&request)
	if err != nil {
		h.logger.Warn(ctx, "error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	h.logger.Info(ctx, "item listed for sale",
		zap.String("name", request.Name),
		zap.String("price", request.Price),
		zap.String("condition", request.Condition),
		zap.String("email", request.Email),
	)
	middleware.FromContext(c).Notify(ctx, texts.Get(h.lang, texts.SellPublished))

	response = responses.Success
}

func (h *handler) Contact(c *gin.Context) {
	var (
		response structs.Response
		request  structs.Contact
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBind(&request)
	if err != nil {
		h.logger.Warn(ctx, "error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	h.logger.Info(ctx, "contact message received",
		zap.String("name", request.Name),
		zap.String("email", request.Email),
		zap.Int("length", len(request.Message)),
	)
	middleware.FromContext(c).Notify(ctx, texts.Get(h.lang, texts.ContactSent))

	response = responses.Success
}

package router

import (
	"context"
	"errors"
	"net/http"

	"capstore/apps/storefront/handlers/cart"
	"capstore/apps/storefront/handlers/catalog"
	"capstore/apps/storefront/handlers/forms"
	"capstore/apps/storefront/handlers/middleware"
	"capstore/apps/storefront/handlers/page"
	"capstore/apps/storefront/handlers/panel"
	"capstore/apps/storefront/handlers/ws"
	"capstore/pkg/config"
	"capstore/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Page      page.Handler
	Catalog   catalog.Handler
	Cart      cart.Handler
	Panel     panel.Handler
	Forms     forms.Handler
	WS        ws.Handler
}

func NewRouter(params Params) {
	gin.SetMode(params.Config.GetString("gin.mode"))

	r := gin.New()
	Routes(r, params)

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders:   []string{"Content-Type", middleware.SessionHeader},
			AllowedOrigins:   params.Config.GetStringSlice("cors.allowed_origins"),
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowCredentials: true,
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}

func Routes(r *gin.Engine, params Params) {
	r.Use(params.Ctx(), gin.Logger(), gin.Recovery())
	r.GET("/", params.Page.Index)

	baseUrl := "/api/v1"
	out := r.Group(baseUrl)
	{
		out.GET("/catalog", params.Catalog.GetList)
	}

	api := r.Group(baseUrl)
	api.Use(params.Session())

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", params.Cart.GetCart)
		cartGroup.GET("/panel", params.Cart.GetPanel)
		cartGroup.POST("/commands", params.Cart.Dispatch)
	}
	panelGroup := api.Group("/panel")
	{
		panelGroup.POST("/toggle", params.Panel.Toggle)
		panelGroup.POST("/navigate", params.Panel.Navigate)
	}
	formsGroup := api.Group("/forms")
	{
		formsGroup.POST("/sell", params.Forms.Sell)
		formsGroup.POST("/contact", params.Forms.Contact)
	}
	api.GET("/ws", params.WS.Events)
}

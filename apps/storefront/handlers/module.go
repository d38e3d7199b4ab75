package handlers

import (
	"capstore/apps/storefront/handlers/cart"
	"capstore/apps/storefront/handlers/catalog"
	"capstore/apps/storefront/handlers/forms"
	"capstore/apps/storefront/handlers/middleware"
	"capstore/apps/storefront/handlers/page"
	"capstore/apps/storefront/handlers/panel"
	"capstore/apps/storefront/handlers/ws"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	page.Module,
	catalog.Module,
	cart.Module,
	panel.Module,
	forms.Module,
	ws.Module,
)

package storefront

import (
	"capstore/apps/storefront/handlers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	handlers.Module,
)

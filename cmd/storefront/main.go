package main

import (
	"capstore/apps/storefront"
	"capstore/cmd/storefront/router"
	"capstore/internal"
	"capstore/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		storefront.Module,
		router.Module,
		pkg.Module,
		internal.Module,
	).Run()
}

package internal

import (
	"capstore/internal/catalog"
	"capstore/internal/render"
	"capstore/internal/session"
	"capstore/internal/ws"

	"go.uber.org/fx"
)

var Module = fx.Options(
	catalog.Module,
	render.Module,
	ws.Module,
	session.Module,
)

package pkg

import (
	"go.uber.org/fx"

	"capstore/pkg/cache"
	"capstore/pkg/config"
	"capstore/pkg/logger"
	"capstore/pkg/reply"
	"capstore/pkg/timer"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	cache.Module,
	reply.Module,
	timer.Module,
)

package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"giglane/internal/events"
	"giglane/internal/server"
	"giglane/internal/store"
	"giglane/pkg/config"
	"giglane/pkg/gen"
	"giglane/pkg/logger"
	pkgredis "giglane/pkg/redis"
	"giglane/pkg/sequence"
	pkgserver "giglane/pkg/server"
	"giglane/services/command"
	"giglane/services/coupon"
	"giglane/services/lifecycle"
	"giglane/services/reconciler"
)

func options() fx.Option {
	return fx.Options(
		config.Module,
		logger.Module,
		gen.Module,
		pkgredis.Module,
		sequence.Module,
		store.Module,
		events.Module,
		coupon.Module,
		lifecycle.Module,
		reconciler.Module,
		command.Module,
		server.Module,
		fx.Provide(pkgserver.ProvideHTTPServer),
		fx.Invoke(pkgserver.Run),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)
}

func main() {
	if err := fx.ValidateApp(options()); err != nil {
		zap.L().Fatal("invalid application graph", zap.Error(err))
	}
	fx.New(options()).Run()
}

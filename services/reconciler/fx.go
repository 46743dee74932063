package reconciler

import "go.uber.org/fx"

var Module = fx.Module("reconciler",
	fx.Provide(NewService),
)

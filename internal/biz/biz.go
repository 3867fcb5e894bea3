package biz

import "go.uber.org/fx"

var Module = fx.Module("biz",
	fx.Provide(NewAccountUseCase),
	fx.Provide(NewCheckUseCase),
	fx.Provide(NewGuard),
)

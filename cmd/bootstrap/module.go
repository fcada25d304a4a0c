package bootstrap

import (
	"studyspot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)

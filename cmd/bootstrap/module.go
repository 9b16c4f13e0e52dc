package bootstrap

import (
	"chershare/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.EngineModule,
	components.UseCaseModule,
	components.HandlerModule,
)

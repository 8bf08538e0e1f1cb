package bootstrap

import (
	"store-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	components.PersistenceModule,
	MQModule,
	components.UseCaseModule,
	components.HandlerModule,
)

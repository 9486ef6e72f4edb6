package bootstrap

import (
	"seckill-guard/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	JWTModule,
	components.CoordinationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.MessagingModule,
	components.HandlerModule,
)

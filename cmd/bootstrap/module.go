package bootstrap

import (
	"storefront-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	NotifierModule,
	components.UseCaseModule,
	components.HandlerModule,
	ServerModule,
)

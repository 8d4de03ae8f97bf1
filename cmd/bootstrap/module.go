package bootstrap

import (
	"creator-market/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the HTTP service. Order matters only for lifecycle hooks:
// DB opens first and closes last.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

package bootstrap

import (
	"storefront-api/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRecorder,
	),
)

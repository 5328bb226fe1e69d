package bootstrap

import (
	"context"
	"log/slog"

	"storefront-api/internal/infra/repository"
	"storefront-api/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewGateway,
	),
)

// NewGateway owns the store for the lifetime of the app. A store that cannot be reached at
// startup degrades to "not persisted" instead of failing the boot.
func NewGateway(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *repository.Gateway {
	gw := repository.NewGateway(cfg.DB, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			gw.Connect(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			gw.Close()
			return nil
		},
	})

	return gw
}

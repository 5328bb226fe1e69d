package components

import (
	"log/slog"

	"storefront-api/internal/infra/repository"
	"storefront-api/internal/infra/telegram"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/metrics"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecasePortsModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewDisplayFormatter,
		fx.As(new(commands.Timestamper)),
	),
)

var usecasePortsModule = fx.Module("usecase/ports",
	fx.Provide(
		fx.Annotate(
			func(gw *repository.Gateway) *repository.Gateway { return gw },
			fx.As(new(commands.ContactStore)),
			fx.As(new(commands.OrderStore)),
			fx.As(new(queries.StoreStatus)),
		),
		fx.Annotate(
			func(c *telegram.Client) *telegram.Client { return c },
			fx.As(new(commands.Notifier)),
			fx.As(new(queries.TelegramSettings)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewContactUseCase,
		NewOrderUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHealthQueries,
	),
)

func NewDisplayFormatter(cfg config.Config) *clock.DisplayFormatter {
	s := cfg.Submission
	return clock.NewDisplayFormatter(s.TimeZone, s.TimeZoneOffset, s.TimeFormat)
}

func NewOrderUseCase(
	store commands.OrderStore,
	notifier commands.Notifier,
	clk clock.Clock,
	stamp commands.Timestamper,
	cfg config.Config,
	rec *metrics.Recorder,
	logger *slog.Logger,
) commands.OrderCommands {
	return commands.NewOrderUseCase(store, notifier, clk, stamp, cfg.Submission.Currency, rec, logger)
}

package components

import (
	"storefront-api/internal/handler"
	"storefront-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewContactHandler,
		api.NewOrderHandler,
		api.NewSystemHandler,
		func(contact *api.ContactHandler, order *api.OrderHandler, system *api.SystemHandler) handler.Handlers {
			return handler.Handlers{Contact: contact, Order: order, System: system}
		},
	),
	fx.Invoke(handler.NewRouter),
)

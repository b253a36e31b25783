package components

import (
	"seatbook/internal/handler"
	"seatbook/internal/handler/api"
	"seatbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		middleware.NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"chershare/internal/handler"
	"chershare/internal/handler/api"
	"chershare/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewResourceHandler,
		api.NewFactoryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"blueprint-api/internal/handler"
	"blueprint-api/internal/handler/api"
	"blueprint-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewWorkbookHandler,
		api.NewPurchaseHandler,
		api.NewEmailJobHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

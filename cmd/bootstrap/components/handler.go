package components

import (
	"event-reminder/internal/handler"
	"event-reminder/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRunHandler,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"rentafleet/internal/handler"
	"rentafleet/internal/handler/api"
	"rentafleet/internal/handler/middleware"
	"rentafleet/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAdminHandler,
		func(svc *jwt.Service) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(svc)
		},
	),
	fx.Invoke(handler.NewRouter),
)

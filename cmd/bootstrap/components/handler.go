package components

import (
	"parking-occupancy/internal/handler"
	"parking-occupancy/internal/handler/api"
	"parking-occupancy/internal/handler/middleware"
	"parking-occupancy/internal/infra/realtime"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSpotHandler,
		api.NewSessionHandler,
		api.NewTariffHandler,
		func(h *realtime.Hub) api.OccupancyFeed { return h },
		api.NewRealtimeHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Spot     *api.SpotHandler
	Session  *api.SessionHandler
	Tariff   *api.TariffHandler
	Realtime *api.RealtimeHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Spot:     p.Spot,
		Session:  p.Session,
		Tariff:   p.Tariff,
		Realtime: p.Realtime,
	}
}

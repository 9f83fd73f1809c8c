package bootstrap

import (
	"context"

	"parking-occupancy/internal/infra/realtime"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewHub,
	),
)

func NewHub(lc fx.Lifecycle) *realtime.Hub {
	hub := realtime.NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return hub
}

package bootstrap

import (
	"log/slog"

	"parking-occupancy/internal/handler/middleware"
	"parking-occupancy/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		logConfig,
		middleware.NewLogger,
		NewSlogLogger,
	),
)

func logConfig(cfg config.Config) config.LogConfig {
	return cfg.Log
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}

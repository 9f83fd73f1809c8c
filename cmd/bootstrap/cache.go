package bootstrap

import (
	"context"
	"log/slog"

	"parking-occupancy/internal/infra/cache"
	"parking-occupancy/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewStatisticsCache,
	),
)

func NewStatisticsCache(lc fx.Lifecycle, cfg config.Config) (cache.Store, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("statistics cache disabled", "reason", "REDIS_ADDR is empty")
		return cache.NoopStatisticsCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable Redis only degrades statistics to uncached reads
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewStatisticsCache(client, cfg.Redis.StatsTTL), nil
}

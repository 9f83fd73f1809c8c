package bootstrap

import (
	"context"
	"log/slog"

	"parking-occupancy/internal/pkg/config"
	"parking-occupancy/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(registerSeeding),
)

func registerSeeding(lc fx.Lifecycle, cfg config.Config, seed commands.SeedCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := seed.SeedTariffs(ctx); err != nil {
				return err
			}
			if cfg.Bootstrap.AdminEmail == "" {
				return nil
			}
			if _, err := seed.EnsureAdmin(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
				return err
			}
			slog.InfoContext(ctx, "bootstrap admin ready", "email", cfg.Bootstrap.AdminEmail)
			return nil
		},
	})
}

package bootstrap

import (
	"time"

	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
		NewCompatibilityPolicy,
	),
)

// NewLocation is the zone that defines "today" for revenue and date-only history bounds.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Occupancy.Location()
}

func NewCompatibilityPolicy(cfg config.Config) (spot.CompatibilityPolicy, error) {
	return spot.ParseCompatibilityPolicy(cfg.Occupancy.AccessibleVehicleClasses)
}

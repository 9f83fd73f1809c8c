package components

import (
	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/infra/cache"
	"parking-occupancy/internal/infra/notify"
	"parking-occupancy/internal/infra/realtime"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/pkg/jwt"
	"parking-occupancy/internal/usecase"
	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		tariff.NewStandardFeeCalculator,
		fx.As(new(tariff.FeeCalculator)),
	),
	func(j *jwt.Service) commands.TokenIssuer { return j },
	func(c cache.Store) queries.StatisticsCache { return c },
	newEventPublisher,
)

// Cache invalidation runs first so a subscriber reacting to the event never reads a stale snapshot.
func newEventPublisher(stats cache.Store, hub *realtime.Hub) commands.EventPublisher {
	return notify.NewFanout(stats, hub)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOccupancyCommands,
		commands.NewSpotCommands,
		commands.NewTariffCommands,
		commands.NewAuthCommands,
		commands.NewSeedCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSpotQueries,
		queries.NewSessionQueries,
		queries.NewTariffQueries,
		queries.NewStatisticsQueries,
		queries.NewOperatorQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

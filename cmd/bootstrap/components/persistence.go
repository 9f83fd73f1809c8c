package components

import (
	"parking-occupancy/internal/infra/readstore"
	"parking-occupancy/internal/infra/uow"
	"parking-occupancy/internal/usecase/queries"
	"parking-occupancy/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	unitOfWorkModule,
)

// Readstores are stateless; each call receives the DBTX chosen by the UnitOfWork.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewSpotReadStore,
			fx.As(new(queries.SpotReadStore)),
		),
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			readstore.NewTariffReadStore,
			fx.As(new(queries.TariffReadStore)),
		),
		fx.Annotate(
			readstore.NewOperatorReadStore,
			fx.As(new(queries.OperatorReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the UnitOfWork.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

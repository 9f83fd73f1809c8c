package shared

import (
	"context"
	"time"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/domain/session"
	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/domain/vehicle"
	"parking-occupancy/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only snapshot transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Spots() SpotRepository
	Sessions() SessionRepository
	Tariffs() TariffRepository
	Operators() OperatorRepository
	DB() db.DBTX
}

type SpotRepository interface {
	Create(ctx context.Context, s *spot.Spot) error
	// FindByIDForUpdate locks the spot row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*spot.Spot, error)
	Update(ctx context.Context, s *spot.Spot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SessionRepository interface {
	Create(ctx context.Context, s *session.Session) error
	// FindOpenByPlateForUpdate locks the open session row until the transaction ends.
	FindOpenByPlateForUpdate(ctx context.Context, plate vehicle.Plate) (*session.Session, error)
	ExistsOpenForPlate(ctx context.Context, plate vehicle.Plate) (bool, error)
	ExistsOpenForSpot(ctx context.Context, spotID uuid.UUID) (bool, error)
	Close(ctx context.Context, s *session.Session) error
}

type TariffRepository interface {
	FindByClass(ctx context.Context, class vehicle.Class) (*tariff.Tariff, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*tariff.Tariff, error)
	Update(ctx context.Context, t *tariff.Tariff) error
	// SeedDefaults inserts the tariffs whose class has no row yet and returns how many were added.
	SeedDefaults(ctx context.Context, defaults []*tariff.Tariff) (int, error)
}

type OperatorRepository interface {
	FindByEmail(ctx context.Context, email operator.Email) (*operator.Operator, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	// CreateIfAbsent inserts op unless its email is taken and reports whether it inserted.
	CreateIfAbsent(ctx context.Context, op *operator.Operator) (bool, error)
}

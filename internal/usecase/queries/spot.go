package queries

import (
	"context"

	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/usecase/readmodel"
	"parking-occupancy/internal/usecase/shared"

	"github.com/google/uuid"
)

// SpotFilter fields are optional and combine with AND.
type SpotFilter struct {
	Status *spot.Status
	Class  *spot.Class
}

type SpotReadStore interface {
	List(ctx context.Context, db db.DBTX, filter SpotFilter) ([]readmodel.SpotRM, error)
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*readmodel.SpotRM, error)
	CountByStatus(ctx context.Context, db db.DBTX) (readmodel.SpotCountsRM, error)
}

type SpotQueries interface {
	List(ctx context.Context, filter SpotFilter) ([]readmodel.SpotRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.SpotRM, error)
}

type spotQueriesImpl struct {
	uow   shared.UnitOfWork
	store SpotReadStore
}

func NewSpotQueries(uow shared.UnitOfWork, store SpotReadStore) SpotQueries {
	return &spotQueriesImpl{uow: uow, store: store}
}

func (q *spotQueriesImpl) List(ctx context.Context, filter SpotFilter) ([]readmodel.SpotRM, error) {
	var spots []readmodel.SpotRM
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		spots, err = q.store.List(ctx, db, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	if spots == nil {
		spots = []readmodel.SpotRM{}
	}
	return spots, nil
}

func (q *spotQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.SpotRM, error) {
	var rm *readmodel.SpotRM
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		rm, err = q.store.FindByID(ctx, db, id)
		return err
	})
	return rm, err
}

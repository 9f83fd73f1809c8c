package queries

import (
	"context"

	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/usecase/readmodel"
	"parking-occupancy/internal/usecase/shared"

	"github.com/google/uuid"
)

type TariffReadStore interface {
	List(ctx context.Context, db db.DBTX) ([]readmodel.TariffRM, error)
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*readmodel.TariffRM, error)
}

type TariffQueries interface {
	List(ctx context.Context) ([]readmodel.TariffRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.TariffRM, error)
}

type tariffQueriesImpl struct {
	uow   shared.UnitOfWork
	store TariffReadStore
}

func NewTariffQueries(uow shared.UnitOfWork, store TariffReadStore) TariffQueries {
	return &tariffQueriesImpl{uow: uow, store: store}
}

func (q *tariffQueriesImpl) List(ctx context.Context) ([]readmodel.TariffRM, error) {
	var tariffs []readmodel.TariffRM
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		tariffs, err = q.store.List(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return nonNil(tariffs), nil
}

func (q *tariffQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.TariffRM, error) {
	var rm *readmodel.TariffRM
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		rm, err = q.store.FindByID(ctx, db, id)
		return err
	})
	return rm, err
}

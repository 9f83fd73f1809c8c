package queries

import (
	"context"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/usecase/readmodel"
	"parking-occupancy/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOperatorNotFound = errs.Kind("operator not found", errs.ErrNotFound)

type OperatorReadStore interface {
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*readmodel.OperatorRM, error)
}

type OperatorQueries interface {
	GetCurrent(ctx context.Context, operatorID uuid.UUID) (*readmodel.OperatorRM, error)
}

type operatorQueriesImpl struct {
	uow   shared.UnitOfWork
	store OperatorReadStore
}

func NewOperatorQueries(uow shared.UnitOfWork, store OperatorReadStore) OperatorQueries {
	return &operatorQueriesImpl{uow: uow, store: store}
}

func (q *operatorQueriesImpl) GetCurrent(ctx context.Context, operatorID uuid.UUID) (*readmodel.OperatorRM, error) {
	var op *readmodel.OperatorRM
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		op, err = q.store.FindByID(ctx, db, operatorID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, err
	}

	if !op.IsActive {
		return nil, operator.ErrOperatorInactive
	}
	return op, nil
}

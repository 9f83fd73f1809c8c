package queries

import (
	"context"
	"time"

	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/usecase/readmodel"
	"parking-occupancy/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const dateOnly = "2006-01-02"

var (
	ErrInvalidTimeBound = errs.Kind("time bound must be RFC3339 or YYYY-MM-DD", errs.ErrValidation)
	ErrInvertedRange    = errs.Kind("from must not be after to", errs.ErrValidation)
)

type SessionReadStore interface {
	ListOpen(ctx context.Context, db db.DBTX) ([]readmodel.SessionRM, error)
	ListClosed(ctx context.Context, db db.DBTX, from, to *time.Time) ([]readmodel.SessionRM, error)
	SumRevenue(ctx context.Context, db db.DBTX, from, to time.Time) (decimal.Decimal, error)
}

type SessionQueries interface {
	ListActive(ctx context.Context) ([]readmodel.SessionRM, error)
	// ListHistory takes raw bounds; either may be empty. The filter applies only when both are set.
	ListHistory(ctx context.Context, from, to string) ([]readmodel.SessionRM, error)
}

type sessionQueriesImpl struct {
	uow   shared.UnitOfWork
	store SessionReadStore
	loc   *time.Location
}

func NewSessionQueries(uow shared.UnitOfWork, store SessionReadStore, loc *time.Location) SessionQueries {
	return &sessionQueriesImpl{uow: uow, store: store, loc: loc}
}

func (q *sessionQueriesImpl) ListActive(ctx context.Context) ([]readmodel.SessionRM, error) {
	var sessions []readmodel.SessionRM
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		sessions, err = q.store.ListOpen(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return nonNil(sessions), nil
}

func (q *sessionQueriesImpl) ListHistory(ctx context.Context, fromRaw, toRaw string) ([]readmodel.SessionRM, error) {
	from, err := parseBound(fromRaw, q.loc, false)
	if err != nil {
		return nil, err
	}
	to, err := parseBound(toRaw, q.loc, true)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, ErrInvertedRange
	}

	var sessions []readmodel.SessionRM
	err = q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		sessions, err = q.store.ListClosed(ctx, db, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return nonNil(sessions), nil
}

// parseBound accepts RFC3339 or a plain date in loc. A plain upper bound covers its whole day.
func parseBound(raw string, loc *time.Location, upper bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	day, err := time.ParseInLocation(dateOnly, raw, loc)
	if err != nil {
		return nil, errs.Wrapf(ErrInvalidTimeBound, "parse %q", raw)
	}
	if upper {
		day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &day, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

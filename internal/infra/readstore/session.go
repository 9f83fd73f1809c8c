package readstore

import (
	"context"
	"time"

	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/pgconv"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"gopkg.in/guregu/null.v4"
)

const sessionColumns = `id, spot_id, spot_label, plate, vehicle_class, entry_time, exit_time, amount_due`

type SessionReadStore struct{}

func NewSessionReadStore() *SessionReadStore {
	return &SessionReadStore{}
}

func (s *SessionReadStore) ListOpen(ctx context.Context, db db.DBTX) ([]readmodel.SessionRM, error) {
	rows, err := db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE exit_time IS NULL
		ORDER BY entry_time DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open sessions", err)
	}
	sessions, err := pgx.CollectRows(rows, scanSessionRM)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read open sessions", err)
	}
	return sessions, nil
}

// ListClosed filters on exit_time BETWEEN from AND to only when both bounds are set.
func (s *SessionReadStore) ListClosed(ctx context.Context, db db.DBTX, from, to *time.Time) ([]readmodel.SessionRM, error) {
	rows, err := db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE exit_time IS NOT NULL
		  AND ($1::timestamptz IS NULL OR $2::timestamptz IS NULL OR exit_time BETWEEN $1 AND $2)
		ORDER BY exit_time DESC`,
		pgconv.TimePtrToPgtype(from), pgconv.TimePtrToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list closed sessions", err)
	}
	sessions, err := pgx.CollectRows(rows, scanSessionRM)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read closed sessions", err)
	}
	return sessions, nil
}

// SumRevenue adds amount_due over sessions that exited in [from, to).
func (s *SessionReadStore) SumRevenue(ctx context.Context, db db.DBTX, from, to time.Time) (decimal.Decimal, error) {
	var total pgtype.Numeric
	err := db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_due), 0)
		FROM sessions
		WHERE exit_time >= $1 AND exit_time < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Decimal{}, infra.WrapRepoErr("failed to sum revenue", err)
	}

	sum, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return decimal.Decimal{}, infra.WrapRepoErr("invalid revenue sum", err, infra.KindDBFailure)
	}
	return sum.Round(2), nil
}

func scanSessionRM(row pgx.CollectableRow) (readmodel.SessionRM, error) {
	var (
		rm        readmodel.SessionRM
		spotID    pgtype.UUID
		exitTime  pgtype.Timestamptz
		amountDue pgtype.Numeric
	)
	if err := row.Scan(&rm.ID, &spotID, &rm.SpotLabel, &rm.Plate, &rm.VehicleClass, &rm.EntryTime, &exitTime, &amountDue); err != nil {
		return rm, err
	}

	rm.SpotID = pgconv.UUIDPtrFromPgtype(spotID)
	rm.ExitTime = null.TimeFromPtr(pgconv.TimePtrFromPgtype(exitTime))

	amount, err := pgconv.DecimalPtrFromNumeric(amountDue)
	if err != nil {
		return rm, err
	}
	if amount != nil {
		rm.AmountDue = decimal.NewNullDecimal(*amount)
	}
	return rm, nil
}

package readstore

import (
	"context"

	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/usecase/queries"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SpotReadStore struct{}

func NewSpotReadStore() *SpotReadStore {
	return &SpotReadStore{}
}

// List applies both filters with AND semantics. A nil filter matches everything.
func (s *SpotReadStore) List(ctx context.Context, db db.DBTX, filter queries.SpotFilter) ([]readmodel.SpotRM, error) {
	const q = `
		SELECT id, label, class, status, created_at, updated_at
		FROM spots
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::text IS NULL OR class = $2)
		ORDER BY label`

	var status, class *string
	if filter.Status != nil {
		v := filter.Status.String()
		status = &v
	}
	if filter.Class != nil {
		v := filter.Class.String()
		class = &v
	}

	rows, err := db.Query(ctx, q, status, class)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}
	spots, err := pgx.CollectRows(rows, scanSpotRM)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read spots", err)
	}
	return spots, nil
}

func (s *SpotReadStore) FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*readmodel.SpotRM, error) {
	const q = `
		SELECT id, label, class, status, created_at, updated_at
		FROM spots
		WHERE id = $1`

	rows, err := db.Query(ctx, q, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find spot", err)
	}
	rm, err := pgx.CollectExactlyOneRow(rows, scanSpotRM)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to find spot", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, spot.ErrSpotNotFound
		}
		return nil, wrapped
	}
	return &rm, nil
}

func (s *SpotReadStore) CountByStatus(ctx context.Context, db db.DBTX) (readmodel.SpotCountsRM, error) {
	rows, err := db.Query(ctx, `SELECT status, COUNT(*) FROM spots GROUP BY status`)
	if err != nil {
		return readmodel.SpotCountsRM{}, infra.WrapRepoErr("failed to count spots", err)
	}
	defer rows.Close()

	var counts readmodel.SpotCountsRM
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return readmodel.SpotCountsRM{}, infra.WrapRepoErr("failed to read spot counts", err)
		}
		switch spot.Status(status) {
		case spot.StatusFree:
			counts.Free = int(n)
		case spot.StatusOccupied:
			counts.Occupied = int(n)
		case spot.StatusMaintenance:
			counts.Maintenance = int(n)
		}
		counts.Total += int(n)
	}
	if err := rows.Err(); err != nil {
		return readmodel.SpotCountsRM{}, infra.WrapRepoErr("failed to read spot counts", err)
	}
	return counts, nil
}

func scanSpotRM(row pgx.CollectableRow) (readmodel.SpotRM, error) {
	var rm readmodel.SpotRM
	err := row.Scan(&rm.ID, &rm.Label, &rm.Class, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt)
	return rm, err
}

package readstore

import (
	"context"

	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/pgconv"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const tariffColumns = `id, vehicle_class, first_hour_rate, additional_hour_rate, tolerance_minutes, updated_at`

type TariffReadStore struct{}

func NewTariffReadStore() *TariffReadStore {
	return &TariffReadStore{}
}

func (s *TariffReadStore) List(ctx context.Context, db db.DBTX) ([]readmodel.TariffRM, error) {
	rows, err := db.Query(ctx, `SELECT `+tariffColumns+` FROM tariffs ORDER BY vehicle_class`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tariffs", err)
	}
	tariffs, err := pgx.CollectRows(rows, scanTariffRM)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read tariffs", err)
	}
	return tariffs, nil
}

func (s *TariffReadStore) FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*readmodel.TariffRM, error) {
	rows, err := db.Query(ctx, `SELECT `+tariffColumns+` FROM tariffs WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tariff", err)
	}
	rm, err := pgx.CollectExactlyOneRow(rows, scanTariffRM)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to find tariff", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, tariff.ErrTariffNotFound
		}
		return nil, wrapped
	}
	return &rm, nil
}

func scanTariffRM(row pgx.CollectableRow) (readmodel.TariffRM, error) {
	var (
		rm                readmodel.TariffRM
		first, additional pgtype.Numeric
		tolerance         int32
	)
	if err := row.Scan(&rm.ID, &rm.VehicleClass, &first, &additional, &tolerance, &rm.UpdatedAt); err != nil {
		return rm, err
	}

	var err error
	if rm.FirstHourRate, err = pgconv.DecimalFromNumeric(first); err != nil {
		return rm, err
	}
	if rm.AdditionalHourRate, err = pgconv.DecimalFromNumeric(additional); err != nil {
		return rm, err
	}
	rm.ToleranceMinutes = int(tolerance)
	return rm, nil
}

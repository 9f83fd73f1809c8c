package repository

import (
	"context"
	"time"

	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/domain/vehicle"
	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TariffRepository struct {
	db db.DBTX
}

func NewTariffRepository(db db.DBTX) *TariffRepository {
	return &TariffRepository{db: db}
}

const tariffColumns = `id, vehicle_class, first_hour_rate, additional_hour_rate, tolerance_minutes, updated_at`

func (r *TariffRepository) FindByClass(ctx context.Context, class vehicle.Class) (*tariff.Tariff, error) {
	row := r.db.QueryRow(ctx, `SELECT `+tariffColumns+` FROM tariffs WHERE vehicle_class = $1`, class.String())
	return r.scanOne(row, "failed to find tariff by class")
}

func (r *TariffRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*tariff.Tariff, error) {
	row := r.db.QueryRow(ctx, `SELECT `+tariffColumns+` FROM tariffs WHERE id = $1 FOR UPDATE`, id)
	return r.scanOne(row, "failed to lock tariff")
}

func (r *TariffRepository) Update(ctx context.Context, t *tariff.Tariff) error {
	const q = `
		UPDATE tariffs
		SET first_hour_rate = $2, additional_hour_rate = $3, tolerance_minutes = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		t.ID(),
		pgconv.DecimalToNumeric(t.FirstHourRate()),
		pgconv.DecimalToNumeric(t.AdditionalHourRate()),
		t.ToleranceMinutes(),
		t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update tariff", err)
	}
	if tag.RowsAffected() == 0 {
		return tariff.ErrTariffNotFound
	}
	return nil
}

func (r *TariffRepository) SeedDefaults(ctx context.Context, defaults []*tariff.Tariff) (int, error) {
	const q = `
		INSERT INTO tariffs (id, vehicle_class, first_hour_rate, additional_hour_rate, tolerance_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (vehicle_class) DO NOTHING`

	inserted := 0
	for _, t := range defaults {
		tag, err := r.db.Exec(ctx, q,
			t.ID(),
			t.VehicleClass().String(),
			pgconv.DecimalToNumeric(t.FirstHourRate()),
			pgconv.DecimalToNumeric(t.AdditionalHourRate()),
			t.ToleranceMinutes(),
			t.UpdatedAt(),
		)
		if err != nil {
			return inserted, infra.WrapRepoErr("failed to seed tariff", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func (r *TariffRepository) scanOne(row pgx.Row, msg string) (*tariff.Tariff, error) {
	var (
		id                uuid.UUID
		class             string
		first, additional pgtype.Numeric
		tolerance         int32
		updatedAt         time.Time
	)
	if err := row.Scan(&id, &class, &first, &additional, &tolerance, &updatedAt); err != nil {
		wrapped := infra.WrapRepoErr(msg, err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, errs.Translate(wrapped, tariff.ErrTariffNotFound, msg)
		}
		return nil, wrapped
	}

	firstRate, err := pgconv.DecimalFromNumeric(first)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid first_hour_rate", err, infra.KindDBFailure)
	}
	additionalRate, err := pgconv.DecimalFromNumeric(additional)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid additional_hour_rate", err, infra.KindDBFailure)
	}

	return tariff.ReconstructTariff(id, vehicle.Class(class), firstRate, additionalRate, int(tolerance), updatedAt), nil
}

package repository

import (
	"context"
	"time"

	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const spotLabelConstraint = "spots_label_key"

type SpotRepository struct {
	db db.DBTX
}

func NewSpotRepository(db db.DBTX) *SpotRepository {
	return &SpotRepository{db: db}
}

func (r *SpotRepository) Create(ctx context.Context, s *spot.Spot) error {
	const q = `
		INSERT INTO spots (id, label, class, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q, s.ID(), s.Label(), s.Class().String(), s.Status().String(), s.CreatedAt(), s.UpdatedAt())
	if err != nil {
		return spotWriteErr("failed to create spot", err)
	}
	return nil
}

func (r *SpotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	const q = `
		SELECT id, label, class, status, created_at, updated_at
		FROM spots
		WHERE id = $1
		FOR UPDATE`

	s, err := scanSpot(r.db.QueryRow(ctx, q, id))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to lock spot", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, errs.Translate(wrapped, spot.ErrSpotNotFound, "find spot")
		}
		return nil, wrapped
	}
	return s, nil
}

func (r *SpotRepository) Update(ctx context.Context, s *spot.Spot) error {
	const q = `
		UPDATE spots
		SET label = $2, class = $3, status = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, s.ID(), s.Label(), s.Class().String(), s.Status().String(), s.UpdatedAt())
	if err != nil {
		return spotWriteErr("failed to update spot", err)
	}
	if tag.RowsAffected() == 0 {
		return spot.ErrSpotNotFound
	}
	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM spots WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete spot", err)
	}
	if tag.RowsAffected() == 0 {
		return spot.ErrSpotNotFound
	}
	return nil
}

func spotWriteErr(msg string, err error) error {
	wrapped := infra.WrapRepoErr(msg, err)
	if infra.IsKind(wrapped, infra.KindDuplicateKey) && infra.IsConstraint(wrapped, spotLabelConstraint) {
		return errs.Translate(wrapped, spot.ErrDuplicateLabel, msg)
	}
	return wrapped
}

func scanSpot(row pgx.Row) (*spot.Spot, error) {
	var (
		id                   uuid.UUID
		label, class, status string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &label, &class, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return spot.ReconstructSpot(id, label, spot.Class(class), spot.Status(status), createdAt, updatedAt), nil
}

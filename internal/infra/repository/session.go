package repository

import (
	"context"
	"time"

	"parking-occupancy/internal/domain/session"
	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/domain/vehicle"
	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	sessionOpenPlateConstraint = "sessions_open_plate_key"
	sessionOpenSpotConstraint  = "sessions_open_spot_key"
)

var errSessionStillOpen = errs.New("session has no exit recorded")

type SessionRepository struct {
	db db.DBTX
}

func NewSessionRepository(db db.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	const q = `
		INSERT INTO sessions (id, spot_id, spot_label, plate, vehicle_class, entry_time)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q, s.ID(), s.SpotID(), s.SpotLabel(), s.Plate().String(), s.VehicleClass().String(), s.EntryTime())
	if err == nil {
		return nil
	}

	wrapped := infra.WrapRepoErr("failed to open session", err)
	switch {
	case infra.IsConstraint(wrapped, sessionOpenPlateConstraint):
		return errs.Translate(wrapped, session.ErrPlateAlreadyActive, "open session")
	case infra.IsConstraint(wrapped, sessionOpenSpotConstraint):
		return errs.Translate(wrapped, spot.ErrSpotNotFree, "open session")
	case infra.IsKind(wrapped, infra.KindForeignKeyViolated):
		return errs.Translate(wrapped, spot.ErrSpotNotFound, "open session")
	}
	return wrapped
}

func (r *SessionRepository) FindOpenByPlateForUpdate(ctx context.Context, plate vehicle.Plate) (*session.Session, error) {
	const q = `
		SELECT id, spot_id, spot_label, plate, vehicle_class, entry_time, exit_time, amount_due
		FROM sessions
		WHERE plate = $1 AND exit_time IS NULL
		FOR UPDATE`

	var (
		id                    uuid.UUID
		spotID                pgtype.UUID
		spotLabel, plateValue string
		vehicleClass          string
		entryTime             time.Time
		exitTime              pgtype.Timestamptz
		amountDue             pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, q, plate.String()).
		Scan(&id, &spotID, &spotLabel, &plateValue, &vehicleClass, &entryTime, &exitTime, &amountDue)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to lock open session", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, errs.Translate(wrapped, session.ErrSessionNotFound, "find open session")
		}
		return nil, wrapped
	}

	amount, err := pgconv.DecimalPtrFromNumeric(amountDue)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid amount_due", err, infra.KindDBFailure)
	}

	var spotUUID uuid.UUID
	if p := pgconv.UUIDPtrFromPgtype(spotID); p != nil {
		spotUUID = *p
	}

	return session.Reconstruct(
		id, spotUUID, spotLabel,
		vehicle.ReconstructPlate(plateValue),
		vehicle.Class(vehicleClass),
		entryTime,
		pgconv.TimePtrFromPgtype(exitTime),
		amount,
	), nil
}

func (r *SessionRepository) ExistsOpenForPlate(ctx context.Context, plate vehicle.Plate) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sessions WHERE plate = $1 AND exit_time IS NULL)`,
		plate.String(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check open session for plate", err)
	}
	return exists, nil
}

func (r *SessionRepository) ExistsOpenForSpot(ctx context.Context, spotID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sessions WHERE spot_id = $1 AND exit_time IS NULL)`,
		spotID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check open session for spot", err)
	}
	return exists, nil
}

// Close persists exit_time and amount_due together. It never overwrites a closed session.
func (r *SessionRepository) Close(ctx context.Context, s *session.Session) error {
	if s.IsOpen() {
		return errSessionStillOpen
	}

	const q = `
		UPDATE sessions
		SET exit_time = $2, amount_due = $3
		WHERE id = $1 AND exit_time IS NULL`

	tag, err := r.db.Exec(ctx, q, s.ID(), *s.ExitTime(), pgconv.DecimalPtrToNumeric(s.AmountDue()))
	if err != nil {
		return infra.WrapRepoErr("failed to close session", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrSessionAlreadyClosed
	}
	return nil
}

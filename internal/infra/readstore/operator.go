package readstore

import (
	"context"

	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/pgconv"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OperatorReadStore struct{}

func NewOperatorReadStore() *OperatorReadStore {
	return &OperatorReadStore{}
}

// FindByID returns infra.KindNotFound when no operator matches.
func (s *OperatorReadStore) FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*readmodel.OperatorRM, error) {
	var (
		rm          readmodel.OperatorRM
		lastLoginAt pgtype.Timestamptz
	)
	err := db.QueryRow(ctx, `
		SELECT id, email, role, is_active, last_login_at
		FROM operators
		WHERE id = $1`, id,
	).Scan(&rm.ID, &rm.Email, &rm.Role, &rm.IsActive, &lastLoginAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find operator by ID", err)
	}

	rm.LastLoginAt = pgconv.TimePtrFromPgtype(lastLoginAt)
	return &rm, nil
}

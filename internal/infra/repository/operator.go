package repository

import (
	"context"
	"time"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OperatorRepository struct {
	db db.DBTX
}

func NewOperatorRepository(db db.DBTX) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// FindByEmail returns infra.KindNotFound when no operator matches.
func (r *OperatorRepository) FindByEmail(ctx context.Context, email operator.Email) (*operator.Operator, error) {
	const q = `
		SELECT id, email, password_hash, role, is_active, last_login_at
		FROM operators
		WHERE email = $1`

	var (
		id                      uuid.UUID
		storedEmail, hash, role string
		isActive                bool
		lastLoginAt             pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, email.Value()).Scan(&id, &storedEmail, &hash, &role, &isActive, &lastLoginAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find operator by email", err)
	}

	return operator.ReconstructOperator(
		id,
		operator.ReconstructEmail(storedEmail),
		hash,
		operator.Role(role),
		isActive,
		pgconv.TimePtrFromPgtype(lastLoginAt),
	), nil
}

func (r *OperatorRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE operators SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update operator last login", err)
	}
	return nil
}

func (r *OperatorRepository) CreateIfAbsent(ctx context.Context, op *operator.Operator) (bool, error) {
	const q = `
		INSERT INTO operators (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING`

	tag, err := r.db.Exec(ctx, q, op.ID(), op.Email().Value(), op.PasswordHash(), op.Role().String(), op.IsActive())
	if err != nil {
		return false, infra.WrapRepoErr("failed to create operator", err)
	}
	return tag.RowsAffected() == 1, nil
}

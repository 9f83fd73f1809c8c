//go:build unit || e2e

package builder

import (
	"time"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OperatorBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLoginAt  *time.Time
}

func NewOperatorBuilder() *OperatorBuilder {
	return &OperatorBuilder{
		ID:           uuid.New(),
		Email:        "attendant@example.com",
		PasswordHash: "hashed_password",
		Role:         "attendant",
		IsActive:     true,
	}
}

func (b *OperatorBuilder) With(mutate func(*OperatorBuilder)) *OperatorBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OperatorBuilder) BuildDomain() *operator.Operator {
	return operator.ReconstructOperator(b.ID, operator.ReconstructEmail(b.Email), b.PasswordHash,
		operator.Role(b.Role), b.IsActive, b.LastLoginAt)
}

func (b *OperatorBuilder) BuildReadModel() *readmodel.OperatorRM {
	return &readmodel.OperatorRM{
		ID:          b.ID,
		Email:       b.Email,
		Role:        b.Role,
		IsActive:    b.IsActive,
		LastLoginAt: b.LastLoginAt,
	}
}

// Fluent builder methods
func (b *OperatorBuilder) AsAdmin() *OperatorBuilder {
	b.Role = "admin"
	return b
}

package operator

import (
	"time"

	"github.com/google/uuid"
)

// Operator is an attendant or administrator of the lot.
type Operator struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	lastLoginAt  *time.Time
}

func NewOperator(email Email, passwordHash string, role Role) *Operator {
	return &Operator{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructOperator(id uuid.UUID, email Email, passwordHash string, role Role, isActive bool, lastLoginAt *time.Time) *Operator {
	return &Operator{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		lastLoginAt:  lastLoginAt,
	}
}

func (o *Operator) ID() uuid.UUID           { return o.id }
func (o *Operator) Email() Email            { return o.email }
func (o *Operator) PasswordHash() string    { return o.passwordHash }
func (o *Operator) Role() Role              { return o.role }
func (o *Operator) IsActive() bool          { return o.isActive }
func (o *Operator) LastLoginAt() *time.Time { return o.lastLoginAt }

// ReconstructEmail restores an email read back from storage without validation.
func ReconstructEmail(stored string) Email {
	return Email{value: stored}
}

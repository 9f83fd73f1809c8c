package operator

import "parking-occupancy/internal/pkg/errs"

var (
	ErrInvalidEmail       = errs.Kind("invalid email format", errs.ErrValidation)
	ErrInvalidRole        = errs.Kind("invalid operator role", errs.ErrValidation)
	ErrPasswordTooWeak    = errs.Kind("password must be at least 8 characters long", errs.ErrValidation)
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrOperatorInactive   = errs.New("operator inactive")
)

type Role string

const (
	RoleAttendant Role = "attendant"
	RoleAdmin     Role = "admin"
)

var roleLevels = map[Role]int{
	RoleAttendant: 1,
	RoleAdmin:     2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	level, ok := roleLevels[r]
	minLevel, minOK := roleLevels[min]
	return ok && minOK && level >= minLevel
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

//go:build unit

package operator_test

import (
	"testing"

	"parking-occupancy/internal/domain/operator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		role, err := operator.NewRole("admin")
		require.NoError(t, err)
		assert.Equal(t, operator.RoleAdmin, role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := operator.NewRole("viewer")
		assert.ErrorIs(t, err, operator.ErrInvalidRole)
	})

	t.Run("hierarchy", func(t *testing.T) {
		assert.True(t, operator.RoleAdmin.AtLeast(operator.RoleAttendant))
		assert.True(t, operator.RoleAdmin.AtLeast(operator.RoleAdmin))
		assert.True(t, operator.RoleAttendant.AtLeast(operator.RoleAttendant))
		assert.False(t, operator.RoleAttendant.AtLeast(operator.RoleAdmin))
		assert.False(t, operator.Role("ghost").AtLeast(operator.RoleAttendant))
	})
}

func TestCredentials(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		password string
		errIs    error
	}{
		{name: "valid credentials", email: "admin@parking.test", password: "password123"},
		{name: "email is trimmed and lowered", email: "  Admin@Parking.TEST ", password: "password123"},
		{name: "invalid email", email: "not-an-email", password: "password123", errIs: operator.ErrInvalidEmail},
		{name: "short password", email: "admin@parking.test", password: "short", errIs: operator.ErrPasswordTooWeak},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creds, err := operator.NewCredentials(tc.email, tc.password)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin@parking.test", creds.Email().Value())
			assert.Equal(t, tc.password, creds.Password().Value())
		})
	}
}

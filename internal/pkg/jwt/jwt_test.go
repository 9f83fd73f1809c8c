//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := jwt.NewService("unit-secret", time.Hour)
	operatorID := uuid.New()

	token, err := svc.GenerateToken(operatorID, operator.RoleAttendant)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, operatorID, claims.OperatorID)
	assert.Equal(t, "attendant", claims.Role)
	assert.Equal(t, operatorID.String(), claims.Subject)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("unit-secret", -time.Minute)
		token, err := svc.GenerateToken(uuid.New(), operator.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(uuid.New(), operator.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService("unit-secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("unit-secret", time.Hour).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

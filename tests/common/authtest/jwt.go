//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/pkg/config"
	"parking-occupancy/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(operatorID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(operatorID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// CreateForeignToken is signed with a different secret.
func (h *JWTHelper) CreateForeignToken(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	token, err := jwt.NewService("not-"+h.cfg.Secret, time.Hour).GenerateToken(operatorID, role)
	require.NoError(t, err)
	return token
}

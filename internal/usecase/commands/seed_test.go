//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/pkg/password"
	"parking-occupancy/internal/usecase/commands"
	sharedmock "parking-occupancy/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedCommands_SeedTariffs(t *testing.T) {
	t.Run("success: defaults cover every vehicle class", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		repos := newTxMocks(ctrl)
		expectWithin(uow, repos.tx)
		repos.tariffs.EXPECT().SeedDefaults(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, defaults []*tariff.Tariff) (int, error) {
				assert.Len(t, defaults, 2)
				return 2, nil
			})

		n, err := commands.NewSeedCommands(uow, clock.NewMockClock(now)).SeedTariffs(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("error: storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		repos := newTxMocks(ctrl)
		expectWithin(uow, repos.tx)
		repos.tariffs.EXPECT().SeedDefaults(gomock.Any(), gomock.Any()).Return(0, errs.ErrStorageUnavailable)

		_, err := commands.NewSeedCommands(uow, clock.NewMockClock(now)).SeedTariffs(context.Background())
		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}

func TestSeedCommands_EnsureAdmin(t *testing.T) {
	password.Cost = bcrypt.MinCost

	tests := []struct {
		name        string
		email       string
		password    string
		existing    bool
		wantCreated bool
		wantErr     error
	}{
		{name: "success: creates admin", email: "admin@example.com", password: "changeme123", wantCreated: true},
		{name: "success: existing admin is kept", email: "admin@example.com", password: "changeme123", existing: true},
		{name: "error: weak password", email: "admin@example.com", password: "short", wantErr: operator.ErrPasswordTooWeak},
		{name: "error: bad email", email: "admin", password: "changeme123", wantErr: operator.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uow := sharedmock.NewMockUnitOfWork(ctrl)
			repos := newTxMocks(ctrl)
			if tt.wantErr == nil {
				expectWithin(uow, repos.tx)
				repos.ops.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, op *operator.Operator) (bool, error) {
						assert.Equal(t, operator.RoleAdmin, op.Role())
						assert.True(t, op.IsActive())
						assert.NoError(t, password.ComparePassword(op.PasswordHash(), tt.password))
						return !tt.existing, nil
					})
			}

			created, err := commands.NewSeedCommands(uow, clock.NewMockClock(now)).EnsureAdmin(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
		})
	}
}

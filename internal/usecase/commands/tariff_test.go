//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/domain/vehicle"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/usecase/commands"
	commandsmock "parking-occupancy/tests/mock/commands"
	sharedmock "parking-occupancy/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTariffCommands_Update(t *testing.T) {
	dec := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name      string
		req       commands.UpdateTariffRequest
		wantFirst string
		wantAdd   string
		wantTol   int
		wantErr   error
	}{
		{
			name:      "success: only first hour rate changes",
			req:       commands.UpdateTariffRequest{FirstHourRate: dec("12.50")},
			wantFirst: "12.50",
			wantAdd:   "5.00",
			wantTol:   15,
		},
		{
			name:      "success: tolerance can drop to zero",
			req:       commands.UpdateTariffRequest{ToleranceMinutes: intPtr(0)},
			wantFirst: "10.00",
			wantAdd:   "5.00",
			wantTol:   0,
		},
		{
			name:    "error: negative rate",
			req:     commands.UpdateTariffRequest{AdditionalHourRate: dec("-1")},
			wantErr: tariff.ErrNegativeRate,
		},
		{
			name:    "error: more than two decimals",
			req:     commands.UpdateTariffRequest{FirstHourRate: dec("1.005")},
			wantErr: tariff.ErrRatePrecision,
		},
		{
			name:    "error: negative tolerance",
			req:     commands.UpdateTariffRequest{ToleranceMinutes: intPtr(-5)},
			wantErr: tariff.ErrNegativeTolerance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uow := sharedmock.NewMockUnitOfWork(ctrl)
			repos := newTxMocks(ctrl)
			events := commandsmock.NewMockEventPublisher(ctrl)
			current := tariff.ReconstructTariff(uuid.New(), vehicle.ClassCar,
				decimal.RequireFromString("10.00"), decimal.RequireFromString("5.00"), 15, now.AddDate(0, -1, 0))

			expectWithin(uow, repos.tx)
			repos.tariffs.EXPECT().FindByIDForUpdate(gomock.Any(), current.ID()).Return(current, nil)
			if tt.wantErr == nil {
				repos.tariffs.EXPECT().Update(gomock.Any(), current).Return(nil)
				events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			}

			cmds := commands.NewTariffCommands(uow, clock.NewMockClock(now), events)
			got, err := cmds.Update(context.Background(), current.ID(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, errs.ErrValidation)
				assert.Equal(t, "10.00", current.FirstHourRate().StringFixed(2), "failed revision must leave the tariff untouched")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, got.FirstHourRate().StringFixed(2))
			assert.Equal(t, tt.wantAdd, got.AdditionalHourRate().StringFixed(2))
			assert.Equal(t, tt.wantTol, got.ToleranceMinutes())
			assert.Equal(t, now, got.UpdatedAt())
		})
	}

	t.Run("error: tariff not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		repos := newTxMocks(ctrl)
		id := uuid.New()
		expectWithin(uow, repos.tx)
		repos.tariffs.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, tariff.ErrTariffNotFound)

		cmds := commands.NewTariffCommands(uow, clock.NewMockClock(now), nil)
		_, err := cmds.Update(context.Background(), id, commands.UpdateTariffRequest{ToleranceMinutes: intPtr(10)})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

package commands

import (
	"context"

	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateTariffRequest: nil fields are left unchanged.
type UpdateTariffRequest struct {
	FirstHourRate      *decimal.Decimal
	AdditionalHourRate *decimal.Decimal
	ToleranceMinutes   *int
}

type TariffCommands interface {
	Update(ctx context.Context, id uuid.UUID, req UpdateTariffRequest) (*tariff.Tariff, error)
}

type tariffCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	events EventPublisher
}

func NewTariffCommands(uow shared.UnitOfWork, clk clock.Clock, events EventPublisher) TariffCommands {
	return &tariffCommandsImpl{uow: uow, clock: clk, events: events}
}

func (c *tariffCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateTariffRequest) (*tariff.Tariff, error) {
	var updated *tariff.Tariff
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tariffs().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		revision := tariff.Revision{
			FirstHourRate:      req.FirstHourRate,
			AdditionalHourRate: req.AdditionalHourRate,
			ToleranceMinutes:   req.ToleranceMinutes,
		}
		if err := t.Revise(revision, c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Tariffs().Update(ctx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, c.events, OccupancyEvent{
		Type:         EventTariffUpdated,
		VehicleClass: updated.VehicleClass().String(),
		At:           updated.UpdatedAt(),
	})
	return updated, nil
}

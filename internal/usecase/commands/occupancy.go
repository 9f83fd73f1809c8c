package commands

import (
	"context"

	"parking-occupancy/internal/domain/session"
	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/domain/vehicle"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/usecase/shared"

	"github.com/google/uuid"
)

type EntryRequest struct {
	Plate        string
	SpotID       uuid.UUID
	VehicleClass string
}

type ExitRequest struct {
	Plate string
}

// OccupancyCommands owns every write that moves a spot between free and occupied.
type OccupancyCommands interface {
	Entry(ctx context.Context, req EntryRequest) (*session.Session, error)
	Exit(ctx context.Context, req ExitRequest) (*session.Session, error)
}

type occupancyCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	calc   tariff.FeeCalculator
	policy spot.CompatibilityPolicy
	events EventPublisher
}

func NewOccupancyCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	calc tariff.FeeCalculator,
	policy spot.CompatibilityPolicy,
	events EventPublisher,
) OccupancyCommands {
	return &occupancyCommandsImpl{
		uow:    uow,
		clock:  clk,
		calc:   calc,
		policy: policy,
		events: events,
	}
}

func (c *occupancyCommandsImpl) Entry(ctx context.Context, req EntryRequest) (*session.Session, error) {
	plate, err := vehicle.ParsePlate(req.Plate)
	if err != nil {
		return nil, err
	}
	class, err := vehicle.ParseClass(req.VehicleClass)
	if err != nil {
		return nil, err
	}

	var opened *session.Session
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().FindByIDForUpdate(ctx, req.SpotID)
		if err != nil {
			return err
		}
		if !s.IsFree() {
			return spot.ErrSpotNotFree
		}
		if err := c.policy.Check(class, s.Class()); err != nil {
			return err
		}

		active, err := tx.Sessions().ExistsOpenForPlate(ctx, plate)
		if err != nil {
			return err
		}
		if active {
			return session.ErrPlateAlreadyActive
		}

		now := c.clock.Now()
		sess, err := session.Open(plate, s.ID(), s.Label(), class, now)
		if err != nil {
			return err
		}
		if err := tx.Sessions().Create(ctx, sess); err != nil {
			return err
		}
		if err := s.Occupy(now); err != nil {
			return err
		}
		if err := tx.Spots().Update(ctx, s); err != nil {
			return err
		}

		opened = sess
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, c.events, OccupancyEvent{
		Type:         EventSessionOpened,
		SpotID:       uuidPtr(opened.SpotID()),
		SpotLabel:    opened.SpotLabel(),
		SpotStatus:   spot.StatusOccupied.String(),
		SessionID:    uuidPtr(opened.ID()),
		Plate:        opened.Plate().String(),
		VehicleClass: opened.VehicleClass().String(),
		At:           opened.EntryTime(),
	})
	return opened, nil
}

func (c *occupancyCommandsImpl) Exit(ctx context.Context, req ExitRequest) (*session.Session, error) {
	plate, err := vehicle.ParsePlate(req.Plate)
	if err != nil {
		return nil, err
	}

	var closed *session.Session
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sess, err := tx.Sessions().FindOpenByPlateForUpdate(ctx, plate)
		if err != nil {
			return err
		}
		trf, err := tx.Tariffs().FindByClass(ctx, sess.VehicleClass())
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := sess.Close(now, c.calc, trf); err != nil {
			return err
		}
		if err := tx.Sessions().Close(ctx, sess); err != nil {
			return err
		}

		s, err := tx.Spots().FindByIDForUpdate(ctx, sess.SpotID())
		if err != nil {
			return err
		}
		s.Release(now)
		if err := tx.Spots().Update(ctx, s); err != nil {
			return err
		}

		closed = sess
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, c.events, OccupancyEvent{
		Type:         EventSessionClosed,
		SpotID:       uuidPtr(closed.SpotID()),
		SpotLabel:    closed.SpotLabel(),
		SpotStatus:   spot.StatusFree.String(),
		SessionID:    uuidPtr(closed.ID()),
		Plate:        closed.Plate().String(),
		VehicleClass: closed.VehicleClass().String(),
		AmountDue:    closed.AmountDue(),
		At:           *closed.ExitTime(),
	})
	return closed, nil
}

package commands

import (
	"context"

	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/pkg/patch"
	"parking-occupancy/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSpotRequest struct {
	Label string
	Class string
}

// UpdateSpotRequest: nil fields are left unchanged.
type UpdateSpotRequest struct {
	Label  *string
	Class  *string
	Status *string
}

type SpotCommands interface {
	Create(ctx context.Context, req CreateSpotRequest) (*spot.Spot, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateSpotRequest) (*spot.Spot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type spotCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	events EventPublisher
}

func NewSpotCommands(uow shared.UnitOfWork, clk clock.Clock, events EventPublisher) SpotCommands {
	return &spotCommandsImpl{uow: uow, clock: clk, events: events}
}

func (c *spotCommandsImpl) Create(ctx context.Context, req CreateSpotRequest) (*spot.Spot, error) {
	class, err := spot.ParseClass(req.Class)
	if err != nil {
		return nil, err
	}
	s, err := spot.NewSpot(req.Label, class, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Spots().Create(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, c.events, spotEvent(EventSpotCreated, s))
	return s, nil
}

func (c *spotCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateSpotRequest) (*spot.Spot, error) {
	var (
		class  *spot.Class
		status *spot.Status
	)
	if req.Class != nil {
		parsed, err := spot.ParseClass(*req.Class)
		if err != nil {
			return nil, err
		}
		class = &parsed
	}
	if req.Status != nil {
		parsed, err := spot.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	var updated *spot.Spot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		hasOpenSession, err := tx.Sessions().ExistsOpenForSpot(ctx, id)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := s.Rename(patch.Coalesce(req.Label, s.Label()), now); err != nil {
			return err
		}
		if err := s.Reclassify(patch.Coalesce(class, s.Class()), hasOpenSession, now); err != nil {
			return err
		}
		if err := s.ChangeStatus(patch.Coalesce(status, s.Status()), hasOpenSession, now); err != nil {
			return err
		}

		if err := tx.Spots().Update(ctx, s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, c.events, spotEvent(EventSpotUpdated, updated))
	return updated, nil
}

func (c *spotCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted *spot.Spot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		hasOpenSession, err := tx.Sessions().ExistsOpenForSpot(ctx, id)
		if err != nil {
			return err
		}
		if err := s.EnsureRemovable(hasOpenSession); err != nil {
			return err
		}
		if err := tx.Spots().Delete(ctx, id); err != nil {
			return err
		}
		deleted = s
		return nil
	})
	if err != nil {
		return err
	}

	event := spotEvent(EventSpotDeleted, deleted)
	event.At = c.clock.Now()
	publish(ctx, c.events, event)
	return nil
}

func spotEvent(t EventType, s *spot.Spot) OccupancyEvent {
	return OccupancyEvent{
		Type:       t,
		SpotID:     uuidPtr(s.ID()),
		SpotLabel:  s.Label(),
		SpotStatus: s.Status().String(),
		At:         s.UpdatedAt(),
	}
}

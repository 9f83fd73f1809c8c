package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-occupancy/internal/domain/operator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventSessionOpened EventType = "session.opened"
	EventSessionClosed EventType = "session.closed"
	EventSpotCreated   EventType = "spot.created"
	EventSpotUpdated   EventType = "spot.updated"
	EventSpotDeleted   EventType = "spot.deleted"
	EventTariffUpdated EventType = "tariff.updated"
)

// OccupancyEvent describes a committed change. Fields not relevant to Type stay empty.
type OccupancyEvent struct {
	Type         EventType        `json:"type"`
	SpotID       *uuid.UUID       `json:"spot_id,omitempty"`
	SpotLabel    string           `json:"spot_label,omitempty"`
	SpotStatus   string           `json:"spot_status,omitempty"`
	SessionID    *uuid.UUID       `json:"session_id,omitempty"`
	Plate        string           `json:"plate,omitempty"`
	VehicleClass string           `json:"vehicle_class,omitempty"`
	AmountDue    *decimal.Decimal `json:"amount_due,omitempty"`
	At           time.Time        `json:"at"`
}

// EventPublisher receives events after the transaction that produced them committed.
type EventPublisher interface {
	Publish(ctx context.Context, event OccupancyEvent) error
}

type TokenIssuer interface {
	GenerateToken(operatorID uuid.UUID, role operator.Role) (string, error)
	TokenDuration() time.Duration
}

// publish never fails the caller; the change is already committed.
func publish(ctx context.Context, events EventPublisher, event OccupancyEvent) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish occupancy event",
			"type", string(event.Type),
			"error", err.Error())
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

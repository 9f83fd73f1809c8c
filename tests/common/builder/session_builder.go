//go:build unit || e2e

package builder

import (
	"time"

	"parking-occupancy/internal/domain/session"
	"parking-occupancy/internal/domain/vehicle"
	reqdto "parking-occupancy/internal/handler/dto/request"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/guregu/null.v4"
)

type SessionBuilder struct {
	ID           uuid.UUID
	SpotID       uuid.UUID
	SpotLabel    string
	Plate        string
	VehicleClass string
	EntryTime    time.Time
	ExitTime     *time.Time
	AmountDue    *decimal.Decimal
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:           uuid.New(),
		SpotID:       uuid.New(),
		SpotLabel:    "A-01",
		Plate:        "ABC-1234",
		VehicleClass: "car",
		EntryTime:    time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SessionBuilder) BuildDomain() *session.Session {
	return session.Reconstruct(b.ID, b.SpotID, b.SpotLabel, vehicle.ReconstructPlate(b.Plate),
		vehicle.Class(b.VehicleClass), b.EntryTime, b.ExitTime, b.AmountDue)
}

func (b *SessionBuilder) BuildReadModel() readmodel.SessionRM {
	spotID := b.SpotID
	rm := readmodel.SessionRM{
		ID:           b.ID,
		SpotID:       &spotID,
		SpotLabel:    b.SpotLabel,
		Plate:        b.Plate,
		VehicleClass: b.VehicleClass,
		EntryTime:    b.EntryTime,
		ExitTime:     null.TimeFromPtr(b.ExitTime),
	}
	if b.AmountDue != nil {
		rm.AmountDue = decimal.NewNullDecimal(*b.AmountDue)
	}
	return rm
}

func (b *SessionBuilder) BuildEntryRequestDTO() reqdto.EntryRequest {
	return reqdto.EntryRequest{Plate: b.Plate, SpotID: b.SpotID, VehicleClass: b.VehicleClass}
}

// Fluent builder methods
func (b *SessionBuilder) WithPlate(plate string) *SessionBuilder {
	b.Plate = plate
	return b
}

func (b *SessionBuilder) Closed(exit time.Time, amount string) *SessionBuilder {
	d := decimal.RequireFromString(amount)
	b.ExitTime = &exit
	b.AmountDue = &d
	return b
}

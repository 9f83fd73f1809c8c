package session

import (
	"time"

	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/domain/vehicle"
	"parking-occupancy/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSessionNotFound      = errs.Kind("no open session for plate", errs.ErrNotFound)
	ErrPlateAlreadyActive   = errs.Kind("plate already has an open session", errs.ErrConflict)
	ErrSessionAlreadyClosed = errs.Kind("session is already closed", errs.ErrInvalidState)
	ErrTariffMismatch       = errs.Kind("tariff does not match the session vehicle class", errs.ErrInvalidState)
)

// Session is one vehicle stay. exitTime and amountDue are set together, once.
type Session struct {
	id           uuid.UUID
	spotID       uuid.UUID
	spotLabel    string
	plate        vehicle.Plate
	vehicleClass vehicle.Class
	entryTime    time.Time
	exitTime     *time.Time
	amountDue    *decimal.Decimal
}

func Open(plate vehicle.Plate, spotID uuid.UUID, spotLabel string, class vehicle.Class, entry time.Time) (*Session, error) {
	if plate.IsZero() {
		return nil, vehicle.ErrInvalidPlate
	}
	if !class.IsValid() {
		return nil, vehicle.ErrInvalidClass
	}

	return &Session{
		id:           uuid.New(),
		spotID:       spotID,
		spotLabel:    spotLabel,
		plate:        plate,
		vehicleClass: class,
		entryTime:    entry,
	}, nil
}

func Reconstruct(
	id, spotID uuid.UUID,
	spotLabel string,
	plate vehicle.Plate,
	class vehicle.Class,
	entry time.Time,
	exit *time.Time,
	amountDue *decimal.Decimal,
) *Session {
	return &Session{
		id:           id,
		spotID:       spotID,
		spotLabel:    spotLabel,
		plate:        plate,
		vehicleClass: class,
		entryTime:    entry,
		exitTime:     exit,
		amountDue:    amountDue,
	}
}

func (s *Session) ID() uuid.UUID               { return s.id }
func (s *Session) SpotID() uuid.UUID           { return s.spotID }
func (s *Session) SpotLabel() string           { return s.spotLabel }
func (s *Session) Plate() vehicle.Plate        { return s.plate }
func (s *Session) VehicleClass() vehicle.Class { return s.vehicleClass }
func (s *Session) EntryTime() time.Time        { return s.entryTime }
func (s *Session) ExitTime() *time.Time        { return s.exitTime }
func (s *Session) AmountDue() *decimal.Decimal { return s.amountDue }
func (s *Session) IsOpen() bool                { return s.exitTime == nil }

// Close records the exit and the fee in one step. On error nothing changes.
func (s *Session) Close(exit time.Time, calc tariff.FeeCalculator, t *tariff.Tariff) error {
	if !s.IsOpen() {
		return ErrSessionAlreadyClosed
	}
	if t.VehicleClass() != s.vehicleClass {
		return ErrTariffMismatch
	}

	amount, err := calc.Calculate(s.entryTime, exit, t)
	if err != nil {
		return err
	}

	s.exitTime = &exit
	s.amountDue = &amount
	return nil
}

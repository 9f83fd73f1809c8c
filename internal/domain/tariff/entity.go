package tariff

import (
	"time"

	"parking-occupancy/internal/domain/vehicle"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTariffNotFound    = errs.Kind("tariff not found", errs.ErrNotFound)
	ErrNegativeRate      = errs.Kind("rates must not be negative", errs.ErrValidation)
	ErrRatePrecision     = errs.Kind("rates accept at most 2 decimal places", errs.ErrValidation)
	ErrNegativeTolerance = errs.Kind("tolerance minutes must not be negative", errs.ErrValidation)
)

const DefaultToleranceMinutes = 15

type Tariff struct {
	id                 uuid.UUID
	vehicleClass       vehicle.Class
	firstHourRate      decimal.Decimal
	additionalHourRate decimal.Decimal
	toleranceMinutes   int
	updatedAt          time.Time
}

func NewTariff(class vehicle.Class, firstHourRate, additionalHourRate decimal.Decimal, toleranceMinutes int, now time.Time) (*Tariff, error) {
	if !class.IsValid() {
		return nil, vehicle.ErrInvalidClass
	}
	t := &Tariff{
		id:                 uuid.New(),
		vehicleClass:       class,
		firstHourRate:      firstHourRate,
		additionalHourRate: additionalHourRate,
		toleranceMinutes:   toleranceMinutes,
		updatedAt:          now,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func ReconstructTariff(id uuid.UUID, class vehicle.Class, firstHourRate, additionalHourRate decimal.Decimal, toleranceMinutes int, updatedAt time.Time) *Tariff {
	return &Tariff{
		id:                 id,
		vehicleClass:       class,
		firstHourRate:      firstHourRate,
		additionalHourRate: additionalHourRate,
		toleranceMinutes:   toleranceMinutes,
		updatedAt:          updatedAt,
	}
}

// Defaults returns the tariffs seeded for every vehicle class.
func Defaults(now time.Time) []*Tariff {
	return []*Tariff{
		ReconstructTariff(uuid.New(), vehicle.ClassCar, decimal.RequireFromString("10.00"), decimal.RequireFromString("5.00"), DefaultToleranceMinutes, now),
		ReconstructTariff(uuid.New(), vehicle.ClassMotorcycle, decimal.RequireFromString("5.00"), decimal.RequireFromString("2.50"), DefaultToleranceMinutes, now),
	}
}

func (t *Tariff) ID() uuid.UUID                       { return t.id }
func (t *Tariff) VehicleClass() vehicle.Class         { return t.vehicleClass }
func (t *Tariff) FirstHourRate() decimal.Decimal      { return t.firstHourRate }
func (t *Tariff) AdditionalHourRate() decimal.Decimal { return t.additionalHourRate }
func (t *Tariff) ToleranceMinutes() int               { return t.toleranceMinutes }
func (t *Tariff) UpdatedAt() time.Time                { return t.updatedAt }

// Revision holds the fields an administrator may change; nil keeps the current value.
type Revision struct {
	FirstHourRate      *decimal.Decimal
	AdditionalHourRate *decimal.Decimal
	ToleranceMinutes   *int
}

// Revise applies r atomically: on a validation error t is left untouched.
func (t *Tariff) Revise(r Revision, now time.Time) error {
	next := *t
	next.firstHourRate = patch.Coalesce(r.FirstHourRate, t.firstHourRate)
	next.additionalHourRate = patch.Coalesce(r.AdditionalHourRate, t.additionalHourRate)
	next.toleranceMinutes = patch.Coalesce(r.ToleranceMinutes, t.toleranceMinutes)
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*t = next
	return nil
}

func (t *Tariff) validate() error {
	for _, rate := range []decimal.Decimal{t.firstHourRate, t.additionalHourRate} {
		if rate.IsNegative() {
			return ErrNegativeRate
		}
		if !rate.Equal(rate.Round(2)) {
			return ErrRatePrecision
		}
	}
	if t.toleranceMinutes < 0 {
		return ErrNegativeTolerance
	}
	return nil
}

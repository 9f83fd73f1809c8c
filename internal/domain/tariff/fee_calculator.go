package tariff

import (
	"time"

	"parking-occupancy/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidInterval = errs.Kind("exit time is before entry time", errs.ErrInvalidInterval)

type FeeCalculator interface {
	Calculate(entry, exit time.Time, t *Tariff) (decimal.Decimal, error)
}

// StandardFeeCalculator bills the first hour flat and every started hour after it.
// Stays up to the tolerance are free. Rounding happens once, on the final amount.
type StandardFeeCalculator struct{}

func NewStandardFeeCalculator() *StandardFeeCalculator {
	return &StandardFeeCalculator{}
}

func (StandardFeeCalculator) Calculate(entry, exit time.Time, t *Tariff) (decimal.Decimal, error) {
	if exit.Before(entry) {
		return decimal.Decimal{}, ErrInvalidInterval
	}

	// Duration division truncates, which is floor for non-negative spans.
	elapsedMinutes := int64(exit.Sub(entry) / time.Minute)
	if elapsedMinutes <= int64(t.ToleranceMinutes()) {
		return decimal.Zero.Round(2), nil
	}
	if elapsedMinutes <= 60 {
		return t.FirstHourRate().Round(2), nil
	}

	additionalHours := elapsedMinutes / 60
	if elapsedMinutes%60 > 0 {
		additionalHours++
	}
	additionalHours--

	amount := t.FirstHourRate().Add(t.AdditionalHourRate().Mul(decimal.NewFromInt(additionalHours)))
	return amount.Round(2), nil
}

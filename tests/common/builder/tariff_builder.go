//go:build unit || e2e

package builder

import (
	"time"

	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/domain/vehicle"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TariffBuilder struct {
	ID                 uuid.UUID
	VehicleClass       string
	FirstHourRate      string
	AdditionalHourRate string
	ToleranceMinutes   int
	UpdatedAt          time.Time
}

func NewTariffBuilder() *TariffBuilder {
	return &TariffBuilder{
		ID:                 uuid.New(),
		VehicleClass:       "car",
		FirstHourRate:      "10.00",
		AdditionalHourRate: "5.00",
		ToleranceMinutes:   15,
		UpdatedAt:          time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *TariffBuilder) With(mutate func(*TariffBuilder)) *TariffBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TariffBuilder) BuildDomain() *tariff.Tariff {
	return tariff.ReconstructTariff(b.ID, vehicle.Class(b.VehicleClass),
		decimal.RequireFromString(b.FirstHourRate), decimal.RequireFromString(b.AdditionalHourRate),
		b.ToleranceMinutes, b.UpdatedAt)
}

func (b *TariffBuilder) BuildReadModel() *readmodel.TariffRM {
	return &readmodel.TariffRM{
		ID:                 b.ID,
		VehicleClass:       b.VehicleClass,
		FirstHourRate:      decimal.RequireFromString(b.FirstHourRate),
		AdditionalHourRate: decimal.RequireFromString(b.AdditionalHourRate),
		ToleranceMinutes:   b.ToleranceMinutes,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (b *TariffBuilder) ForMotorcycle() *TariffBuilder {
	b.VehicleClass = "motorcycle"
	b.FirstHourRate = "5.00"
	b.AdditionalHourRate = "2.50"
	return b
}

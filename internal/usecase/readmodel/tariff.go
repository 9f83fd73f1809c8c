package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TariffRM struct {
	ID                 uuid.UUID       `json:"id"`
	VehicleClass       string          `json:"vehicle_class"`
	FirstHourRate      decimal.Decimal `json:"first_hour_rate"`
	AdditionalHourRate decimal.Decimal `json:"additional_hour_rate"`
	ToleranceMinutes   int             `json:"tolerance_minutes"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

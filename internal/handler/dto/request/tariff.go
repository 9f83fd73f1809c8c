package request

import (
	"parking-occupancy/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// UpdateTariffRequest rates accept JSON numbers or strings ("10.00").
type UpdateTariffRequest struct {
	FirstHourRate      *decimal.Decimal `json:"first_hour_rate"`
	AdditionalHourRate *decimal.Decimal `json:"additional_hour_rate"`
	ToleranceMinutes   *int             `json:"tolerance_minutes" binding:"omitempty,min=0"`
}

func (r *UpdateTariffRequest) ToCommand() commands.UpdateTariffRequest {
	return commands.UpdateTariffRequest{
		FirstHourRate:      r.FirstHourRate,
		AdditionalHourRate: r.AdditionalHourRate,
		ToleranceMinutes:   r.ToleranceMinutes,
	}
}

func (r *UpdateTariffRequest) IsEmpty() bool {
	return r.FirstHourRate == nil && r.AdditionalHourRate == nil && r.ToleranceMinutes == nil
}

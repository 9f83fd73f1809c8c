package response

import (
	"time"

	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type TariffResponse struct {
	ID                 uuid.UUID `json:"id"`
	VehicleClass       string    `json:"vehicle_class"`
	FirstHourRate      string    `json:"first_hour_rate"`
	AdditionalHourRate string    `json:"additional_hour_rate"`
	ToleranceMinutes   int       `json:"tolerance_minutes"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromTariffRM(rm *readmodel.TariffRM) (*TariffResponse, error) {
	var res TariffResponse
	if err := copyInto(&res, rm); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromTariffRMs(rms []readmodel.TariffRM) ([]*TariffResponse, error) {
	res := make([]*TariffResponse, len(rms))
	for i := range rms {
		r, err := FromTariffRM(&rms[i])
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromTariff(t *tariff.Tariff) *TariffResponse {
	return &TariffResponse{
		ID:                 t.ID(),
		VehicleClass:       t.VehicleClass().String(),
		FirstHourRate:      formatAmount(t.FirstHourRate()),
		AdditionalHourRate: formatAmount(t.AdditionalHourRate()),
		ToleranceMinutes:   t.ToleranceMinutes(),
		UpdatedAt:          t.UpdatedAt(),
	}
}

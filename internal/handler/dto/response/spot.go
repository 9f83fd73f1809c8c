package response

import (
	"time"

	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SpotResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Class     string    `json:"class"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromSpotRM(rm *readmodel.SpotRM) (*SpotResponse, error) {
	var res SpotResponse
	if err := copyInto(&res, rm); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromSpotRMs(rms []readmodel.SpotRM) ([]*SpotResponse, error) {
	res := make([]*SpotResponse, len(rms))
	for i := range rms {
		r, err := FromSpotRM(&rms[i])
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromSpot(s *spot.Spot) *SpotResponse {
	return &SpotResponse{
		ID:        s.ID(),
		Label:     s.Label(),
		Class:     s.Class().String(),
		Status:    s.Status().String(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

type StatisticsResponse struct {
	Total            int    `json:"total"`
	Free             int    `json:"free"`
	Occupied         int    `json:"occupied"`
	Maintenance      int    `json:"maintenance"`
	OccupancyPercent string `json:"occupancy_percent"`
	RevenueToday     string `json:"revenue_today"`
	Day              string `json:"day"`
}

func FromStatisticsRM(rm *readmodel.StatisticsRM) (*StatisticsResponse, error) {
	var res StatisticsResponse
	if err := copyInto(&res, rm); err != nil {
		return nil, err
	}
	return &res, nil
}

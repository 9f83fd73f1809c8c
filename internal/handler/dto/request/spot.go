package request

import (
	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/internal/usecase/queries"
)

type CreateSpotRequest struct {
	Label string `json:"label" binding:"required,max=20"`
	Class string `json:"class" binding:"required,oneof=car motorcycle accessible"`
}

func (r *CreateSpotRequest) ToCommand() commands.CreateSpotRequest {
	return commands.CreateSpotRequest{Label: r.Label, Class: r.Class}
}

type UpdateSpotRequest struct {
	Label  *string `json:"label" binding:"omitempty,max=20"`
	Class  *string `json:"class" binding:"omitempty,oneof=car motorcycle accessible"`
	Status *string `json:"status" binding:"omitempty,oneof=free occupied maintenance"`
}

func (r *UpdateSpotRequest) ToCommand() commands.UpdateSpotRequest {
	return commands.UpdateSpotRequest{Label: r.Label, Class: r.Class, Status: r.Status}
}

type ListSpotsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=free occupied maintenance"`
	Class  string `form:"class" binding:"omitempty,oneof=car motorcycle accessible"`
}

func (q *ListSpotsQuery) ToFilter() (queries.SpotFilter, error) {
	var filter queries.SpotFilter
	if q.Status != "" {
		status, err := spot.ParseStatus(q.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if q.Class != "" {
		class, err := spot.ParseClass(q.Class)
		if err != nil {
			return filter, err
		}
		filter.Class = &class
	}
	return filter, nil
}

package request

import (
	"parking-occupancy/internal/usecase/commands"

	"github.com/google/uuid"
)

// Plate format is checked after normalization by the domain, so only presence is bound here.
type EntryRequest struct {
	Plate        string    `json:"plate" binding:"required,max=16"`
	SpotID       uuid.UUID `json:"spot_id" binding:"required"`
	VehicleClass string    `json:"vehicle_class" binding:"required,oneof=car motorcycle"`
}

func (r *EntryRequest) ToCommand() commands.EntryRequest {
	return commands.EntryRequest{Plate: r.Plate, SpotID: r.SpotID, VehicleClass: r.VehicleClass}
}

type ExitRequest struct {
	Plate string `json:"plate" binding:"required,max=16"`
}

func (r *ExitRequest) ToCommand() commands.ExitRequest {
	return commands.ExitRequest{Plate: r.Plate}
}

// HistoryQuery bounds accept RFC3339 or YYYY-MM-DD.
type HistoryQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

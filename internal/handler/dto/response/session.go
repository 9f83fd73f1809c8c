package response

import (
	"time"

	"parking-occupancy/internal/domain/session"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ID           uuid.UUID  `json:"id"`
	SpotID       *uuid.UUID `json:"spot_id"`
	SpotLabel    string     `json:"spot_label"`
	Plate        string     `json:"plate"`
	VehicleClass string     `json:"vehicle_class"`
	EntryTime    time.Time  `json:"entry_time"`
	ExitTime     *time.Time `json:"exit_time"`
	AmountDue    *string    `json:"amount_due"`
}

func FromSessionRM(rm *readmodel.SessionRM) *SessionResponse {
	return &SessionResponse{
		ID:           rm.ID,
		SpotID:       rm.SpotID,
		SpotLabel:    rm.SpotLabel,
		Plate:        rm.Plate,
		VehicleClass: rm.VehicleClass,
		EntryTime:    rm.EntryTime,
		ExitTime:     rm.ExitTime.Ptr(),
		AmountDue:    formatNullAmount(rm.AmountDue),
	}
}

func FromSessionRMs(rms []readmodel.SessionRM) []*SessionResponse {
	res := make([]*SessionResponse, len(rms))
	for i := range rms {
		res[i] = FromSessionRM(&rms[i])
	}
	return res
}

func FromSession(s *session.Session) *SessionResponse {
	res := &SessionResponse{
		ID:           s.ID(),
		SpotLabel:    s.SpotLabel(),
		Plate:        s.Plate().String(),
		VehicleClass: s.VehicleClass().String(),
		EntryTime:    s.EntryTime(),
		ExitTime:     s.ExitTime(),
	}
	if id := s.SpotID(); id != uuid.Nil {
		res.SpotID = &id
	}
	if amount := s.AmountDue(); amount != nil {
		formatted := formatAmount(*amount)
		res.AmountDue = &formatted
	}
	return res
}

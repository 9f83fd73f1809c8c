package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/guregu/null.v4"
)

// SessionRM is a session row as shown to clients. SpotID is nil once the spot was deleted.
type SessionRM struct {
	ID           uuid.UUID           `json:"id"`
	SpotID       *uuid.UUID          `json:"spot_id"`
	SpotLabel    string              `json:"spot_label"`
	Plate        string              `json:"plate"`
	VehicleClass string              `json:"vehicle_class"`
	EntryTime    time.Time           `json:"entry_time"`
	ExitTime     null.Time           `json:"exit_time"`
	AmountDue    decimal.NullDecimal `json:"amount_due"`
}

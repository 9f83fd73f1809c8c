package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type SpotRM struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Class     string    `json:"class"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpotCountsRM holds spot totals per status.
type SpotCountsRM struct {
	Total       int
	Free        int
	Occupied    int
	Maintenance int
}

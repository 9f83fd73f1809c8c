//go:build unit || e2e

package builder

import (
	"time"

	"parking-occupancy/internal/domain/spot"
	reqdto "parking-occupancy/internal/handler/dto/request"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SpotBuilder struct {
	ID        uuid.UUID
	Label     string
	Class     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSpotBuilder() *SpotBuilder {
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	return &SpotBuilder{
		ID:        uuid.New(),
		Label:     "A-01",
		Class:     "car",
		Status:    "free",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *SpotBuilder) With(mutate func(*SpotBuilder)) *SpotBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SpotBuilder) BuildDomain() *spot.Spot {
	return spot.ReconstructSpot(b.ID, b.Label, spot.Class(b.Class), spot.Status(b.Status), b.CreatedAt, b.UpdatedAt)
}

func (b *SpotBuilder) BuildReadModel() *readmodel.SpotRM {
	return &readmodel.SpotRM{
		ID:        b.ID,
		Label:     b.Label,
		Class:     b.Class,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *SpotBuilder) BuildCreateRequestDTO() reqdto.CreateSpotRequest {
	return reqdto.CreateSpotRequest{Label: b.Label, Class: b.Class}
}

// Fluent builder methods
func (b *SpotBuilder) WithLabel(label string) *SpotBuilder {
	b.Label = label
	return b
}

func (b *SpotBuilder) WithClass(class string) *SpotBuilder {
	b.Class = class
	return b
}

func (b *SpotBuilder) AsOccupied() *SpotBuilder {
	b.Status = "occupied"
	return b
}

func (b *SpotBuilder) AsMaintenance() *SpotBuilder {
	b.Status = "maintenance"
	return b
}

package notify

import (
	"context"

	"parking-occupancy/internal/usecase/commands"

	cr "github.com/cockroachdb/errors"
)

// Fanout delivers each event to every publisher, even when an earlier one fails.
type Fanout struct {
	publishers []commands.EventPublisher
}

func NewFanout(publishers ...commands.EventPublisher) *Fanout {
	return &Fanout{publishers: publishers}
}

func (f *Fanout) Publish(ctx context.Context, event commands.OccupancyEvent) error {
	var combined error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, event); err != nil {
			combined = cr.CombineErrors(combined, err)
		}
	}
	return combined
}

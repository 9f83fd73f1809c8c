//go:build unit

package notify_test

import (
	"context"
	"testing"

	"parking-occupancy/internal/infra/notify"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/usecase/commands"
	commandsmock "parking-occupancy/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFanout_Publish(t *testing.T) {
	event := commands.OccupancyEvent{Type: commands.EventSessionOpened}

	t.Run("success: every publisher receives the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := commandsmock.NewMockEventPublisher(ctrl)
		second := commandsmock.NewMockEventPublisher(ctrl)
		first.EXPECT().Publish(gomock.Any(), event).Return(nil)
		second.EXPECT().Publish(gomock.Any(), event).Return(nil)

		assert.NoError(t, notify.NewFanout(first, second).Publish(context.Background(), event))
	})

	t.Run("error: a failing publisher does not stop the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := commandsmock.NewMockEventPublisher(ctrl)
		second := commandsmock.NewMockEventPublisher(ctrl)
		errCache := errs.New("cache unavailable")
		first.EXPECT().Publish(gomock.Any(), event).Return(errCache)
		second.EXPECT().Publish(gomock.Any(), event).Return(nil)

		err := notify.NewFanout(first, second).Publish(context.Background(), event)
		assert.ErrorIs(t, err, errCache)
	})

	t.Run("success: no publishers", func(t *testing.T) {
		assert.NoError(t, notify.NewFanout().Publish(context.Background(), event))
	})
}

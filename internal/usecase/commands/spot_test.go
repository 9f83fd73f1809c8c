//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/tests/common/builder"
	commandsmock "parking-occupancy/tests/mock/commands"
	sharedmock "parking-occupancy/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpotCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	uow    *sharedmock.MockUnitOfWork
	repos  txMocks
	events *commandsmock.MockEventPublisher
	cmds   commands.SpotCommands
}

func (s *SpotCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.repos = newTxMocks(s.ctrl)
	s.events = commandsmock.NewMockEventPublisher(s.ctrl)
	s.cmds = commands.NewSpotCommands(s.uow, clock.NewMockClock(now), s.events)
}

func (s *SpotCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSpotCommandsSuite(t *testing.T) {
	suite.Run(t, new(SpotCommandsTestSuite))
}

func strPtr(v string) *string { return &v }

func (s *SpotCommandsTestSuite) TestCreate() {
	s.Run("success: new spot starts free with trimmed label", func() {
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		created, err := s.cmds.Create(context.Background(), commands.CreateSpotRequest{Label: "  B-07 ", Class: "motorcycle"})

		s.Require().NoError(err)
		s.Equal("B-07", created.Label())
		s.Equal(spot.ClassMotorcycle, created.Class())
		s.Equal(spot.StatusFree, created.Status())
		s.Equal(now, created.CreatedAt())
	})

	validation := []struct {
		name    string
		req     commands.CreateSpotRequest
		wantErr error
	}{
		{name: "error: blank label", req: commands.CreateSpotRequest{Label: "   ", Class: "car"}, wantErr: spot.ErrEmptyLabel},
		{name: "error: label over 20 characters", req: commands.CreateSpotRequest{Label: strings.Repeat("x", 21), Class: "car"}, wantErr: spot.ErrLabelTooLong},
		{name: "error: unknown class", req: commands.CreateSpotRequest{Label: "A-01", Class: "truck"}, wantErr: spot.ErrInvalidClass},
	}
	for _, tc := range validation {
		s.Run(tc.name, func() {
			_, err := s.cmds.Create(context.Background(), tc.req)
			s.ErrorIs(err, tc.wantErr)
			s.ErrorIs(err, errs.ErrValidation)
		})
	}

	s.Run("error: duplicate label", func() {
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(spot.ErrDuplicateLabel)

		_, err := s.cmds.Create(context.Background(), commands.CreateSpotRequest{Label: "A-01", Class: "car"})
		s.ErrorIs(err, errs.ErrConflict)
	})
}

func (s *SpotCommandsTestSuite) TestUpdate() {
	s.Run("success: maintenance on a free spot", func() {
		target := freeSpot(spot.ClassCar)
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), target.ID()).Return(target, nil)
		s.repos.sessions.EXPECT().ExistsOpenForSpot(gomock.Any(), target.ID()).Return(false, nil)
		s.repos.spots.EXPECT().Update(gomock.Any(), target).Return(nil)
		s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := s.cmds.Update(context.Background(), target.ID(), commands.UpdateSpotRequest{Status: strPtr("maintenance")})

		s.Require().NoError(err)
		s.Equal(spot.StatusMaintenance, updated.Status())
		s.Equal("A-01", updated.Label())
		s.Equal(spot.ClassCar, updated.Class())
	})

	s.Run("success: rename keeps status and class", func() {
		target := freeSpot(spot.ClassAccessible)
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), target.ID()).Return(target, nil)
		s.repos.sessions.EXPECT().ExistsOpenForSpot(gomock.Any(), target.ID()).Return(false, nil)
		s.repos.spots.EXPECT().Update(gomock.Any(), target).Return(nil)
		s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := s.cmds.Update(context.Background(), target.ID(), commands.UpdateSpotRequest{Label: strPtr("ACC-1")})

		s.Require().NoError(err)
		s.Equal("ACC-1", updated.Label())
		s.Equal(spot.ClassAccessible, updated.Class())
		s.Equal(spot.StatusFree, updated.Status())
	})

	s.Run("error: manual occupy is refused", func() {
		target := freeSpot(spot.ClassCar)
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), target.ID()).Return(target, nil)
		s.repos.sessions.EXPECT().ExistsOpenForSpot(gomock.Any(), target.ID()).Return(false, nil)

		_, err := s.cmds.Update(context.Background(), target.ID(), commands.UpdateSpotRequest{Status: strPtr("occupied")})
		s.ErrorIs(err, spot.ErrManualOccupy)
	})

	s.Run("error: freeing a spot with an open session", func() {
		target := builder.NewSpotBuilder().WithLabel("A-09").AsOccupied().BuildDomain()
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), target.ID()).Return(target, nil)
		s.repos.sessions.EXPECT().ExistsOpenForSpot(gomock.Any(), target.ID()).Return(true, nil)

		_, err := s.cmds.Update(context.Background(), target.ID(), commands.UpdateSpotRequest{Status: strPtr("free")})
		s.ErrorIs(err, spot.ErrInvalidTransition)
		s.ErrorIs(err, errs.ErrInvalidState)
	})

	s.Run("error: invalid status value", func() {
		_, err := s.cmds.Update(context.Background(), uuid.New(), commands.UpdateSpotRequest{Status: strPtr("closed")})
		s.ErrorIs(err, spot.ErrInvalidStatus)
	})

	s.Run("error: spot not found", func() {
		id := uuid.New()
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, spot.ErrSpotNotFound)

		_, err := s.cmds.Update(context.Background(), id, commands.UpdateSpotRequest{Label: strPtr("Z-1")})
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

func (s *SpotCommandsTestSuite) TestDelete() {
	s.Run("success: free spot is removed", func() {
		target := freeSpot(spot.ClassCar)
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), target.ID()).Return(target, nil)
		s.repos.sessions.EXPECT().ExistsOpenForSpot(gomock.Any(), target.ID()).Return(false, nil)
		s.repos.spots.EXPECT().Delete(gomock.Any(), target.ID()).Return(nil)
		s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e commands.OccupancyEvent) error {
				s.Equal(commands.EventSpotDeleted, e.Type)
				s.Equal(now, e.At)
				return nil
			})

		s.NoError(s.cmds.Delete(context.Background(), target.ID()))
	})

	s.Run("error: spot with an open session", func() {
		target := builder.NewSpotBuilder().WithLabel("A-09").AsOccupied().BuildDomain()
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), target.ID()).Return(target, nil)
		s.repos.sessions.EXPECT().ExistsOpenForSpot(gomock.Any(), target.ID()).Return(true, nil)

		err := s.cmds.Delete(context.Background(), target.ID())
		s.ErrorIs(err, spot.ErrSpotInUse)
	})
}

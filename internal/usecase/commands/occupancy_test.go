//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parking-occupancy/internal/domain/session"
	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/domain/vehicle"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/internal/usecase/shared"
	"parking-occupancy/tests/common/builder"
	commandsmock "parking-occupancy/tests/mock/commands"
	sharedmock "parking-occupancy/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC)

type txMocks struct {
	tx       *sharedmock.MockTx
	spots    *sharedmock.MockSpotRepository
	sessions *sharedmock.MockSessionRepository
	tariffs  *sharedmock.MockTariffRepository
	ops      *sharedmock.MockOperatorRepository
}

// newTxMocks wires a Tx whose repositories may be fetched any number of times.
func newTxMocks(ctrl *gomock.Controller) txMocks {
	m := txMocks{
		tx:       sharedmock.NewMockTx(ctrl),
		spots:    sharedmock.NewMockSpotRepository(ctrl),
		sessions: sharedmock.NewMockSessionRepository(ctrl),
		tariffs:  sharedmock.NewMockTariffRepository(ctrl),
		ops:      sharedmock.NewMockOperatorRepository(ctrl),
	}
	m.tx.EXPECT().Spots().Return(m.spots).AnyTimes()
	m.tx.EXPECT().Sessions().Return(m.sessions).AnyTimes()
	m.tx.EXPECT().Tariffs().Return(m.tariffs).AnyTimes()
	m.tx.EXPECT().Operators().Return(m.ops).AnyTimes()
	return m
}

func expectWithin(uow *sharedmock.MockUnitOfWork, tx shared.Tx) {
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		})
}

type OccupancyCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	uow    *sharedmock.MockUnitOfWork
	repos  txMocks
	events *commandsmock.MockEventPublisher
	clock  *clock.MockClock
	cmds   commands.OccupancyCommands
}

func (s *OccupancyCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.repos = newTxMocks(s.ctrl)
	s.events = commandsmock.NewMockEventPublisher(s.ctrl)
	s.clock = clock.NewMockClock(now)
	policy := spot.NewCompatibilityPolicy([]vehicle.Class{vehicle.ClassCar})
	s.cmds = commands.NewOccupancyCommands(s.uow, s.clock, tariff.NewStandardFeeCalculator(), policy, s.events)
}

func (s *OccupancyCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOccupancyCommandsSuite(t *testing.T) {
	suite.Run(t, new(OccupancyCommandsTestSuite))
}

func freeSpot(class spot.Class) *spot.Spot {
	return spot.ReconstructSpot(uuid.New(), "A-01", class, spot.StatusFree, now.Add(-24*time.Hour), now.Add(-24*time.Hour))
}

func (s *OccupancyCommandsTestSuite) TestEntry() {
	s.Run("success: opens session and occupies spot", func() {
		target := freeSpot(spot.ClassCar)
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), target.ID()).Return(target, nil)
		s.repos.sessions.EXPECT().ExistsOpenForPlate(gomock.Any(), gomock.Any()).Return(false, nil)
		s.repos.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.repos.spots.EXPECT().Update(gomock.Any(), target).Return(nil)
		s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e commands.OccupancyEvent) error {
				s.Equal(commands.EventSessionOpened, e.Type)
				s.Equal("ABC-1234", e.Plate)
				s.Equal("occupied", e.SpotStatus)
				return nil
			})

		sess, err := s.cmds.Entry(context.Background(), commands.EntryRequest{
			Plate: " abc-1234 ", SpotID: target.ID(), VehicleClass: "car",
		})

		s.Require().NoError(err)
		s.Equal("ABC-1234", sess.Plate().String())
		s.Equal(target.ID(), sess.SpotID())
		s.Equal("A-01", sess.SpotLabel())
		s.Equal(now, sess.EntryTime())
		s.True(sess.IsOpen())
		s.Equal(spot.StatusOccupied, target.Status())
	})

	s.Run("success: publish failure does not fail the entry", func() {
		target := freeSpot(spot.ClassCar)
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), target.ID()).Return(target, nil)
		s.repos.sessions.EXPECT().ExistsOpenForPlate(gomock.Any(), gomock.Any()).Return(false, nil)
		s.repos.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.repos.spots.EXPECT().Update(gomock.Any(), target).Return(nil)
		s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errs.New("hub down"))

		_, err := s.cmds.Entry(context.Background(), commands.EntryRequest{
			Plate: "ABC1D23", SpotID: target.ID(), VehicleClass: "car",
		})
		s.NoError(err)
	})

	s.Run("error: invalid plate never reaches the database", func() {
		_, err := s.cmds.Entry(context.Background(), commands.EntryRequest{
			Plate: "12-AB", SpotID: uuid.New(), VehicleClass: "car",
		})
		s.ErrorIs(err, vehicle.ErrInvalidPlate)
		s.ErrorIs(err, errs.ErrValidation)
	})

	s.Run("error: unknown vehicle class", func() {
		_, err := s.cmds.Entry(context.Background(), commands.EntryRequest{
			Plate: "ABC-1234", SpotID: uuid.New(), VehicleClass: "truck",
		})
		s.ErrorIs(err, vehicle.ErrInvalidClass)
	})

	s.Run("error: spot not found", func() {
		id := uuid.New()
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, spot.ErrSpotNotFound)

		_, err := s.cmds.Entry(context.Background(), commands.EntryRequest{
			Plate: "ABC-1234", SpotID: id, VehicleClass: "car",
		})
		s.ErrorIs(err, errs.ErrNotFound)
	})

	errorCases := []struct {
		name    string
		spot    *spot.Spot
		class   string
		wantErr error
	}{
		{
			name:    "error: spot already occupied",
			spot:    builder.NewSpotBuilder().WithLabel("A-02").AsOccupied().BuildDomain(),
			class:   "car",
			wantErr: spot.ErrSpotNotFree,
		},
		{
			name:    "error: spot under maintenance",
			spot:    builder.NewSpotBuilder().WithLabel("A-03").AsMaintenance().BuildDomain(),
			class:   "car",
			wantErr: spot.ErrSpotNotFree,
		},
		{
			name:    "error: car on a motorcycle spot",
			spot:    freeSpot(spot.ClassMotorcycle),
			class:   "car",
			wantErr: spot.ErrIncompatibleVehicle,
		},
		{
			name:    "error: motorcycle on accessible spot when only cars are allowed",
			spot:    builder.NewSpotBuilder().WithClass("accessible").BuildDomain(),
			class:   "motorcycle",
			wantErr: spot.ErrIncompatibleVehicle,
		},
	}
	for _, tc := range errorCases {
		s.Run(tc.name, func() {
			expectWithin(s.uow, s.repos.tx)
			s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), tc.spot.ID()).Return(tc.spot, nil)

			_, err := s.cmds.Entry(context.Background(), commands.EntryRequest{
				Plate: "ABC-1234", SpotID: tc.spot.ID(), VehicleClass: tc.class,
			})
			s.ErrorIs(err, tc.wantErr)
			s.ErrorIs(err, errs.ErrInvalidState)
		})
	}

	s.Run("error: plate already has an open session", func() {
		target := freeSpot(spot.ClassCar)
		expectWithin(s.uow, s.repos.tx)
		s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), target.ID()).Return(target, nil)
		s.repos.sessions.EXPECT().ExistsOpenForPlate(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := s.cmds.Entry(context.Background(), commands.EntryRequest{
			Plate: "ABC-1234", SpotID: target.ID(), VehicleClass: "car",
		})
		s.ErrorIs(err, session.ErrPlateAlreadyActive)
		s.ErrorIs(err, errs.ErrConflict)
		s.Equal(spot.StatusFree, target.Status())
	})
}

func (s *OccupancyCommandsTestSuite) TestExit() {
	plate, _ := vehicle.ParsePlate("ABC-1234")
	carTariff := tariff.ReconstructTariff(uuid.New(), vehicle.ClassCar,
		decimal.RequireFromString("10.00"), decimal.RequireFromString("5.00"), 15, now)

	openAt := func(entry time.Time) (*session.Session, *spot.Spot) {
		sp := spot.ReconstructSpot(uuid.New(), "A-01", spot.ClassCar, spot.StatusOccupied, entry, entry)
		sess, err := session.Open(plate, sp.ID(), sp.Label(), vehicle.ClassCar, entry)
		s.Require().NoError(err)
		return sess, sp
	}

	cases := []struct {
		name   string
		entry  time.Time
		amount string
	}{
		{name: "success: within tolerance is free", entry: now.Add(-10 * time.Minute), amount: "0.00"},
		{name: "success: first hour only", entry: now.Add(-45 * time.Minute), amount: "10.00"},
		{name: "success: partial hours round up", entry: now.Add(-150 * time.Minute), amount: "20.00"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			sess, sp := openAt(tc.entry)
			expectWithin(s.uow, s.repos.tx)
			s.repos.sessions.EXPECT().FindOpenByPlateForUpdate(gomock.Any(), plate).Return(sess, nil)
			s.repos.tariffs.EXPECT().FindByClass(gomock.Any(), vehicle.ClassCar).Return(carTariff, nil)
			s.repos.sessions.EXPECT().Close(gomock.Any(), sess).Return(nil)
			s.repos.spots.EXPECT().FindByIDForUpdate(gomock.Any(), sp.ID()).Return(sp, nil)
			s.repos.spots.EXPECT().Update(gomock.Any(), sp).Return(nil)
			s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e commands.OccupancyEvent) error {
					s.Equal(commands.EventSessionClosed, e.Type)
					s.Require().NotNil(e.AmountDue)
					s.Equal(tc.amount, e.AmountDue.StringFixed(2))
					return nil
				})

			closed, err := s.cmds.Exit(context.Background(), commands.ExitRequest{Plate: "abc-1234"})

			s.Require().NoError(err)
			s.False(closed.IsOpen())
			s.Equal(now, *closed.ExitTime())
			s.Equal(tc.amount, closed.AmountDue().StringFixed(2))
			s.Equal(spot.StatusFree, sp.Status())
		})
	}

	s.Run("error: no open session for plate", func() {
		expectWithin(s.uow, s.repos.tx)
		s.repos.sessions.EXPECT().FindOpenByPlateForUpdate(gomock.Any(), plate).Return(nil, session.ErrSessionNotFound)

		_, err := s.cmds.Exit(context.Background(), commands.ExitRequest{Plate: "ABC-1234"})
		s.ErrorIs(err, session.ErrSessionNotFound)
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("error: invalid plate", func() {
		_, err := s.cmds.Exit(context.Background(), commands.ExitRequest{Plate: "nope"})
		s.ErrorIs(err, vehicle.ErrInvalidPlate)
	})

	s.Run("error: entry after exit is an invalid interval", func() {
		sess, _ := openAt(now.Add(time.Hour))
		expectWithin(s.uow, s.repos.tx)
		s.repos.sessions.EXPECT().FindOpenByPlateForUpdate(gomock.Any(), plate).Return(sess, nil)
		s.repos.tariffs.EXPECT().FindByClass(gomock.Any(), vehicle.ClassCar).Return(carTariff, nil)

		_, err := s.cmds.Exit(context.Background(), commands.ExitRequest{Plate: "ABC-1234"})
		s.ErrorIs(err, errs.ErrInvalidInterval)
	})

	s.Run("error: repository failure aborts before the spot is released", func() {
		sess, _ := openAt(now.Add(-time.Hour))
		expectWithin(s.uow, s.repos.tx)
		s.repos.sessions.EXPECT().FindOpenByPlateForUpdate(gomock.Any(), plate).Return(sess, nil)
		s.repos.tariffs.EXPECT().FindByClass(gomock.Any(), vehicle.ClassCar).Return(carTariff, nil)
		s.repos.sessions.EXPECT().Close(gomock.Any(), sess).Return(errs.ErrStorageUnavailable)

		_, err := s.cmds.Exit(context.Background(), commands.ExitRequest{Plate: "ABC-1234"})
		s.ErrorIs(err, errs.ErrStorageUnavailable)
	})
}

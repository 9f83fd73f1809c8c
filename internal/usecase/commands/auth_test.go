//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/pkg/password"
	"parking-occupancy/internal/usecase/commands"
	commandsmock "parking-occupancy/tests/mock/commands"
	sharedmock "parking-occupancy/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "password123"

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	uow    *sharedmock.MockUnitOfWork
	repos  txMocks
	tokens *commandsmock.MockTokenIssuer
	cmds   commands.AuthCommands
	hash   string
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	password.Cost = bcrypt.MinCost
	hash, err := password.HashPassword(testPassword)
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.repos = newTxMocks(s.ctrl)
	s.tokens = commandsmock.NewMockTokenIssuer(s.ctrl)
	s.cmds = commands.NewAuthCommands(s.uow, s.tokens, clock.NewMockClock(now))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) operator(role operator.Role, active bool) *operator.Operator {
	return operator.ReconstructOperator(uuid.New(), operator.ReconstructEmail("staff@example.com"), s.hash, role, active, nil)
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: returns token and role", func() {
		op := s.operator(operator.RoleAttendant, true)
		expectWithin(s.uow, s.repos.tx)
		s.repos.ops.EXPECT().FindByEmail(gomock.Any(), op.Email()).Return(op, nil)
		s.repos.ops.EXPECT().UpdateLastLogin(gomock.Any(), op.ID(), now).Return(nil)
		s.tokens.EXPECT().GenerateToken(op.ID(), operator.RoleAttendant).Return("signed", nil)
		s.tokens.EXPECT().TokenDuration().Return(time.Hour)

		res, err := s.cmds.Login(context.Background(), commands.LoginRequest{Email: "staff@example.com", Password: testPassword})

		s.Require().NoError(err)
		s.Equal(op.ID(), res.OperatorID)
		s.Equal(operator.RoleAttendant, res.Role)
		s.Equal("signed", res.AccessToken)
		s.Equal(time.Hour, res.ExpiresIn)
	})

	s.Run("success: last login failure is not fatal", func() {
		op := s.operator(operator.RoleAdmin, true)
		expectWithin(s.uow, s.repos.tx)
		s.repos.ops.EXPECT().FindByEmail(gomock.Any(), op.Email()).Return(op, nil)
		s.repos.ops.EXPECT().UpdateLastLogin(gomock.Any(), op.ID(), now).Return(errs.New("timeout"))
		s.tokens.EXPECT().GenerateToken(op.ID(), operator.RoleAdmin).Return("signed", nil)
		s.tokens.EXPECT().TokenDuration().Return(time.Hour)

		_, err := s.cmds.Login(context.Background(), commands.LoginRequest{Email: "staff@example.com", Password: testPassword})
		s.NoError(err)
	})

	s.Run("error: malformed email looks like bad credentials", func() {
		_, err := s.cmds.Login(context.Background(), commands.LoginRequest{Email: "nope", Password: testPassword})
		s.ErrorIs(err, operator.ErrInvalidCredentials)
	})

	s.Run("error: unknown email", func() {
		expectWithin(s.uow, s.repos.tx)
		s.repos.ops.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("operator not found", nil, infra.KindNotFound))

		_, err := s.cmds.Login(context.Background(), commands.LoginRequest{Email: "ghost@example.com", Password: testPassword})
		s.ErrorIs(err, operator.ErrInvalidCredentials)
	})

	s.Run("error: wrong password", func() {
		op := s.operator(operator.RoleAttendant, true)
		expectWithin(s.uow, s.repos.tx)
		s.repos.ops.EXPECT().FindByEmail(gomock.Any(), op.Email()).Return(op, nil)

		_, err := s.cmds.Login(context.Background(), commands.LoginRequest{Email: "staff@example.com", Password: "wrong-password"})
		s.ErrorIs(err, operator.ErrInvalidCredentials)
	})

	s.Run("error: inactive operator", func() {
		op := s.operator(operator.RoleAttendant, false)
		expectWithin(s.uow, s.repos.tx)
		s.repos.ops.EXPECT().FindByEmail(gomock.Any(), op.Email()).Return(op, nil)

		_, err := s.cmds.Login(context.Background(), commands.LoginRequest{Email: "staff@example.com", Password: testPassword})
		s.ErrorIs(err, operator.ErrOperatorInactive)
	})

	s.Run("error: token signing failure", func() {
		op := s.operator(operator.RoleAttendant, true)
		expectWithin(s.uow, s.repos.tx)
		s.repos.ops.EXPECT().FindByEmail(gomock.Any(), op.Email()).Return(op, nil)
		s.repos.ops.EXPECT().UpdateLastLogin(gomock.Any(), op.ID(), now).Return(nil)
		s.tokens.EXPECT().GenerateToken(op.ID(), operator.RoleAttendant).Return("", errs.New("no key"))

		_, err := s.cmds.Login(context.Background(), commands.LoginRequest{Email: "staff@example.com", Password: testPassword})
		s.ErrorIs(err, commands.ErrTokenGeneration)
		s.True(errs.Is(err, commands.ErrTokenGeneration))
		s.Contains(fmt.Sprintf("%+v", err), "no key")
	})
}

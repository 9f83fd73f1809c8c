package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/infra"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/pkg/password"
	"parking-occupancy/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	OperatorID  uuid.UUID
	Role        operator.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens, clock: clk}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := operator.NewCredentials(req.Email, req.Password)
	if err != nil {
		// Same answer as a wrong password so emails cannot be probed
		return nil, operator.ErrInvalidCredentials
	}

	var op *operator.Operator
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Operators().FindByEmail(ctx, credentials.Email())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return operator.ErrInvalidCredentials
			}
			return err
		}
		if err := password.ComparePassword(found.PasswordHash(), credentials.Password().Value()); err != nil {
			return operator.ErrInvalidCredentials
		}
		if !found.IsActive() {
			return operator.ErrOperatorInactive
		}

		if err := tx.Operators().UpdateLastLogin(ctx, found.ID(), a.clock.Now()); err != nil {
			slog.WarnContext(ctx, "failed to update last login", "operator_id", found.ID(), "error", err.Error())
		}
		op = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.tokens.GenerateToken(op.ID(), op.Role())
	if err != nil {
		return nil, errs.Translate(err, ErrTokenGeneration, "generate token")
	}

	return &LoginResult{
		OperatorID:  op.ID(),
		Role:        op.Role(),
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

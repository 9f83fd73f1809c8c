package commands

import (
	"context"
	"log/slog"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/domain/tariff"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/pkg/password"
	"parking-occupancy/internal/usecase/shared"
)

// SeedCommands prepares reference data at startup. Both operations are idempotent.
type SeedCommands interface {
	SeedTariffs(ctx context.Context) (int, error)
	EnsureAdmin(ctx context.Context, email, plainPassword string) (bool, error)
}

type seedCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSeedCommands(uow shared.UnitOfWork, clk clock.Clock) SeedCommands {
	return &seedCommandsImpl{uow: uow, clock: clk}
}

func (c *seedCommandsImpl) SeedTariffs(ctx context.Context) (int, error) {
	var inserted int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Tariffs().SeedDefaults(ctx, tariff.Defaults(c.clock.Now()))
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		slog.InfoContext(ctx, "seeded default tariffs", "count", inserted)
	}
	return inserted, nil
}

func (c *seedCommandsImpl) EnsureAdmin(ctx context.Context, email, plainPassword string) (bool, error) {
	credentials, err := operator.NewCredentials(email, plainPassword)
	if err != nil {
		return false, err
	}
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return false, err
	}
	admin := operator.NewOperator(credentials.Email(), hash, operator.RoleAdmin)

	var created bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = tx.Operators().CreateIfAbsent(ctx, admin)
		return err
	})
	if err != nil {
		return false, err
	}
	if created {
		slog.InfoContext(ctx, "created bootstrap admin", "email", credentials.Email().Value())
	}
	return created, nil
}

package commands

import (
	"context"
	"errors"
	"time"

	"barpos/internal/pkg/guard"
)

var (
	ErrPurgeClosedOrdersCommandIsNotConstructed = errors.New(
		"PurgeClosedOrdersCommand must be created via NewPurgeClosedOrdersCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// PurgeClosedOrdersCommand requests deletion of delivered and cancelled
// orders older than the retention window. Run periodically by the jobs
// package to keep the orders table bounded.
type PurgeClosedOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeClosedOrdersCommand creates a purge command with the given
// retention window. Retention must be positive.
func NewPurgeClosedOrdersCommand(retention time.Duration) (PurgeClosedOrdersCommand, error) {
	purgeCommand := PurgeClosedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if retention <= 0 {
		return PurgeClosedOrdersCommand{}, ErrRetentionIsInvalid
	}
	purgeCommand.retention = retention

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeClosedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeClosedOrdersCommandIsNotConstructed)
}

// Retention returns how long closed orders are kept.
func (c PurgeClosedOrdersCommand) Retention() time.Duration {
	return c.retention
}

// PurgeClosedOrdersCommandHandler deletes closed orders past retention.
// Purged orders are gone silently; no broadcast accompanies retention
// cleanup since the orders have long left every screen.
type PurgeClosedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeClosedOrdersCommandHandler creates a handler for retention purges.
func NewPurgeClosedOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeClosedOrdersCommandHandler {
	return PurgeClosedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes closed orders created before now minus retention and
// returns how many were removed.
func (h *PurgeClosedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeClosedOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	removed, err := uow.OrderRepository().RemoveClosedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}

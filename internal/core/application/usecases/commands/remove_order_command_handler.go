package commands

import (
	"context"

	"barpos/internal/core/domain/services"
	"barpos/internal/core/ports"
)

// RemoveOrderCommandHandler handles order deletion. The order is loaded
// before removal so the cancellation broadcast can carry its last known
// state to every audience.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	router     services.AudienceRouter
	publisher  ports.EventPublisher
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
func NewRemoveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	router services.AudienceRouter,
	publisher ports.EventPublisher,
) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		publisher:  publisher,
	}
}

// Handle processes the removal command. Returns errs.ObjectNotFoundError
// when the order does not exist; nothing is broadcast in that case.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	storedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderRepo.Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, publication := range h.router.RouteRemoved(storedOrder) {
		h.publisher.Publish(publication)
	}

	return nil
}

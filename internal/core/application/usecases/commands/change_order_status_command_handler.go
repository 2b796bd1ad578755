package commands

import (
	"context"

	"barpos/internal/core/domain/model/order"
	"barpos/internal/core/domain/services"
	"barpos/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles order status transitions.
// Loads the order, applies the transition, persists it, and after commit
// fans out an audit event plus the status-specific notification decided by
// the AudienceRouter.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	router     services.AudienceRouter
	publisher  ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	router services.AudienceRouter,
	publisher ports.EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		publisher:  publisher,
	}
}

// Handle processes the status change and returns the updated order together
// with the status it held before the change. Returns
// errs.ObjectNotFoundError when the order does not exist; nothing is
// broadcast in that case.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return nil, order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	storedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, order.Unknown, err
	}

	previous, err := storedOrder.ChangeStatus(cmd.Target())
	if err != nil {
		return nil, order.Unknown, err
	}

	if err = orderRepo.Update(ctx, storedOrder); err != nil {
		return nil, order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, order.Unknown, err
	}

	for _, publication := range h.router.RouteStatusChanged(storedOrder, previous) {
		h.publisher.Publish(publication)
	}

	return storedOrder, previous, nil
}

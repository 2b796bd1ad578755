package commands

import (
	"context"

	"barpos/internal/core/domain/model/order"
	"barpos/internal/core/domain/services"
	"barpos/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for opening an order.
// New orders start in pending status. After the order is committed, creation
// events fan out to every audience; delivery of those events is best-effort
// and never fails the command.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	router     services.AudienceRouter
	publisher  ports.EventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, an
// AudienceRouter deciding fan-out, and an EventPublisher delivering it.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	router services.AudienceRouter,
	publisher ports.EventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		publisher:  publisher,
	}
}

// Handle processes the order placement command and returns the stored order.
// Uses a transaction to ensure the order is properly persisted or rolled
// back on error; broadcast happens only after a successful commit.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.TableNumber(), cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, publication := range h.router.RouteCreated(newOrder) {
		h.publisher.Publish(publication)
	}

	return newOrder, nil
}

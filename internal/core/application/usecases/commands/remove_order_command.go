package commands

import (
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to delete an order outright.
// Removal behaves as a cancellation for every connected observer.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to delete an order.
func NewRemoveOrderCommand(orderID kernel.UUID) (RemoveOrderCommand, error) {
	removeCommand := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

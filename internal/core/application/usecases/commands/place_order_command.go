package commands

import (
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/order"
	"barpos/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("order must contain at least one item")
)

// PlaceOrderCommand represents a request to open a new order for a table.
// Encapsulates the order identity, the table it belongs to, and its items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, table, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, router, publisher)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	tableNumber kernel.TableNumber
	items       []order.Item

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to open a new order.
// Validates that the order ID and table number are valid and that at least
// one item is present. Returns an error if any validation fails.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	tableNumber kernel.TableNumber,
	items []order.Item,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setTableNumber(tableNumber),
		placeCommand.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableNumber returns the table the order is opened for.
func (c PlaceOrderCommand) TableNumber() kernel.TableNumber {
	return c.tableNumber
}

// Items returns the order lines.
func (c PlaceOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}

	c.tableNumber = tableNumber
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

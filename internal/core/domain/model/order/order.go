package order

import (
	"errors"
	"time"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a single table's placed set of product selections with a
// lifecycle status. It is the aggregate root for the order lifecycle, from
// placement through kitchen preparation to delivery or cancellation.
//
// Order maintains these invariants:
//   - Valid unique identifier and table number
//   - At least one line item; the item sequence is ordered and immutable
//   - Creation timestamp set once, at placement
//   - Status only changes through ChangeStatus, which validates the target
//
// Fields are private; construct through NewOrder (placement) or RestoreOrder
// (rehydration from persistence).
type Order struct {
	id          kernel.UUID
	tableNumber kernel.TableNumber
	items       []Item
	status      Status
	createdAt   time.Time

	isConstructed bool
}

// NewOrder creates a newly placed Order with Pending status and the current
// UTC time as its creation timestamp.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - tableNumber: the table the order was placed from
//   - items: non-empty ordered sequence of line items
//
// Returns a validation error if any parameter is invalid.
//
// Example:
//
//	item, _ := order.NewItem("beer", 2)
//	o, err := order.NewOrder(kernel.NewUUID(), table, []order.Item{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, tableNumber kernel.TableNumber, items []Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts an arbitrary valid status and creation time,
// since those were validated when the order was first placed.
func RestoreOrder(
	id kernel.UUID,
	tableNumber kernel.TableNumber,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableNumber returns the table the order was placed from.
func (o *Order) TableNumber() kernel.TableNumber {
	return o.tableNumber
}

// Items returns the ordered line items. The returned slice is a copy;
// mutating it does not affect the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to target and returns the status the order
// held immediately before the call. Any valid status is accepted as a
// target; see Status for the rationale behind the permissive state machine.
//
// Returns:
//   - (previous, nil) on success
//   - (Unknown, error) if target is not a valid status; the order is unchanged
func (o *Order) ChangeStatus(target Status) (Status, error) {
	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return Unknown, err
	}

	previous := o.status
	o.status = newStatus
	return previous, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}
	o.tableNumber = tableNumber
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

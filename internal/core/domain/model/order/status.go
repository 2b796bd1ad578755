package order

import (
	"fmt"

	"barpos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Typical progression:
//
//	Pending ──> Preparing ──> Ready ──> Delivered
//	    │            │          │
//	    └────────────┴──────────┴────> Cancelled
//
// Delivered and Cancelled are the terminal states of that progression.
// Transitions are NOT restricted to it, however: ChangeTo accepts any valid
// status as a target, because floor staff routinely move orders backwards to
// correct mistakes (a "ready" order sent back to the kitchen, an accidental
// cancellation undone). Tightening this into a strict forward-only state
// machine would be a product decision, not a bug fix.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly placed order.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is ready for a waiter to pick up.
	Ready

	// Delivered indicates the order reached its table. Terminal in the
	// typical progression.
	Delivered

	// Cancelled indicates the order was called off. Terminal in the
	// typical progression.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a wire-format status name ("pending", "preparing",
// "ready", "delivered", "cancelled") into a Status.
// Returns a ValueIsInvalidError for anything outside that closed set; the
// caller is expected to fail before touching the store.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status name", s),
	)
}

// Validate checks if the Status value is one of the five valid statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status ("pending", "ready", ...).
// Implements fmt.Stringer and is safe to call on any Status value;
// invalid values return "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the typical progression.
// Terminal orders are eligible for retention cleanup.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ChangeTo validates target as a transition destination and returns it.
//
// Any valid status is accepted regardless of the current status; see the
// Status documentation for why the state machine is permissive.
//
// Returns:
//   - (target, nil) when target is one of the five valid statuses
//   - (Unknown, error) when target is outside the enum
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	return target, nil
}

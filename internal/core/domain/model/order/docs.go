// Package order provides the domain model for table orders: the Order
// aggregate root, its line items, and the lifecycle Status enum.
//
// Key business rules:
//   - Orders must reference a valid table and carry at least one line item
//   - A new order always starts in Pending status with an immutable
//     creation timestamp
//   - The typical progression is Pending -> Preparing -> Ready -> Delivered,
//     with Cancelled reachable from any non-terminal state; Delivered and
//     Cancelled are terminal in that progression
//   - Status changes are deliberately permissive: any valid status is
//     accepted as a target so staff can correct mistakes (see Status)
//
// The package follows Domain-Driven Design principles: private fields,
// validating constructors, and a constructor guard against zero values.
package order

package order

import (
	"fmt"

	"barpos/internal/pkg/errs"
)

// Item is a single line of an order: a product reference and a quantity.
// The product reference is opaque to the lifecycle engine; it is whatever
// the menu front end put in the QR flow payload.
//
// Item is an immutable value object; construct through NewItem.
type Item struct {
	productRef string
	quantity   int
}

// NewItem creates a validated line item.
// The product reference must be non-empty and the quantity positive.
func NewItem(productRef string, quantity int) (Item, error) {
	if productRef == "" {
		return Item{}, errs.NewValueIsRequiredError("productRef")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{productRef: productRef, quantity: quantity}, nil
}

// ProductRef returns the opaque product reference.
func (i Item) ProductRef() string {
	return i.productRef
}

// Quantity returns how many units of the product were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// IsEqual compares two items by product reference and quantity.
func (i Item) IsEqual(other Item) bool {
	return i.productRef == other.productRef && i.quantity == other.quantity
}

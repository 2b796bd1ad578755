package kernel

import (
	"strconv"

	"barpos/internal/pkg/errs"
)

// maxTableNumber bounds table numbers to keep channel names and QR payloads
// sane. No venue this system targets has a thousand tables.
const maxTableNumber = 1000

// ErrTableNumberIsNotConstructed indicates that a TableNumber was not created
// through NewTableNumber. The zero value fails validation.
var ErrTableNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TableNumber must be created via NewTableNumber",
)

// TableNumber is a value object identifying a physical table in the venue.
// A valid table number is a positive integer; it is printed on the table's
// QR code and doubles as the suffix of the table's broadcast channel.
//
// The zero value is invalid; construct through NewTableNumber.
type TableNumber struct {
	number int
}

// NewTableNumber creates a validated table number.
// Returns a ValueIsOutOfRangeError if number is not in [1, 1000].
func NewTableNumber(number int) (TableNumber, error) {
	if number < 1 || number > maxTableNumber {
		return TableNumber{}, errs.NewValueIsOutOfRangeError("tableNumber", number, 1, maxTableNumber)
	}
	return TableNumber{number: number}, nil
}

// Value returns the numeric table number.
func (t TableNumber) Value() int {
	return t.number
}

// String returns the decimal representation of the table number.
func (t TableNumber) String() string {
	return strconv.Itoa(t.number)
}

// IsEqual compares two table numbers for equality.
func (t TableNumber) IsEqual(other TableNumber) bool {
	return t.number == other.number
}

// Validate checks that the table number was properly constructed.
func (t TableNumber) Validate() error {
	if t.number == 0 {
		return ErrTableNumberIsNotConstructed
	}
	return nil
}

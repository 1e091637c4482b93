package orderbookv1

import "errors"

var (
	// ErrNilOrder is returned when a nil order is passed to a book operation.
	ErrNilOrder = errors.New("order cannot be nil")
	// ErrInvalidPrice is returned when a price is zero or negative.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrInvalidQty is returned when a quantity is zero or negative.
	ErrInvalidQty = errors.New("quantity must be positive")
	// ErrOverfill is returned when a fill exceeds an order's remaining quantity.
	ErrOverfill = errors.New("fill exceeds remaining quantity")
	// ErrOrderNotFound is returned when an order id is not resting in the book.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when an order id is already resting in the book.
	ErrDuplicateOrder = errors.New("order id already in book")
	// ErrSymbolMismatch is returned when an order's symbol does not match the book.
	ErrSymbolMismatch = errors.New("order symbol does not match book")
	// ErrEmptySide is returned when reading the front of a side with no levels.
	ErrEmptySide = errors.New("side has no resting orders")
	// ErrCrossedBook is returned when best bid >= best ask after a matching
	// pass. It indicates book corruption and halts the instrument.
	ErrCrossedBook = errors.New("book crossed after matching")
	// ErrBookHalted is returned for any operation against a halted book.
	ErrBookHalted = errors.New("book halted after invariant violation")
)

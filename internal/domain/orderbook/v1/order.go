package orderbookv1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side represents which side of the book an order is on.
type Side string

const (
	// SideBuy represents a buy (bid) order.
	SideBuy Side = "buy"
	// SideSell represents a sell (ask) order.
	SideSell Side = "sell"
)

// Opposite returns the side an incoming order matches against.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Valid reports whether the side is one of the known constants.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// OrderType represents the type of order.
type OrderType string

const (
	// OrderTypeLimit represents a limit order; unfilled quantity rests on the book.
	OrderTypeLimit OrderType = "limit"
	// OrderTypeMarket represents a market order; unfilled quantity is discarded.
	OrderTypeMarket OrderType = "market"
	// OrderTypeIOC represents an immediate-or-cancel order; matches within its
	// price bound, any remainder is discarded.
	OrderTypeIOC OrderType = "ioc"
	// OrderTypeFOK represents a fill-or-kill order; either fully fillable at
	// eligible prices or rejected without touching the book.
	OrderTypeFOK OrderType = "fok"
)

// Valid reports whether the order type is one of the known constants.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeLimit, OrderTypeMarket, OrderTypeIOC, OrderTypeFOK:
		return true
	}
	return false
}

// RequiresPrice reports whether the order type carries a limit price.
func (t OrderType) RequiresPrice() bool {
	return t != OrderTypeMarket
}

// Status represents the lifecycle state of an order.
type Status string

const (
	// StatusActive marks an order resting on the book with no fills yet.
	StatusActive Status = "active"
	// StatusPartiallyFilled marks an order with some fills and remaining quantity.
	StatusPartiallyFilled Status = "partially_filled"
	// StatusFilled marks an order with no remaining quantity.
	StatusFilled Status = "filled"
	// StatusCanceled marks an order removed before being fully matched.
	StatusCanceled Status = "canceled"
	// StatusRejected marks an order that never touched the book.
	StatusRejected Status = "rejected"
)

// Order represents a single order admitted to the engine. Quantity only ever
// decreases (via Fill) as the order matches; Sequence is assigned once at
// admission and never changes.
type Order struct {
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	Side      Side            `json:"side"`
	Type      OrderType       `json:"type"`
	Qty       decimal.Decimal `json:"qty"`
	Filled    decimal.Decimal `json:"filled"`
	Price     decimal.Decimal `json:"price"` // zero for market orders
	Sequence  uint64          `json:"sequence"`
	Timestamp int64           `json:"timestamp"`
	Status    Status          `json:"status"`
}

// NewOrder creates a new order with the given parameters.
func NewOrder(id, symbol string, side Side, orderType OrderType, qty, price decimal.Decimal) *Order {
	return &Order{
		ID:        id,
		Symbol:    symbol,
		Side:      side,
		Type:      orderType,
		Qty:       qty,
		Price:     price,
		Timestamp: time.Now().UnixNano(),
		Status:    StatusActive,
	}
}

// Remaining returns the unfilled quantity.
func (o *Order) Remaining() decimal.Decimal {
	return o.Qty.Sub(o.Filled)
}

// IsBuy checks if the order is a buy (bid) order.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsFilled checks if the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.Remaining().Sign() == 0
}

// Fill reduces the remaining quantity by qty and updates the status.
// It returns ErrOverfill if qty exceeds the remaining quantity.
func (o *Order) Fill(qty decimal.Decimal) error {
	if qty.Sign() <= 0 {
		return ErrInvalidQty
	}
	if qty.GreaterThan(o.Remaining()) {
		return ErrOverfill
	}

	o.Filled = o.Filled.Add(qty)
	if o.IsFilled() {
		o.Status = StatusFilled
	} else {
		o.Status = StatusPartiallyFilled
	}
	return nil
}

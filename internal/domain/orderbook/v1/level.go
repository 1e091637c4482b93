package orderbookv1

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceLevel represents a single price in the book with a FIFO queue of
// resting orders. Orders within a level are strictly ordered by arrival
// sequence; fills always consume the front of the queue.
type PriceLevel struct {
	Price decimal.Decimal

	orders   []*Order
	totalQty decimal.Decimal
}

// NewPriceLevel creates an empty level at the given price.
func NewPriceLevel(price decimal.Decimal) *PriceLevel {
	return &PriceLevel{
		Price: price,
	}
}

// Append adds an order to the back of the level's queue.
func (l *PriceLevel) Append(order *Order) error {
	if order == nil {
		return ErrNilOrder
	}
	if order.Remaining().Sign() <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidQty, order.Remaining())
	}
	if !order.Price.Equal(l.Price) {
		return fmt.Errorf("%w: order price %s, level price %s", ErrInvalidPrice, order.Price, l.Price)
	}
	if n := len(l.orders); n > 0 && order.Sequence <= l.orders[n-1].Sequence {
		return fmt.Errorf("level FIFO violated: sequence %d after %d", order.Sequence, l.orders[n-1].Sequence)
	}

	l.orders = append(l.orders, order)
	l.totalQty = l.totalQty.Add(order.Remaining())
	return nil
}

// Front returns the oldest resting order at this level, or nil if empty.
func (l *PriceLevel) Front() *Order {
	if len(l.orders) == 0 {
		return nil
	}
	return l.orders[0]
}

// FillFront reduces the front order's remaining quantity by qty and pops it
// from the queue once exhausted. An order with residual quantity is never
// popped.
func (l *PriceLevel) FillFront(qty decimal.Decimal) (*Order, error) {
	front := l.Front()
	if front == nil {
		return nil, ErrEmptySide
	}

	if err := front.Fill(qty); err != nil {
		return nil, err
	}
	l.totalQty = l.totalQty.Sub(qty)

	if front.IsFilled() {
		l.orders[0] = nil
		l.orders = l.orders[1:]
	}
	return front, nil
}

// Remove deletes the order with the given id from the level's queue,
// preserving the relative order of the rest.
func (l *PriceLevel) Remove(orderID string) (*Order, error) {
	for i, o := range l.orders {
		if o.ID == orderID {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			l.totalQty = l.totalQty.Sub(o.Remaining())
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// IsEmpty checks if the level has no orders. Empty levels must be pruned
// from their side's price index.
func (l *PriceLevel) IsEmpty() bool {
	return len(l.orders) == 0
}

// OrderCount returns the number of orders at this level.
func (l *PriceLevel) OrderCount() int {
	return len(l.orders)
}

// TotalQty returns the total remaining quantity at this level.
func (l *PriceLevel) TotalQty() decimal.Decimal {
	return l.totalQty
}

// Orders returns a copy of the level's queue in FIFO order.
func (l *PriceLevel) Orders() []*Order {
	orders := make([]*Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}

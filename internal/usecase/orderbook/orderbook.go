package orderbook

import (
	"fmt"
	"time"

	orderbookv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/snapshot/v1"
	"github.com/shopspring/decimal"
)

// LevelView is one aggregated price level as exposed by Depth.
type LevelView struct {
	Price  decimal.Decimal `json:"price"`
	Qty    decimal.Decimal `json:"qty"`
	Orders int             `json:"orders"`
}

// Book is a single instrument's order book: two price-sorted sides plus an
// order-id index for O(1) cancel lookups. Book is not safe for concurrent
// use; the engine serializes all access per instrument.
type Book struct {
	symbol   string
	bids     *bookSide
	asks     *bookSide
	orders   map[string]*orderbookv1.Order
	sequence uint64
	halted   bool
}

// NewBook creates an empty book for the given instrument.
func NewBook(symbol string) *Book {
	return &Book{
		symbol: symbol,
		bids:   newBookSide(orderbookv1.SideBuy),
		asks:   newBookSide(orderbookv1.SideSell),
		orders: make(map[string]*orderbookv1.Order),
	}
}

// Symbol returns the instrument this book belongs to.
func (b *Book) Symbol() string {
	return b.symbol
}

// Sequence returns the last admission sequence assigned.
func (b *Book) Sequence() uint64 {
	return b.sequence
}

// NextSequence assigns the next admission sequence. Sequences establish
// time priority within a price level and are never reused.
func (b *Book) NextSequence() uint64 {
	b.sequence++
	return b.sequence
}

// Halt marks the book as halted after an invariant violation. A halted book
// rejects all further submissions for its instrument; other instruments are
// unaffected.
func (b *Book) Halt() {
	b.halted = true
}

// Halted reports whether the book has been halted.
func (b *Book) Halted() bool {
	return b.halted
}

func (b *Book) side(side orderbookv1.Side) *bookSide {
	if side == orderbookv1.SideBuy {
		return b.bids
	}
	return b.asks
}

// Insert rests a limit order on its side of the book.
func (b *Book) Insert(order *orderbookv1.Order) error {
	if b.halted {
		return orderbookv1.ErrBookHalted
	}
	if order == nil {
		return orderbookv1.ErrNilOrder
	}
	if order.Symbol != b.symbol {
		return fmt.Errorf("%w: order %s, book %s", orderbookv1.ErrSymbolMismatch, order.Symbol, b.symbol)
	}
	if _, exists := b.orders[order.ID]; exists {
		return fmt.Errorf("%w: %s", orderbookv1.ErrDuplicateOrder, order.ID)
	}
	if order.Price.Sign() <= 0 {
		return fmt.Errorf("%w: %s", orderbookv1.ErrInvalidPrice, order.Price)
	}

	if err := b.side(order.Side).insert(order); err != nil {
		return err
	}
	b.orders[order.ID] = order
	return nil
}

// Remove cancels the resting order with the given id. The rest of its level
// keeps its time priority.
func (b *Book) Remove(orderID string) (*orderbookv1.Order, error) {
	order, ok := b.orders[orderID]
	if !ok {
		return nil, orderbookv1.ErrOrderNotFound
	}

	side := b.side(order.Side)
	level, ok := side.level(order.Price)
	if !ok {
		return nil, orderbookv1.ErrOrderNotFound
	}
	removed, err := level.Remove(orderID)
	if err != nil {
		return nil, err
	}
	if level.IsEmpty() {
		side.dropLevel(level.Price)
	}
	delete(b.orders, orderID)
	removed.Status = orderbookv1.StatusCanceled
	return removed, nil
}

// Order returns the resting order with the given id, if present.
func (b *Book) Order(orderID string) (*orderbookv1.Order, bool) {
	order, ok := b.orders[orderID]
	return order, ok
}

// BestBid returns the highest resting bid price.
func (b *Book) BestBid() (decimal.Decimal, bool) {
	if level := b.bids.best(); level != nil {
		return level.Price, true
	}
	return decimal.Zero, false
}

// BestAsk returns the lowest resting ask price.
func (b *Book) BestAsk() (decimal.Decimal, bool) {
	if level := b.asks.best(); level != nil {
		return level.Price, true
	}
	return decimal.Zero, false
}

// PeekFront returns the order next in line on the given side without
// consuming it, or nil when the side is empty.
func (b *Book) PeekFront(side orderbookv1.Side) *orderbookv1.Order {
	level := b.side(side).best()
	if level == nil {
		return nil
	}
	return level.Front()
}

// FillFront fills qty against the order at the front of the given side's
// best level, pruning the level once empty. The filled maker order is
// returned; it leaves the book only when fully exhausted.
func (b *Book) FillFront(side orderbookv1.Side, qty decimal.Decimal) (*orderbookv1.Order, error) {
	bs := b.side(side)
	level := bs.best()
	if level == nil {
		return nil, orderbookv1.ErrEmptySide
	}

	maker, err := level.FillFront(qty)
	if err != nil {
		return nil, err
	}
	if maker.IsFilled() {
		delete(b.orders, maker.ID)
	}
	if level.IsEmpty() {
		bs.dropLevel(level.Price)
	}
	return maker, nil
}

// AvailableQty sums the resting quantity on side that a taker bounded by
// limit could execute against, stopping early once needed is covered. Pass
// market=true to ignore the price bound.
func (b *Book) AvailableQty(side orderbookv1.Side, limit decimal.Decimal, market bool, needed decimal.Decimal) decimal.Decimal {
	return b.side(side).availableQty(limit, market, needed)
}

// Crossed reports whether the best bid meets or exceeds the best ask. A
// crossed book after matching completes is an invariant violation.
func (b *Book) Crossed() bool {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	return okBid && okAsk && bid.GreaterThanOrEqual(ask)
}

// Depth returns up to n aggregated levels per side, best-first.
func (b *Book) Depth(n int) (bids, asks []LevelView) {
	return b.bids.depth(n), b.asks.depth(n)
}

// OrderCount returns the number of resting orders across both sides.
func (b *Book) OrderCount() int {
	return len(b.orders)
}

// Snapshot serializes the book's resting state together with the intake
// offset it is consistent with.
func (b *Book) Snapshot(orderOffset int64) *snapshotv1.Snapshot {
	snap := &snapshotv1.Snapshot{
		Symbol:      b.symbol,
		Sequence:    b.sequence,
		OrderOffset: orderOffset,
		Timestamp:   time.Now().UnixNano(),
	}
	for _, order := range append(b.bids.orders(), b.asks.orders()...) {
		snap.Orders = append(snap.Orders, snapshotv1.BookOrder{
			OrderID:   order.ID,
			Side:      string(order.Side),
			Type:      string(order.Type),
			Price:     order.Price.String(),
			Qty:       order.Qty.String(),
			Filled:    order.Filled.String(),
			Sequence:  order.Sequence,
			Timestamp: order.Timestamp,
		})
	}
	return snap
}

// Restore rebuilds the book from a snapshot. The book must be empty;
// sequences resume where the snapshot left off.
func (b *Book) Restore(snap *snapshotv1.Snapshot) error {
	if snap.Symbol != b.symbol {
		return fmt.Errorf("%w: snapshot %s, book %s", orderbookv1.ErrSymbolMismatch, snap.Symbol, b.symbol)
	}
	if len(b.orders) > 0 {
		return fmt.Errorf("restore into non-empty book %s", b.symbol)
	}

	for _, bo := range snap.Orders {
		price, err := decimal.NewFromString(bo.Price)
		if err != nil {
			return fmt.Errorf("order %s price: %w", bo.OrderID, err)
		}
		qty, err := decimal.NewFromString(bo.Qty)
		if err != nil {
			return fmt.Errorf("order %s qty: %w", bo.OrderID, err)
		}
		filled, err := decimal.NewFromString(bo.Filled)
		if err != nil {
			return fmt.Errorf("order %s filled: %w", bo.OrderID, err)
		}

		order := &orderbookv1.Order{
			ID:        bo.OrderID,
			Symbol:    b.symbol,
			Side:      orderbookv1.Side(bo.Side),
			Type:      orderbookv1.OrderType(bo.Type),
			Qty:       qty,
			Filled:    filled,
			Price:     price,
			Sequence:  bo.Sequence,
			Timestamp: bo.Timestamp,
			Status:    orderbookv1.StatusActive,
		}
		if filled.Sign() > 0 {
			order.Status = orderbookv1.StatusPartiallyFilled
		}
		if err := b.Insert(order); err != nil {
			return fmt.Errorf("order %s: %w", bo.OrderID, err)
		}
	}
	b.sequence = snap.Sequence
	return nil
}

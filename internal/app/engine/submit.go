package engine

import (
	"context"
	"time"

	orderbookv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/orderbook/v1"
	reportv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/report/v1"
	"github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/orderbook"
	"github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/reporter"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/errors"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/logger"
	"github.com/shopspring/decimal"
)

// SubmitRequest is a parsed order submission.
type SubmitRequest struct {
	OrderID string
	Symbol  string
	Side    orderbookv1.Side
	Type    orderbookv1.OrderType
	Qty     decimal.Decimal
	Price   decimal.Decimal // ignored for market orders
}

// SubmitResult is the outcome of an accepted submission: the order in its
// final state, one report per trade in execution order, and the BBO after
// all mutations were applied.
type SubmitResult struct {
	Order   *orderbookv1.Order
	Reports []*reportv1.TradeReport
	BBO     *reportv1.BBO
}

// Submit validates, matches and settles one order against its instrument's
// book. The instrument lock is held for the entire call, so the matching
// walk, residual handling and the crossed-book check are a single atomic
// step per instrument. A returned error means the order never rested and
// produced no trades.
func (e *Engine) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	if err := e.validate(req); err != nil {
		return nil, err
	}

	inst, ok := e.books[req.Symbol]
	if !ok {
		return nil, errors.NewErrorDetails(
			"unknown instrument",
			string(errors.OrderRejected),
			"symbol",
		)
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	book := inst.book
	if book.Halted() {
		return nil, errors.NewErrorDetails(
			orderbookv1.ErrBookHalted.Error(),
			string(errors.InstrumentHalted),
			"symbol",
		)
	}
	if _, exists := book.Order(req.OrderID); exists {
		return nil, errors.NewErrorDetails(
			"order id already resting",
			string(errors.OrderRejected),
			"orderID",
		)
	}

	market := req.Type == orderbookv1.OrderTypeMarket

	// FOK feasibility is decided before the first fill. The book is not
	// touched unless the full quantity is covered at eligible prices.
	if req.Type == orderbookv1.OrderTypeFOK {
		available := book.AvailableQty(req.Side.Opposite(), req.Price, false, req.Qty)
		if available.LessThan(req.Qty) {
			return nil, errors.NewErrorDetails(
				"insufficient quantity at eligible prices",
				string(errors.FOKNotFillable),
				"qty",
			)
		}
	}

	order := orderbookv1.NewOrder(req.OrderID, req.Symbol, req.Side, req.Type, req.Qty, req.Price)
	order.Sequence = book.NextSequence()

	trades, err := e.match(book, order, market)
	if err != nil {
		book.Halt()
		e.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "match"},
			logger.Field{Key: "symbol", Value: req.Symbol},
			logger.Field{Key: "orderID", Value: req.OrderID},
		)
		return nil, err
	}

	if err := e.settleResidual(book, order); err != nil {
		return nil, err
	}

	// A crossed book after matching means the walk failed to consume
	// liquidity it should have. The instrument is halted; resting state
	// and already-executed trades are left as they are.
	if book.Crossed() {
		book.Halt()
		err := errors.NewErrorDetailsWithObject(
			orderbookv1.ErrCrossedBook.Error(),
			string(errors.InvariantViolation),
			"symbol",
			req.Symbol,
		)
		e.logger.ErrorContext(ctx, err,
			logger.Field{Key: "symbol", Value: req.Symbol},
			logger.Field{Key: "orderID", Value: req.OrderID},
		)
		return nil, err
	}

	reports, err := e.reporter.TradeReports(trades)
	if err != nil {
		return nil, err
	}

	bid, bidOK := book.BestBid()
	ask, askOK := book.BestAsk()

	return &SubmitResult{
		Order:   order,
		Reports: reports,
		BBO:     e.reporter.BBO(req.Symbol, bid, bidOK, ask, askOK),
	}, nil
}

// validate rejects malformed submissions before any book state is touched.
func (e *Engine) validate(req *SubmitRequest) error {
	reject := func(message, field string) error {
		return errors.NewErrorDetails(message, string(errors.OrderRejected), field)
	}

	if req.OrderID == "" {
		return reject("order id is required", "orderID")
	}
	if !req.Side.Valid() {
		return reject("unknown side", "side")
	}
	if !req.Type.Valid() {
		return reject("unknown order type", "type")
	}
	if req.Qty.Sign() <= 0 {
		return reject("quantity must be positive", "qty")
	}
	if req.Type.RequiresPrice() && req.Price.Sign() <= 0 {
		return reject("price must be positive", "price")
	}

	e.indexMu.Lock()
	_, dup := e.orderIndex[req.OrderID]
	e.indexMu.Unlock()
	if dup {
		return reject("order id already resting", "orderID")
	}
	return nil
}

// match walks the opposite side best-first, executing at maker prices until
// the taker is exhausted, liquidity runs out, or the taker's limit stops
// being marketable. Each fill consumes the oldest order at the best level.
func (e *Engine) match(book *orderbook.Book, taker *orderbookv1.Order, market bool) ([]*orderbookv1.Trade, error) {
	makerSide := taker.Side.Opposite()
	var trades []*orderbookv1.Trade

	for taker.Remaining().Sign() > 0 {
		maker := book.PeekFront(makerSide)
		if maker == nil {
			break
		}
		if !market && !marketable(taker, maker.Price) {
			break
		}

		qty := decimal.Min(taker.Remaining(), maker.Remaining())

		if _, err := book.FillFront(makerSide, qty); err != nil {
			return nil, errors.TracerFromError(err)
		}
		if err := taker.Fill(qty); err != nil {
			return nil, errors.TracerFromError(err)
		}
		if maker.IsFilled() {
			e.unindexOrder(maker.ID)
		}

		trades = append(trades, &orderbookv1.Trade{
			ID:            reporter.NewTradeID(),
			Symbol:        taker.Symbol,
			Price:         maker.Price,
			Qty:           qty,
			MakerOrderID:  maker.ID,
			TakerOrderID:  taker.ID,
			AggressorSide: taker.Side,
			Timestamp:     time.Now().UnixNano(),
		})
	}

	return trades, nil
}

// marketable reports whether the taker's limit crosses the maker price.
func marketable(taker *orderbookv1.Order, makerPrice decimal.Decimal) bool {
	if taker.IsBuy() {
		return taker.Price.GreaterThanOrEqual(makerPrice)
	}
	return taker.Price.LessThanOrEqual(makerPrice)
}

// settleResidual applies the per-type policy for unfilled quantity. Only
// limit residuals rest; market and IOC remainders are discarded. FOK never
// reaches here with a remainder because feasibility was checked up front.
func (e *Engine) settleResidual(book *orderbook.Book, order *orderbookv1.Order) error {
	if order.Remaining().Sign() == 0 {
		return nil
	}

	if order.Type == orderbookv1.OrderTypeLimit {
		if err := book.Insert(order); err != nil {
			return errors.TracerFromError(err)
		}
		e.indexOrder(order.ID, order.Symbol)
		return nil
	}

	// Market and IOC: discard the remainder. A submission with no fills
	// at all is canceled; one that traded keeps its filled terminal state.
	if order.Filled.Sign() == 0 {
		order.Status = orderbookv1.StatusCanceled
	} else {
		order.Status = orderbookv1.StatusFilled
	}
	return nil
}

// Cancel removes a resting order by id. The order's symbol is resolved via
// the engine-wide index, then the removal runs under that instrument's lock.
func (e *Engine) Cancel(ctx context.Context, orderID string) (*orderbookv1.Order, error) {
	e.indexMu.Lock()
	symbol, ok := e.orderIndex[orderID]
	e.indexMu.Unlock()
	if !ok {
		return nil, errors.NewErrorDetails(
			"order is not resting",
			string(errors.OrderNotFound),
			"orderID",
		)
	}

	inst := e.books[symbol]
	inst.mu.Lock()
	defer inst.mu.Unlock()

	removed, err := inst.book.Remove(orderID)
	if err != nil {
		// The index said the order rests but the book disagrees.
		e.unindexOrder(orderID)
		return nil, errors.NewErrorDetails(
			"order is not resting",
			string(errors.OrderNotFound),
			"orderID",
		)
	}
	e.unindexOrder(orderID)

	e.logger.InfoContext(ctx, "Order canceled",
		logger.Field{Key: "orderID", Value: orderID},
		logger.Field{Key: "symbol", Value: symbol},
		logger.Field{Key: "remaining", Value: removed.Remaining()},
	)
	return removed, nil
}

// BestBidAsk returns the instrument's current BBO.
func (e *Engine) BestBidAsk(symbol string) (*reportv1.BBO, error) {
	inst, ok := e.books[symbol]
	if !ok {
		return nil, errors.NewErrorDetails(
			"unknown instrument",
			string(errors.GeneralNotFoundError),
			"symbol",
		)
	}

	inst.mu.Lock()
	bid, bidOK := inst.book.BestBid()
	ask, askOK := inst.book.BestAsk()
	inst.mu.Unlock()

	return e.reporter.BBO(symbol, bid, bidOK, ask, askOK), nil
}

// Depth returns up to n aggregated levels per side for the instrument. Pass
// n <= 0 for the engine's configured default.
func (e *Engine) Depth(symbol string, n int) (bids, asks []orderbook.LevelView, err error) {
	inst, ok := e.books[symbol]
	if !ok {
		return nil, nil, errors.NewErrorDetails(
			"unknown instrument",
			string(errors.GeneralNotFoundError),
			"symbol",
		)
	}
	if n <= 0 {
		n = e.depthLevels
	}

	inst.mu.Lock()
	bids, asks = inst.book.Depth(n)
	inst.mu.Unlock()
	return bids, asks, nil
}

func (e *Engine) indexOrder(orderID, symbol string) {
	e.indexMu.Lock()
	e.orderIndex[orderID] = symbol
	e.indexMu.Unlock()
}

func (e *Engine) unindexOrder(orderID string) {
	e.indexMu.Lock()
	delete(e.orderIndex, orderID)
	e.indexMu.Unlock()
}

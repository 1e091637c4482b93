package engine

import (
	"context"
	"sync"
	"time"

	orderreaderv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/order-reader/v1"
	orderbookv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/orderbook/v1"
	reportv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/report/v1"
	snapshotv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/snapshot/v1"
	"github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/orderbook"
	"github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/reporter"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/config"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

// instrument pairs a book with the mutex that serializes every submission,
// cancel and snapshot against it. The lock is held for a whole submission,
// so matching, residual handling and the crossed-book check are atomic per
// instrument. Different instruments never contend.
type instrument struct {
	mu   sync.Mutex
	book *orderbook.Book
}

// Engine routes order submissions to per-instrument books, matches them with
// price-time priority and emits trade reports plus BBO snapshots.
type Engine struct {
	// Core components
	books         map[string]*instrument
	orderReader   orderreaderv1.OrderReader
	publisher     reportv1.Publisher
	snapshotStore snapshotv1.Store
	reporter      *reporter.Reporter
	logger        *logger.Logger
	config        *config.Config

	// Global order-id index so Cancel works without a symbol. Guarded by
	// its own mutex; entries exist only while an order rests on a book.
	indexMu    sync.Mutex
	orderIndex map[string]string

	// Intake offset state
	mu                 sync.RWMutex
	orderOffset        int64
	lastSnapshotOffset int64

	// Shutdown coordination
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	snapshotInterval    time.Duration
	snapshotOffsetDelta int64
	depthLevels         int

	// Trade statistics
	totalTrades int64
	tradesMutex sync.RWMutex
}

// NewEngine creates an engine for the instruments listed in the config.
func NewEngine(
	orderReader orderreaderv1.OrderReader,
	publisher reportv1.Publisher,
	snapshotStore snapshotv1.Store,
	rep *reporter.Reporter,
	log *logger.Logger,
	cfg *config.Config,
) *Engine {
	return NewEngineWithOptions(orderReader, publisher, snapshotStore, rep, log, cfg, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options.
func NewEngineWithOptions(
	orderReader orderreaderv1.OrderReader,
	publisher reportv1.Publisher,
	snapshotStore snapshotv1.Store,
	rep *reporter.Reporter,
	log *logger.Logger,
	cfg *config.Config,
	options *Options,
) *Engine {
	e := &Engine{
		books:         make(map[string]*instrument, len(cfg.Pairs)),
		orderReader:   orderReader,
		publisher:     publisher,
		snapshotStore: snapshotStore,
		reporter:      rep,
		logger:        log,
		config:        cfg,
		orderIndex:    make(map[string]string),

		snapshotInterval:    options.SnapshotInterval,
		snapshotOffsetDelta: options.SnapshotOffsetDelta,
		depthLevels:         options.DepthLevels,
		orderOffset:         -1,
	}

	// The instrument set is fixed at startup; the map is read-only after
	// this loop, so lookups need no lock.
	for _, pair := range cfg.Pairs {
		e.books[pair] = &instrument{book: orderbook.NewBook(pair)}
	}

	if err := e.loadSnapshots(context.Background()); err != nil {
		e.logger.GetZap().Fatal("Failed to load snapshots", zapcore.Field{
			Key:       "error",
			Interface: err,
		})
	}

	return e
}

// Start launches the intake processor and snapshot manager.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(2)
	go e.runOrderProcessor()
	go e.runSnapshotManager()

	e.logger.Info("Matching engine started", logger.Field{
		Key:   "pairs",
		Value: e.config.Pairs,
	})

	return nil
}

// Stop gracefully shuts down the engine.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("Matching engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}
}

// runOrderProcessor reads intake messages and feeds them through Submit.
func (e *Engine) runOrderProcessor() {
	defer e.wg.Done()

	e.logger.Info("Starting order processor", logger.Field{
		Key:   "pairs",
		Value: e.config.Pairs,
	})

	if err := e.orderReader.SetOffset(e.resumeOffset()); err != nil {
		e.logger.GetZap().Fatal("Failed to set offset for order reader", zapcore.Field{
			Key:       "error",
			Interface: err,
		})
	}

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Order processor shutting down")
			e.orderReader.Close()
			return
		default:
			payload, msg, err := e.orderReader.ReadMessage(e.ctx)
			if err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "read_order_message",
				})
				time.Sleep(100 * time.Millisecond)
				continue
			}

			e.processPayload(payload, msg.Offset)

			if err := e.orderReader.CommitMessages(e.ctx, msg); err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "commit_order_message",
				})
			}

			e.setOrderOffset(msg.Offset)
		}
	}
}

// processPayload parses an intake payload, submits it and publishes the
// resulting reports. A rejected order is an outcome, not a processing
// failure, so rejections are logged and the loop moves on.
func (e *Engine) processPayload(payload *orderreaderv1.PlaceOrderPayload, offset int64) {
	req, err := payloadToRequest(payload)
	if err != nil {
		e.logger.ErrorContext(e.ctx, err,
			logger.Field{Key: "action", Value: "parse_order_payload"},
			logger.Field{Key: "orderID", Value: payload.OrderID},
			logger.Field{Key: "offset", Value: offset},
		)
		return
	}

	result, err := e.Submit(e.ctx, req)
	if err != nil {
		e.logger.WarnContext(e.ctx, "Order not accepted",
			logger.Field{Key: "orderID", Value: payload.OrderID},
			logger.Field{Key: "symbol", Value: payload.Symbol},
			logger.Field{Key: "reason", Value: err.Error()},
		)
		return
	}

	e.publishResult(result)
}

// publishResult pushes a submission's trade reports in execution order,
// followed by the post-submission BBO.
func (e *Engine) publishResult(result *SubmitResult) {
	for _, report := range result.Reports {
		if err := e.publisher.PublishTradeReport(e.ctx, report); err != nil {
			e.logger.ErrorContext(e.ctx, err,
				logger.Field{Key: "action", Value: "publish_trade_report"},
				logger.Field{Key: "tradeID", Value: report.TradeID},
			)
		}
	}
	if result.BBO != nil {
		if err := e.publisher.PublishBBO(e.ctx, result.BBO); err != nil {
			e.logger.ErrorContext(e.ctx, err,
				logger.Field{Key: "action", Value: "publish_bbo"},
				logger.Field{Key: "symbol", Value: result.BBO.Symbol},
			)
		}
	}

	if n := len(result.Reports); n > 0 {
		e.tradesMutex.Lock()
		e.totalTrades += int64(n)
		e.tradesMutex.Unlock()
	}
}

// payloadToRequest parses the wire payload's decimal strings.
func payloadToRequest(payload *orderreaderv1.PlaceOrderPayload) (*SubmitRequest, error) {
	qty, err := decimal.NewFromString(payload.Qty)
	if err != nil {
		return nil, err
	}

	price := decimal.Zero
	orderType := orderbookv1.OrderType(payload.Type)
	if orderType.RequiresPrice() {
		price, err = decimal.NewFromString(payload.Price)
		if err != nil {
			return nil, err
		}
	}

	return &SubmitRequest{
		OrderID: payload.OrderID,
		Symbol:  payload.Symbol,
		Side:    orderbookv1.Side(payload.Side),
		Type:    orderType,
		Qty:     qty,
		Price:   price,
	}, nil
}

// runSnapshotManager handles periodic snapshots.
func (e *Engine) runSnapshotManager() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.snapshotInterval)
	defer ticker.Stop()

	e.logger.Info("Starting snapshot manager")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Snapshot manager shutting down")
			return
		case <-ticker.C:
			if e.shouldCreateSnapshot() {
				e.createAndStoreSnapshots()
			}
		}
	}
}

// shouldCreateSnapshot checks if enough intake progress has been made since
// the last snapshot round.
func (e *Engine) shouldCreateSnapshot() bool {
	e.mu.RLock()
	currentOffset := e.orderOffset
	lastSnapshotOffset := e.lastSnapshotOffset
	e.mu.RUnlock()

	if currentOffset <= 0 {
		return false
	}
	return currentOffset-lastSnapshotOffset >= e.snapshotOffsetDelta
}

// createAndStoreSnapshots snapshots every book. Each book is locked only
// while its snapshot is serialized, not while Redis is written.
func (e *Engine) createAndStoreSnapshots() {
	currentOffset := e.getOrderOffset()

	e.logger.Info("Creating snapshots", logger.Field{
		Key:   "currentOffset",
		Value: currentOffset,
	})

	for symbol, inst := range e.books {
		inst.mu.Lock()
		snap := inst.book.Snapshot(currentOffset)
		inst.mu.Unlock()

		if err := e.snapshotStore.Store(e.ctx, snap); err != nil {
			e.logger.ErrorContext(e.ctx, err,
				logger.Field{Key: "action", Value: "store_snapshot"},
				logger.Field{Key: "symbol", Value: symbol},
			)
			return
		}
	}

	e.setLastSnapshotOffset(currentOffset)
}

// loadSnapshots restores every book from its stored snapshot. The resume
// offset is the smallest offset across restored books, so no book misses a
// message on replay.
func (e *Engine) loadSnapshots(ctx context.Context) error {
	resumeOffset := int64(-1)

	for symbol, inst := range e.books {
		snap, err := e.snapshotStore.Load(ctx, symbol)
		if err != nil {
			return err
		}
		if snap == nil {
			continue
		}

		if err := inst.book.Restore(snap); err != nil {
			return err
		}
		e.indexRestoredOrders(symbol, snap)

		if resumeOffset < 0 || snap.OrderOffset < resumeOffset {
			resumeOffset = snap.OrderOffset
		}

		e.logger.Info("Book restored from snapshot",
			logger.Field{Key: "symbol", Value: symbol},
			logger.Field{Key: "orders", Value: len(snap.Orders)},
			logger.Field{Key: "orderOffset", Value: snap.OrderOffset},
		)
	}

	if resumeOffset >= 0 {
		e.mu.Lock()
		e.orderOffset = resumeOffset
		e.lastSnapshotOffset = resumeOffset
		e.mu.Unlock()
	}
	return nil
}

func (e *Engine) indexRestoredOrders(symbol string, snap *snapshotv1.Snapshot) {
	e.indexMu.Lock()
	defer e.indexMu.Unlock()
	for _, order := range snap.Orders {
		e.orderIndex[order.OrderID] = symbol
	}
}

// resumeOffset is the intake position to read from next: one past the last
// offset covered by the restored snapshots. Offset 0 is a real message, so
// a snapshot taken there also advances; only the no-snapshot sentinel (-1)
// passes through unchanged.
func (e *Engine) resumeOffset() int64 {
	offset := e.getOrderOffset()
	if offset >= 0 {
		offset++
	}
	return offset
}

// Thread-safe getters and setters
func (e *Engine) getOrderOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.orderOffset
}

func (e *Engine) setOrderOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orderOffset = offset
}

func (e *Engine) getLastSnapshotOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastSnapshotOffset
}

func (e *Engine) setLastSnapshotOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSnapshotOffset = offset
}

// GetOrderOffset returns the current intake offset.
func (e *Engine) GetOrderOffset() int64 {
	return e.getOrderOffset()
}

// GetLastSnapshotOffset returns the offset covered by the last snapshot round.
func (e *Engine) GetLastSnapshotOffset() int64 {
	return e.getLastSnapshotOffset()
}

// GetTotalTrades returns the number of trades executed since startup.
func (e *Engine) GetTotalTrades() int64 {
	e.tradesMutex.RLock()
	defer e.tradesMutex.RUnlock()
	return e.totalTrades
}

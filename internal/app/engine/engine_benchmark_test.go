package engine

import (
	"context"
	"fmt"
	"testing"

	feesv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/fees/v1"
	orderreadermock "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/order-reader/v1/mock"
	orderbookv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/orderbook/v1"
	reportmock "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/report/v1/mock"
	snapshotmock "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/snapshot/v1/mock"
	"github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/fees"
	"github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/reporter"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/config"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/logger"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func setupBenchmarkEngine(b *testing.B) *Engine {
	ctrl := gomock.NewController(b)

	mockOrderReader := orderreadermock.NewMockOrderReader(ctrl)
	mockPublisher := reportmock.NewMockPublisher(ctrl)
	mockSnapshotStore := snapshotmock.NewMockStore(ctrl)

	log, err := logger.NewLogger()
	if err != nil {
		b.Fatal(err)
	}

	cfg := &config.Config{
		Pairs: []string{"BTC-USDT"},
	}

	mockSnapshotStore.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
	mockPublisher.EXPECT().
		PublishTradeReport(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockPublisher.EXPECT().
		PublishBBO(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	rep := reporter.NewReporter(fees.NewCalculator(feesv1.Schedule{
		MakerRate: decimal.RequireFromString("0.001"),
		TakerRate: decimal.RequireFromString("0.002"),
	}))

	engine := NewEngine(mockOrderReader, mockPublisher, mockSnapshotStore, rep, log, cfg)
	engine.ctx = context.Background()

	return engine
}

func benchmarkRequest(i int) *SubmitRequest {
	side := orderbookv1.SideBuy
	if i%2 == 0 {
		side = orderbookv1.SideSell
	}
	return &SubmitRequest{
		OrderID: fmt.Sprintf("order-%d", i),
		Symbol:  "BTC-USDT",
		Side:    side,
		Type:    orderbookv1.OrderTypeLimit,
		Qty:     decimal.NewFromInt(1),
		Price:   decimal.NewFromInt(int64(50000 + i%100)),
	}
}

func BenchmarkEngine_SubmitLimitOrders(b *testing.B) {
	engine := setupBenchmarkEngine(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Submit(ctx, benchmarkRequest(i))
	}
}

func BenchmarkEngine_SubmitWithDeepBook(b *testing.B) {
	engine := setupBenchmarkEngine(b)
	ctx := context.Background()

	// Pre-populate 1000 resting asks across 100 price levels.
	for i := 0; i < 1000; i++ {
		_, _ = engine.Submit(ctx, &SubmitRequest{
			OrderID: fmt.Sprintf("ask-%d", i),
			Symbol:  "BTC-USDT",
			Side:    orderbookv1.SideSell,
			Type:    orderbookv1.OrderTypeLimit,
			Qty:     decimal.NewFromInt(1),
			Price:   decimal.NewFromInt(int64(60000 + i%100)),
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Submit(ctx, &SubmitRequest{
			OrderID: fmt.Sprintf("taker-%d", i),
			Symbol:  "BTC-USDT",
			Side:    orderbookv1.SideBuy,
			Type:    orderbookv1.OrderTypeIOC,
			Qty:     decimal.NewFromInt(1),
			Price:   decimal.NewFromInt(60000),
		})
	}
}

func BenchmarkEngine_Cancel(b *testing.B) {
	engine := setupBenchmarkEngine(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		id := fmt.Sprintf("order-%d", i)
		_, _ = engine.Submit(ctx, &SubmitRequest{
			OrderID: id,
			Symbol:  "BTC-USDT",
			Side:    orderbookv1.SideBuy,
			Type:    orderbookv1.OrderTypeLimit,
			Qty:     decimal.NewFromInt(1),
			Price:   decimal.NewFromInt(int64(40000 + i%100)),
		})
		b.StartTimer()

		_, _ = engine.Cancel(ctx, id)
	}
}

package engine

import (
	"testing"

	orderreaderv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/order-reader/v1"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func placePayload(id, symbol, orderType, side, qty, price string) *orderreaderv1.PlaceOrderPayload {
	return &orderreaderv1.PlaceOrderPayload{
		OrderID: id,
		Symbol:  symbol,
		Type:    orderType,
		Side:    side,
		Qty:     qty,
		Price:   price,
	}
}

// A crossing payload produces one trade report and a BBO publish.
func TestEngine_ProcessPayload_PublishesReports(t *testing.T) {
	fixture := setupTestFixture(t)
	defer fixture.teardown()
	fixture.expectNoSnapshots()
	engine := createTestEngine(fixture)

	// Resting ask via the first payload; it publishes a BBO but no trades.
	fixture.mockPublisher.EXPECT().
		PublishBBO(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)
	fixture.mockPublisher.EXPECT().
		PublishTradeReport(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	engine.processPayload(placePayload("sell1", "BTC-USDT", "limit", "sell", "1", "65000"), 1)
	engine.processPayload(placePayload("buy1", "BTC-USDT", "limit", "buy", "1", "65000"), 2)

	assert.Equal(t, int64(1), engine.GetTotalTrades())
}

// A rejected payload publishes nothing.
func TestEngine_ProcessPayload_RejectionPublishesNothing(t *testing.T) {
	fixture := setupTestFixture(t)
	defer fixture.teardown()
	fixture.expectNoSnapshots()
	engine := createTestEngine(fixture)

	engine.processPayload(placePayload("buy1", "DOGE-USDT", "limit", "buy", "1", "65000"), 1)

	assert.Equal(t, int64(0), engine.GetTotalTrades())
}

// Unparseable decimals are dropped without touching any book.
func TestEngine_ProcessPayload_BadDecimal(t *testing.T) {
	fixture := setupTestFixture(t)
	defer fixture.teardown()
	fixture.expectNoSnapshots()
	engine := createTestEngine(fixture)

	engine.processPayload(placePayload("buy1", "BTC-USDT", "limit", "buy", "abc", "65000"), 1)
	engine.processPayload(placePayload("buy2", "BTC-USDT", "limit", "buy", "1", "not-a-price"), 2)

	bids, asks, err := engine.Depth("BTC-USDT", 10)
	assert.NoError(t, err)
	assert.Empty(t, bids)
	assert.Empty(t, asks)
}

// Market payloads parse without a price field.
func TestEngine_ProcessPayload_MarketWithoutPrice(t *testing.T) {
	fixture := setupTestFixture(t)
	defer fixture.teardown()
	fixture.expectNoSnapshots()
	engine := createTestEngine(fixture)

	fixture.mockPublisher.EXPECT().
		PublishBBO(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	engine.processPayload(placePayload("buy1", "BTC-USDT", "market", "buy", "1", ""), 1)

	assert.Equal(t, int64(0), engine.GetTotalTrades())
}

package orderbookv1

import "github.com/shopspring/decimal"

// Trade represents an executed match between a resting (maker) order and an
// incoming (taker) order. The price is always the maker's price. Trades are
// immutable once created; they are never merged or retracted.
type Trade struct {
	ID            string          `json:"id"`
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Qty           decimal.Decimal `json:"qty"`
	MakerOrderID  string          `json:"makerOrderID"`
	TakerOrderID  string          `json:"takerOrderID"`
	AggressorSide Side            `json:"aggressorSide"`
	Timestamp     int64           `json:"timestamp"`
}

// Notional returns price * quantity, the basis for fee computation.
func (t *Trade) Notional() decimal.Decimal {
	return t.Price.Mul(t.Qty)
}

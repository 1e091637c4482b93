package reportv1

import "github.com/shopspring/decimal"

// TradeReport is the per-trade contract handed to the broadcast/transport
// layer. Field set is fixed: instrument, price, quantity, maker and taker
// order ids, aggressor side, both fees and both fee rates.
type TradeReport struct {
	TradeID       string          `json:"tradeID"`
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Qty           decimal.Decimal `json:"qty"`
	MakerOrderID  string          `json:"makerOrderID"`
	TakerOrderID  string          `json:"takerOrderID"`
	AggressorSide string          `json:"aggressorSide"`
	MakerFee      decimal.Decimal `json:"makerFee"`
	TakerFee      decimal.Decimal `json:"takerFee"`
	MakerFeeRate  decimal.Decimal `json:"makerFeeRate"`
	TakerFeeRate  decimal.Decimal `json:"takerFeeRate"`
	Timestamp     int64           `json:"timestamp"`
}

// BBO is the best bid / best offer snapshot taken after all mutations of a
// submission are applied. A nil price means that side of the book is empty.
type BBO struct {
	Symbol    string           `json:"symbol"`
	Bid       *decimal.Decimal `json:"bid"`
	Ask       *decimal.Decimal `json:"ask"`
	Timestamp int64            `json:"timestamp"`
}

package reporter

import (
	"time"

	feesv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/fees/v1"
	orderbookv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/orderbook/v1"
	reportv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/report/v1"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/errors"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Reporter turns executed trades into trade reports carrying both parties'
// fees, and assembles post-submission BBO snapshots. One report is emitted
// per trade, in execution order, exactly once.
type Reporter struct {
	fees feesv1.Calculator
}

// NewReporter creates a reporter backed by the given fee calculator.
func NewReporter(fees feesv1.Calculator) *Reporter {
	return &Reporter{fees: fees}
}

// TradeReport builds the report for a single trade. Maker and taker fees are
// both computed on the trade's notional at their respective rates.
func (r *Reporter) TradeReport(trade *orderbookv1.Trade) (*reportv1.TradeReport, error) {
	notional := trade.Notional()
	makerFee, err := r.fees.Fee(notional, feesv1.RoleMaker)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	takerFee, err := r.fees.Fee(notional, feesv1.RoleTaker)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	return &reportv1.TradeReport{
		TradeID:       trade.ID,
		Symbol:        trade.Symbol,
		Price:         trade.Price,
		Qty:           trade.Qty,
		MakerOrderID:  trade.MakerOrderID,
		TakerOrderID:  trade.TakerOrderID,
		AggressorSide: string(trade.AggressorSide),
		MakerFee:      makerFee,
		TakerFee:      takerFee,
		MakerFeeRate:  r.fees.Rate(feesv1.RoleMaker),
		TakerFeeRate:  r.fees.Rate(feesv1.RoleTaker),
		Timestamp:     trade.Timestamp,
	}, nil
}

// TradeReports builds reports for a submission's trades in execution order.
func (r *Reporter) TradeReports(trades []*orderbookv1.Trade) ([]*reportv1.TradeReport, error) {
	if len(trades) == 0 {
		return nil, nil
	}
	reports := make([]*reportv1.TradeReport, 0, len(trades))
	for _, trade := range trades {
		report, err := r.TradeReport(trade)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// BBO assembles a best bid/offer snapshot. The ok flags mark which sides are
// populated; an empty side is reported as nil.
func (r *Reporter) BBO(symbol string, bid decimal.Decimal, bidOK bool, ask decimal.Decimal, askOK bool) *reportv1.BBO {
	bbo := &reportv1.BBO{
		Symbol:    symbol,
		Timestamp: time.Now().UnixNano(),
	}
	if bidOK {
		bbo.Bid = &bid
	}
	if askOK {
		bbo.Ask = &ask
	}
	return bbo
}

// NewTradeID returns a fresh trade identifier.
func NewTradeID() string {
	return ulid.Make().String()
}

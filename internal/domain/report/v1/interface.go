package reportv1

import "context"

// Publisher pushes trade reports and BBO updates to the downstream
// broadcast layer.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=reportv1_mock
type Publisher interface {
	// PublishTradeReport publishes a single trade report.
	PublishTradeReport(ctx context.Context, report *TradeReport) error
	// PublishBBO publishes a post-submission best bid/offer snapshot.
	PublishBBO(ctx context.Context, bbo *BBO) error
}

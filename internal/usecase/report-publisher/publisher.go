package reportpublisher

import (
	"context"
	"encoding/json"

	reportv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/report/v1"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/config"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/errors"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Publisher pushes trade reports and BBO snapshots to the report topic.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      *logger.Logger
}

var _ reportv1.Publisher = (*Publisher)(nil)

// NewPublisher creates a Kafka writer on the report topic.
func NewPublisher(cfg config.PublisherConfig, log *logger.Logger) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      log,
	}
}

// PublishTradeReport publishes a single trade report, keyed by symbol so
// consumers see one instrument's trades in order.
func (p *Publisher) PublishTradeReport(ctx context.Context, report *reportv1.TradeReport) error {
	return p.publish(ctx, report.Symbol, report)
}

// PublishBBO publishes a post-submission best bid/offer snapshot.
func (p *Publisher) PublishBBO(ctx context.Context, bbo *reportv1.BBO) error {
	return p.publish(ctx, bbo.Symbol, bbo)
}

func (p *Publisher) publish(ctx context.Context, key string, payload any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "payload", Value: payload},
		)
		return errors.NewTracer(string(errors.KafkaPublishError)).Wrap(err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: buf,
	}
	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "error", Value: err.Error()},
			logger.Field{Key: "key", Value: key},
		)
		return errors.NewTracer(string(errors.KafkaPublishError)).Wrap(err)
	}
	return nil
}

// Close releases the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}

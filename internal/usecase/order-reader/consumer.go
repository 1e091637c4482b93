package orderreader

import (
	"context"
	"encoding/json"

	orderreaderv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/order-reader/v1"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/config"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/errors"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Reader consumes order submissions from the intake topic. It reads a fixed
// partition rather than joining a consumer group: resume positions come from
// the book snapshots via SetOffset, which kafka-go only permits on a
// partition reader.
type Reader struct {
	kafkaReader *kafka.Reader
	logger      *logger.Logger
}

var _ orderreaderv1.OrderReader = (*Reader)(nil)

// NewReader creates a Kafka partition reader on the order intake topic.
func NewReader(cfg config.KafkaConfig, log *logger.Logger) *Reader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		Partition:   0,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})

	return &Reader{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

func (r *Reader) logError(err error, operation string) {
	r.logger.Error(err,
		logger.Field{Key: "error", Value: err.Error()},
		logger.Field{Key: "operation", Value: operation},
	)
}

// SetOffset positions the reader. Only valid before the first read.
func (r *Reader) SetOffset(offset int64) error {
	if err := r.kafkaReader.SetOffset(offset); err != nil {
		r.logError(err, "SetOffset")
		return errors.NewTracer(string(errors.KafkaReadError)).Wrap(err)
	}
	return nil
}

// ReadMessage blocks for the next submission and decodes its payload.
func (r *Reader) ReadMessage(ctx context.Context) (*orderreaderv1.PlaceOrderPayload, kafka.Message, error) {
	msg, err := r.kafkaReader.ReadMessage(ctx)
	if err != nil {
		r.logError(err, "ReadMessage")
		return nil, kafka.Message{}, errors.NewTracer(string(errors.KafkaReadError)).Wrap(err)
	}

	var payload orderreaderv1.PlaceOrderPayload
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		r.logError(err, "UnmarshalOrder")
		return nil, msg, errors.NewTracer(string(errors.KafkaReadError)).Wrap(err)
	}

	r.logger.Debug("ReadMessage",
		logger.Field{Key: "orderID", Value: payload.OrderID},
		logger.Field{Key: "symbol", Value: payload.Symbol},
		logger.Field{Key: "type", Value: payload.Type},
		logger.Field{Key: "side", Value: payload.Side},
		logger.Field{Key: "offset", Value: msg.Offset},
	)

	return &payload, msg, nil
}

// CommitMessages acknowledges processed messages. Offset progress is
// persisted through the book snapshots, and a partition reader has no
// consumer group to commit to, so this is a no-op.
func (r *Reader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	return nil
}

// Close releases the underlying Kafka reader.
func (r *Reader) Close() error {
	if err := r.kafkaReader.Close(); err != nil {
		r.logError(err, "Close")
		return err
	}
	return nil
}

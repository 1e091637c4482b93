package orderreaderv1

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// OrderReader consumes order submissions from the intake topic.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderreaderv1_mock
type OrderReader interface {
	// ReadMessage blocks until the next submission arrives, the context is
	// canceled, or the reader fails.
	ReadMessage(ctx context.Context) (*PlaceOrderPayload, kafka.Message, error)
	// CommitMessages marks messages as processed on the consumer group.
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	// SetOffset rewinds or fast-forwards the reader. Only valid before the
	// first ReadMessage call.
	SetOffset(offset int64) error
	// Close releases the underlying consumer.
	Close() error
}

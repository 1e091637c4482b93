package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	snapshotv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/snapshot/v1"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/errors"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/logger"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/redis"
)

const keyPrefix = "matching:snapshot:"

// Store persists book snapshots in Redis, one key per instrument.
type Store struct {
	logger      *logger.Logger
	redisclient redis.Client
}

var _ snapshotv1.Store = (*Store)(nil)

// NewStore creates a snapshot store backed by the given Redis client.
func NewStore(redisclient redis.Client, log *logger.Logger) *Store {
	return &Store{
		redisclient: redisclient,
		logger:      log,
	}
}

func key(symbol string) string {
	return keyPrefix + symbol
}

// Store persists a snapshot, replacing any previous one for the symbol.
func (s *Store) Store(ctx context.Context, snapshot *snapshotv1.Snapshot) error {
	buf, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "symbol",
			Value: snapshot.Symbol,
		})
		return errors.NewTracer("snapshot_marshal_error").Wrap(err)
	}

	if err := s.redisclient.Set(ctx, key(snapshot.Symbol), buf, 0); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "symbol",
			Value: snapshot.Symbol,
		})
		return errors.NewTracer("snapshot_store_error").Wrap(err)
	}

	s.logger.InfoContext(ctx, fmt.Sprintf("Snapshot stored for %s", snapshot.Symbol),
		logger.Field{Key: "symbol", Value: snapshot.Symbol},
		logger.Field{Key: "orders", Value: len(snapshot.Orders)},
		logger.Field{Key: "orderOffset", Value: snapshot.OrderOffset},
	)
	return nil
}

// Load returns the latest snapshot for the symbol, or nil when none exists.
func (s *Store) Load(ctx context.Context, symbol string) (*snapshotv1.Snapshot, error) {
	data, err := s.redisclient.Get(ctx, key(symbol))
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "symbol",
			Value: symbol,
		})
		return nil, errors.NewTracer("snapshot_load_error").Wrap(err)
	}

	if data == "" {
		s.logger.WarnContext(ctx, fmt.Sprintf("No snapshot found for %s", symbol), logger.Field{
			Key:   "symbol",
			Value: symbol,
		})
		return nil, nil
	}

	var snapshot snapshotv1.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "symbol",
			Value: symbol,
		})
		return nil, errors.NewTracer("snapshot_unmarshal_error").Wrap(err)
	}

	return &snapshot, nil
}

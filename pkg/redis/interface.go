package redis

import (
	"context"
	"time"
)

// Client defines the subset of Redis operations the engine depends on.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=redis_mock
type Client interface {
	// Connect establishes the connection and pings the server.
	Connect(ctx context.Context) error
	// Disconnect closes the underlying client.
	Disconnect(ctx context.Context) error
	// Ping checks that the server is reachable.
	Ping(ctx context.Context) error
	// Get returns the string value at key, or "" if the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value at key with the given expiration (0 = no expiry).
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	// Del removes the given keys.
	Del(ctx context.Context, keys ...string) error
}

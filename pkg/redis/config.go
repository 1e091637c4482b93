package redis

import "time"

// Mode determines how the client connects to Redis.
type Mode string

const (
	// Standalone connects to a single Redis instance.
	Standalone Mode = "standalone"
	// Cluster connects to a Redis cluster.
	Cluster Mode = "cluster"
)

// Config holds connection settings for the Redis client.
type Config struct {
	Mode            Mode
	Addrs           []string
	Username        string
	Password        string
	DB              int
	ConnectTimeout  time.Duration
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PoolTimeout     time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

// DefaultConfig returns a standalone configuration with sane pool settings.
func DefaultConfig() *Config {
	return &Config{
		Mode:            Standalone,
		Addrs:           []string{"localhost:6379"},
		ConnectTimeout:  5 * time.Second,
		PoolSize:        10,
		MinIdleConns:    1,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		PoolTimeout:     5 * time.Second,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	}
}

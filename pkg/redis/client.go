package redis

import (
	"context"
	"time"

	"github.com/ananyaprabhakarm/Matching-Engine/pkg/errors"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type client struct {
	logger  *logger.Logger
	config  *Config
	cmdable redis.Cmdable
}

// NewClient creates a new Redis client with the provided logger and configuration.
func NewClient(logger *logger.Logger, config *Config) Client {
	return &client{
		logger: logger,
		config: config,
	}
}

func (c *client) Connect(ctx context.Context) error {
	if c.config == nil {
		return errors.NewErrorDetails("Redis config is nil", string(errors.RedisConfigError), "connect")
	}

	if len(c.config.Addrs) == 0 {
		return errors.NewErrorDetails("Redis addresses are empty", string(errors.RedisConfigError), "connect")
	}

	if c.config.Mode != Standalone && c.config.Mode != Cluster {
		return errors.NewErrorDetails("Invalid Redis mode", string(errors.RedisConfigError), "connect")
	}

	if c.config.ConnectTimeout <= 0 {
		return errors.NewErrorDetails("Invalid Redis connect timeout", string(errors.RedisConfigError), "connect")
	}

	if c.config.PoolSize <= 0 {
		return errors.NewErrorDetails("Invalid Redis pool size", string(errors.RedisConfigError), "connect")
	}

	switch c.config.Mode {
	case Standalone:
		c.cmdable = redis.NewClient(&redis.Options{
			Addr:            c.config.Addrs[0],
			Username:        c.config.Username,
			Password:        c.config.Password,
			DB:              c.config.DB,
			MaxRetries:      c.config.MaxRetries,
			MinRetryBackoff: c.config.MinRetryBackoff,
			MaxRetryBackoff: c.config.MaxRetryBackoff,
			DialTimeout:     c.config.ConnectTimeout,
			ReadTimeout:     c.config.ConnectTimeout,
			WriteTimeout:    c.config.ConnectTimeout,
			PoolSize:        c.config.PoolSize,
			MinIdleConns:    c.config.MinIdleConns,
			MaxIdleConns:    c.config.MaxIdleConns,
			ConnMaxLifetime: c.config.ConnMaxLifetime,
			ConnMaxIdleTime: c.config.ConnMaxIdleTime,
			PoolTimeout:     c.config.PoolTimeout,
		})
	case Cluster:
		c.cmdable = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           c.config.Addrs,
			Username:        c.config.Username,
			Password:        c.config.Password,
			MaxRetries:      c.config.MaxRetries,
			MinRetryBackoff: c.config.MinRetryBackoff,
			MaxRetryBackoff: c.config.MaxRetryBackoff,
			DialTimeout:     c.config.ConnectTimeout,
			ReadTimeout:     c.config.ConnectTimeout,
			WriteTimeout:    c.config.ConnectTimeout,
			PoolSize:        c.config.PoolSize,
			MinIdleConns:    c.config.MinIdleConns,
			MaxIdleConns:    c.config.MaxIdleConns,
			ConnMaxLifetime: c.config.ConnMaxLifetime,
			ConnMaxIdleTime: c.config.ConnMaxIdleTime,
			PoolTimeout:     c.config.PoolTimeout,
		})
	}

	return c.cmdable.Ping(ctx).Err()
}

func (c *client) Disconnect(ctx context.Context) error {
	switch v := c.cmdable.(type) {
	case *redis.Client:
		return v.Close()
	case *redis.ClusterClient:
		return v.Close()
	default:
		return errors.NewErrorDetails("Redis client is not connected", string(errors.RedisConnectionError), "disconnect")
	}
}

func (c *client) Ping(ctx context.Context) error {
	if err := c.cmdable.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetails("Failed to ping Redis", string(errors.RedisPingError), "ping")
	}
	return nil
}

func (c *client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.cmdable.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		c.logger.Error(errors.TracerFromError(err), logger.Field{
			Key:   "key",
			Value: key,
		})
		return "", errors.NewErrorDetails("Failed to get value from Redis", string(errors.RedisGetError), key)
	}
	return val, nil
}

func (c *client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if err := c.cmdable.Set(ctx, key, value, expiration).Err(); err != nil {
		c.logger.Error(errors.TracerFromError(err), logger.Field{
			Key:   "key",
			Value: key,
		})
		return errors.NewErrorDetails("Failed to set value in Redis", string(errors.RedisSetError), key)
	}
	return nil
}

func (c *client) Del(ctx context.Context, keys ...string) error {
	if err := c.cmdable.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error(errors.TracerFromError(err), logger.Field{
			Key:   "keys",
			Value: keys,
		})
		return errors.NewErrorDetails("Failed to delete keys from Redis", string(errors.RedisDelError), "del")
	}
	return nil
}

package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // .env file is optional

	if err := env.Parse(cfg); err != nil {
		return err // Return error if environment variable parsing fails
	}

	return nil
}

// Config holds the configuration for the matching engine.
type Config struct {
	// Pairs lists the instruments this engine instance accepts,
	// e.g. BTC-USDT,ETH-USDT. Orders for any other symbol are rejected.
	Pairs []string `env:"PAIRS,required" envSeparator:","`

	Fees            FeeConfig             `envPrefix:"FEE_"`
	KafkaConfig     `envPrefix:"KAFKA_"`  // Order intake configuration
	PublisherConfig `envPrefix:"REPORT_"` // Trade report publishing configuration
	RedisConfig     `envPrefix:"REDIS_"`  // Snapshot store configuration
}

// FeeConfig holds the maker/taker fee schedule. Rates are decimal strings
// applied to notional = price * quantity.
type FeeConfig struct {
	MakerRate string `env:"MAKER_RATE" envDefault:"0.001"`
	TakerRate string `env:"TAKER_RATE" envDefault:"0.002"`
}

// KafkaConfig holds the configuration for the Kafka order consumer.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC,required"`
	GroupID string   `env:"GROUP_ID" envDefault:"default_group"`
	Brokers []string `env:"BROKER,required"`
}

// PublisherConfig holds the configuration for the trade report publisher.
type PublisherConfig struct {
	Topic   string   `env:"TOPIC,required"`
	Brokers []string `env:"BROKER,required"`
}

// RedisConfig holds the configuration for Redis client.
type RedisConfig struct {
	Addrs    string `env:"ADDRESS,required"` // Comma-separated list of Redis addresses
	Password string `env:"PASSWORD" envDefault:""`
	Username string `env:"USERNAME" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

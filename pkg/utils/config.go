package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Queue     QueueConfig
	Session   SessionConfig
	Inventory InventoryConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// AvailabilityTTL bounds staleness of cached availability reads.
	AvailabilityTTL time.Duration
}

type QueueConfig struct {
	URL string
}

type SessionConfig struct {
	ExpiryHours int
}

// InventoryConfig tunes the seat inventory manager.
type InventoryConfig struct {
	// OperationTimeout is the per-call deadline on reserve/cancel.
	OperationTimeout time.Duration
	// RetryAttempts bounds retries of transient store failures.
	RetryAttempts int
	RetryDelay    time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AVAILABILITY_CACHE_TTL", "5s")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("INVENTORY_TIMEOUT", "3s")
	viper.SetDefault("INVENTORY_RETRY_ATTEMPTS", 3)
	viper.SetDefault("INVENTORY_RETRY_DELAY", "100ms")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:            viper.GetString("REDIS_ADDR"),
			Password:        viper.GetString("REDIS_PASSWORD"),
			DB:              viper.GetInt("REDIS_DB"),
			AvailabilityTTL: viper.GetDuration("AVAILABILITY_CACHE_TTL"),
		},
		Queue: QueueConfig{
			URL: viper.GetString("AMQP_URL"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Inventory: InventoryConfig{
			OperationTimeout: viper.GetDuration("INVENTORY_TIMEOUT"),
			RetryAttempts:    viper.GetInt("INVENTORY_RETRY_ATTEMPTS"),
			RetryDelay:       viper.GetDuration("INVENTORY_RETRY_DELAY"),
		},
	}

	return config, nil
}

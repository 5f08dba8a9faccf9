package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/KirkDiggler/roomease/internal/entities"
	"github.com/redis/go-redis/v9"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	Booking BookingConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL      string // takes precedence over Addr when set
	Addr     string
	Password string
	DB       int
	GridTTL  time.Duration
}

// BookingConfig holds the hotel and booking session configuration
type BookingConfig struct {
	SessionID            string
	Layout               entities.Layout
	LayoutFile           string
	OccupancyProbability float64
	SearchTimeout        time.Duration
	RandomSeed           int64 // 0 seeds from the clock
}

// Enabled reports whether a Redis server is configured.
// Without one the grid lives in memory only.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Addr != ""
}

// Options builds go-redis client options
func (r RedisConfig) Options() (*redis.Options, error) {
	if r.URL != "" {
		opts, err := redis.ParseURL(r.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       r.DB,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Booking: BookingConfig{
			SessionID:  getEnvOrDefault("ROOMEASE_SESSION_ID", "default"),
			LayoutFile: os.Getenv("ROOMEASE_LAYOUT_FILE"),
		},
	}

	var err error
	if cfg.Redis.DB, err = getEnvAsIntOrDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.GridTTL, err = getEnvAsDurationOrDefault("GRID_TTL", 0); err != nil {
		return nil, err
	}
	if cfg.Booking.OccupancyProbability, err = getEnvAsFloatOrDefault("ROOMEASE_OCCUPANCY_PROBABILITY", 0.3); err != nil {
		return nil, err
	}
	if cfg.Booking.SearchTimeout, err = getEnvAsDurationOrDefault("ROOMEASE_SEARCH_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.Booking.RandomSeed, err = getEnvAsInt64OrDefault("ROOMEASE_RANDOM_SEED", 0); err != nil {
		return nil, err
	}

	// Validate ranges
	if cfg.Redis.GridTTL < 0 {
		return nil, fmt.Errorf("GRID_TTL must not be negative, got %s", cfg.Redis.GridTTL)
	}
	if cfg.Booking.SearchTimeout < 0 {
		return nil, fmt.Errorf("ROOMEASE_SEARCH_TIMEOUT must not be negative, got %s", cfg.Booking.SearchTimeout)
	}
	if p := cfg.Booking.OccupancyProbability; p < 0 || p > 1 {
		return nil, fmt.Errorf("ROOMEASE_OCCUPANCY_PROBABILITY must be between 0 and 1, got %v", p)
	}

	if cfg.Booking.LayoutFile != "" {
		layout, err := LoadLayoutFile(cfg.Booking.LayoutFile)
		if err != nil {
			return nil, err
		}
		cfg.Booking.Layout = layout
	} else {
		cfg.Booking.Layout = entities.DefaultLayout()
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return intValue, nil
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return intValue, nil
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return floatValue, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 5s: %w", key, err)
	}
	return d, nil
}

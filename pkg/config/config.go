package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port               string
	RateLimitPerSecond int
	RateLimitBurst     int
	ShareBaseURL       string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type PlannerConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type BookingConfig struct {
	ProcessingDelay time.Duration
}

type ObservabilityConfig struct {
	MetricsEnabled bool
}

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Planner       PlannerConfig
	Booking       BookingConfig
	Observability ObservabilityConfig
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 100),
			ShareBaseURL:       getEnv("SHARE_BASE_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "tripgenie"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Planner: PlannerConfig{
			BaseURL:        getEnv("PLANNER_BASE_URL", "http://localhost:8000"),
			RequestTimeout: getEnvDuration("PLANNER_TIMEOUT", 120*time.Second),
		},
		Booking: BookingConfig{
			ProcessingDelay: getEnvDuration("BOOKING_PROCESSING_DELAY", 2*time.Second),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		},
	}

	if cfg.Planner.BaseURL == "" {
		return nil, fmt.Errorf("PLANNER_BASE_URL must not be empty")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

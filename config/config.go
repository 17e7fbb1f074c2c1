package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration read from the environment
type Config struct {
	Port              string
	Env               string
	GinMode           string
	JWTSecret         string
	DatabaseDSN       string
	RedisAddr         string
	RedisUser         string
	RedisPassword     string
	CatalogSeed       int64
	AuthDelay         time.Duration
	PaymentDelay      time.Duration
	BookingPendingTTL time.Duration
	LogDir            string
	LogLevel          string
}

const defaultJWTSecret = "unistay-dev-secret"

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// Load reads the environment, falling back to development defaults
func Load() Config {
	cfg := Config{
		Port:              getString("PORT", "8083"),
		Env:               getString("ENV", "dev"),
		GinMode:           getString("GIN_MODE", ""),
		JWTSecret:         getString("JWT_SECRET", defaultJWTSecret),
		DatabaseDSN:       GetEnv("DB_DSN"),
		RedisAddr:         GetEnv("REDIS_ADDR"),
		RedisUser:         GetEnv("REDIS_USER"),
		RedisPassword:     GetEnv("REDIS_PASSWORD"),
		CatalogSeed:       getInt64("CATALOG_SEED", 0),
		AuthDelay:         getDuration("AUTH_DELAY", time.Second),
		PaymentDelay:      getDuration("PAYMENT_DELAY", time.Second),
		BookingPendingTTL: getDuration("BOOKING_PENDING_TTL", 30*time.Minute),
		LogDir:            getString("LOG_DIR", "logs"),
		LogLevel:          getString("LOG_LEVEL", "info"),
	}
	if cfg.JWTSecret == defaultJWTSecret && cfg.Env == "prod" {
		log.Printf("Warning: JWT_SECRET is not set, using the development secret")
	}
	return cfg
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

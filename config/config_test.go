package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_SECRET", "DB_DSN", "REDIS_ADDR", "CATALOG_SEED", "AUTH_DELAY", "PAYMENT_DELAY", "BOOKING_PENDING_TTL", "LOG_DIR", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8083" || cfg.LogDir != "logs" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.AuthDelay != time.Second || cfg.PaymentDelay != time.Second || cfg.BookingPendingTTL != 30*time.Minute {
		t.Fatalf("unexpected delays %+v", cfg)
	}
	if cfg.CatalogSeed != 0 || cfg.DatabaseDSN != "" || cfg.RedisAddr != "" {
		t.Fatalf("unexpected optional settings %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_SEED", "42")
	t.Setenv("AUTH_DELAY", "0s")
	t.Setenv("PAYMENT_DELAY", "bogus")
	t.Setenv("BOOKING_PENDING_TTL", "1h")

	cfg := Load()
	if cfg.Port != "9000" || cfg.CatalogSeed != 42 || cfg.AuthDelay != 0 || cfg.BookingPendingTTL != time.Hour {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.PaymentDelay != time.Second {
		t.Fatalf("invalid duration should fall back, got %v", cfg.PaymentDelay)
	}
}

func TestConnectRedisDisabledWithoutAddr(t *testing.T) {
	rdb, err := ConnectRedis(context.Background(), Config{})
	if rdb != nil || err != nil {
		t.Fatalf("expected disabled cache, got %v, %v", rdb, err)
	}
}

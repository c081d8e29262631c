package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("expected 15s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.RecentProducts != 5 {
		t.Errorf("expected 5 recent products, got %d", cfg.RecentProducts)
	}
	if cfg.BanMaxStrikes != 5 || cfg.BanTTL != 15*time.Minute {
		t.Errorf("unexpected ban defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLITE")
	t.Setenv("DATABASE_URL", "file:catalog.db")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("BAN_TTL", "1h")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("expected sqlite driver, got %q", cfg.DBDriver)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.HTTPAddr)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("expected 2.5 rps, got %v", cfg.RateLimitRPS)
	}
	if cfg.BanTTL != time.Hour {
		t.Errorf("expected 1h ban ttl, got %v", cfg.BanTTL)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected redis addr, got %q", cfg.RedisAddr)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "db_driver: memory\nhttp_addr: \":7070\"\nrecent_products: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CATALOG_CONFIG", path)
	t.Setenv("RECENT_PRODUCTS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Errorf("expected :7070 from file, got %q", cfg.HTTPAddr)
	}
	if cfg.RecentProducts != 8 {
		t.Errorf("expected env to override file, got %d", cfg.RecentProducts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory", cfg: Config{DBDriver: "memory", RateLimitRPS: 1, RateLimitBurst: 1}},
		{name: "postgres without url", cfg: Config{DBDriver: "postgres", RateLimitRPS: 1, RateLimitBurst: 1}, wantErr: true},
		{name: "unknown driver", cfg: Config{DBDriver: "mysql", DatabaseURL: "x", RateLimitRPS: 1, RateLimitBurst: 1}, wantErr: true},
		{name: "zero rate", cfg: Config{DBDriver: "memory", RateLimitBurst: 1}, wantErr: true},
		{name: "negative recent", cfg: Config{DBDriver: "memory", RateLimitRPS: 1, RateLimitBurst: 1, RecentProducts: -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_RejectsNonPositiveDurations(t *testing.T) {
	tests := []struct {
		env   string
		value string
	}{
		{"BAN_SUMMARY_INTERVAL", "0s"},
		{"BAN_SUMMARY_INTERVAL", "-1h"},
		{"BAN_STRIKE_WINDOW", "0s"},
		{"BAN_TTL", "-5m"},
		{"SHUTDOWN_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.env+"="+tt.value, func(t *testing.T) {
			t.Setenv("DB_DRIVER", "memory")
			t.Setenv(tt.env, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("expected %s=%s to be rejected", tt.env, tt.value)
			}
		})
	}
}

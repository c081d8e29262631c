// Package config provides runtime configuration for the catalog server and CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds configuration knobs for the HTTP server and its backing stores.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogLevel        string

	DBDriver    string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitRPS   float64
	RateLimitBurst int
	BanMaxStrikes  int
	BanStrikeTTL   time.Duration
	BanTTL         time.Duration
	BanSummaryEach time.Duration

	RecentProducts int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("shutdown_timeout", "15s")
	v.SetDefault("log_level", "info")
	v.SetDefault("db_driver", "postgres")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("rate_limit_rps", 10.0)
	v.SetDefault("rate_limit_burst", 20)
	v.SetDefault("ban_max_strikes", 5)
	v.SetDefault("ban_strike_window", "1m")
	v.SetDefault("ban_ttl", "15m")
	v.SetDefault("ban_summary_interval", "24h")
	v.SetDefault("recent_products", 5)
}

// Load collects configuration from defaults, an optional config file named by
// CATALOG_CONFIG, and the environment, in increasing order of precedence.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("catalog_config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := Config{
		HTTPAddr:        v.GetString("http_addr"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		LogLevel:        v.GetString("log_level"),
		DBDriver:        strings.ToLower(v.GetString("db_driver")),
		DatabaseURL:     v.GetString("database_url"),
		RedisAddr:       v.GetString("redis_addr"),
		RedisPassword:   v.GetString("redis_password"),
		RedisDB:         v.GetInt("redis_db"),
		RateLimitRPS:    v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:  v.GetInt("rate_limit_burst"),
		BanMaxStrikes:   v.GetInt("ban_max_strikes"),
		BanStrikeTTL:    v.GetDuration("ban_strike_window"),
		BanTTL:          v.GetDuration("ban_ttl"),
		BanSummaryEach:  v.GetDuration("ban_summary_interval"),
		RecentProducts:  v.GetInt("recent_products"),
	}
	return cfg, cfg.Validate()
}

// Validate reports configuration values the server cannot start with.
func (c Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for db driver %q", c.DBDriver)
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v rps burst %d", c.RateLimitRPS, c.RateLimitBurst)
	}
	if c.RecentProducts < 0 {
		return fmt.Errorf("RECENT_PRODUCTS cannot be negative")
	}
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"SHUTDOWN_TIMEOUT", c.ShutdownTimeout},
		{"BAN_STRIKE_WINDOW", c.BanStrikeTTL},
		{"BAN_TTL", c.BanTTL},
		{"BAN_SUMMARY_INTERVAL", c.BanSummaryEach},
	} {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", d.name, d.value)
		}
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Shortener ShortenerConfig `mapstructure:"shortener"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Admin     AdminConfig     `mapstructure:"admin"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// ShortenerConfig represents short code generation configuration
type ShortenerConfig struct {
	KeyLength   int `mapstructure:"key_length"`
	MaxAttempts int `mapstructure:"max_attempts"`
}

// AnalyticsConfig represents analytics engine configuration
type AnalyticsConfig struct {
	HistoryLimit int           `mapstructure:"history_limit"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	RecentWindow time.Duration `mapstructure:"recent_window"`
}

// RateLimitConfig represents rate limiter configuration
type RateLimitConfig struct {
	MaxPerHour        int           `mapstructure:"max_per_hour"`
	MaxBulkPerDay     int           `mapstructure:"max_bulk_per_day"`
	BulkCooldown      time.Duration `mapstructure:"bulk_cooldown"`
	ProgressiveFactor float64       `mapstructure:"progressive_factor"`
	ProgressiveCap    float64       `mapstructure:"progressive_cap"`
	BulkBaseDelay     time.Duration `mapstructure:"bulk_base_delay"`
}

// AdminConfig represents admin gate configuration
type AdminConfig struct {
	Token             string `mapstructure:"token"`
	OperationLogLimit int    `mapstructure:"operation_log_limit"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Admin.Token = expandEnv(cfg.Admin.Token)

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("shortener.key_length", 6)
	v.SetDefault("shortener.max_attempts", 10)
	v.SetDefault("analytics.history_limit", 100)
	v.SetDefault("analytics.cache_ttl", "10s")
	v.SetDefault("analytics.recent_window", "24h")
	v.SetDefault("ratelimit.max_per_hour", 50)
	v.SetDefault("ratelimit.max_bulk_per_day", 10)
	v.SetDefault("ratelimit.bulk_cooldown", "5m")
	v.SetDefault("ratelimit.progressive_factor", 1.5)
	v.SetDefault("ratelimit.progressive_cap", 5.0)
	v.SetDefault("ratelimit.bulk_base_delay", "100ms")
	v.SetDefault("admin.operation_log_limit", 1000)
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}

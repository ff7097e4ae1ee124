// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Upstream   UpstreamConfig
	Resilience ResilienceConfig
	Store      StoreConfig
	Display    DisplayConfig
	Session    SessionConfig
	Logging    LoggingConfig
	App        AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"SERVER_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// UpstreamConfig selects where routes come from. A non-empty BaseURL wins
// over FixturePath.
type UpstreamConfig struct {
	BaseURL        string        `env:"UPSTREAM_BASE_URL"`
	FixturePath    string        `env:"UPSTREAM_FIXTURE_PATH" envDefault:"docs/response-mock/routes.json"`
	FixtureLatency time.Duration `env:"UPSTREAM_FIXTURE_LATENCY" envDefault:"0s"`
	Timeout        time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"5s"`
	SearchTimeout  time.Duration `env:"UPSTREAM_SEARCH_TIMEOUT" envDefault:"10s"`
}

// ResilienceConfig holds rate limit, retry and circuit breaker settings.
type ResilienceConfig struct {
	RequestsPerSecond  float64       `env:"RESILIENCE_RPS" envDefault:"10"`
	Burst              int           `env:"RESILIENCE_BURST" envDefault:"20"`
	RetryAttempts      int           `env:"RESILIENCE_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInitialDelay  time.Duration `env:"RESILIENCE_RETRY_INITIAL_DELAY" envDefault:"200ms"`
	RetryMaxDelay      time.Duration `env:"RESILIENCE_RETRY_MAX_DELAY" envDefault:"2s"`
	BreakerMaxFailures uint32        `env:"RESILIENCE_BREAKER_MAX_FAILURES" envDefault:"5"`
	BreakerTimeout     time.Duration `env:"RESILIENCE_BREAKER_TIMEOUT" envDefault:"30s"`
}

// StoreConfig selects the booking store backend.
type StoreConfig struct {
	Backend       string `env:"STORE_BACKEND" envDefault:"memory"`
	KeyPrefix     string `env:"STORE_KEY_PREFIX" envDefault:"route-offers:"`
	RedisAddr     string `env:"STORE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"STORE_REDIS_PASSWORD"`
	RedisDB       int    `env:"STORE_REDIS_DB" envDefault:"0"`
	BadgerPath    string `env:"STORE_BADGER_PATH" envDefault:"data/badger"`
}

// DisplayConfig holds the locale and time zone used for clock labels.
type DisplayConfig struct {
	Locale   string `env:"DISPLAY_LOCALE" envDefault:"en_US"`
	Timezone string `env:"DISPLAY_TIMEZONE" envDefault:"UTC"`
}

// SessionConfig holds offer view session settings.
type SessionConfig struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	NodeID int64  `env:"APP_NODE_ID" envDefault:"1"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout},
		{"UPSTREAM_TIMEOUT", cfg.Upstream.Timeout},
		{"UPSTREAM_SEARCH_TIMEOUT", cfg.Upstream.SearchTimeout},
		{"SESSION_TTL", cfg.Session.TTL},
		{"SESSION_SWEEP_INTERVAL", cfg.Session.SweepInterval},
		{"RESILIENCE_BREAKER_TIMEOUT", cfg.Resilience.BreakerTimeout},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if cfg.Upstream.FixtureLatency < 0 {
		return fmt.Errorf("UPSTREAM_FIXTURE_LATENCY must not be negative")
	}

	// A single request must fit inside the overall search budget
	if cfg.Upstream.Timeout > cfg.Upstream.SearchTimeout {
		return fmt.Errorf("UPSTREAM_TIMEOUT (%s) should not exceed UPSTREAM_SEARCH_TIMEOUT (%s)",
			cfg.Upstream.Timeout, cfg.Upstream.SearchTimeout)
	}

	if cfg.Upstream.BaseURL == "" && cfg.Upstream.FixturePath == "" {
		return fmt.Errorf("one of UPSTREAM_BASE_URL or UPSTREAM_FIXTURE_PATH is required")
	}
	if cfg.Upstream.BaseURL != "" &&
		!strings.HasPrefix(cfg.Upstream.BaseURL, "http://") && !strings.HasPrefix(cfg.Upstream.BaseURL, "https://") {
		return fmt.Errorf("UPSTREAM_BASE_URL must start with http:// or https://, got %q", cfg.Upstream.BaseURL)
	}

	if cfg.Resilience.RequestsPerSecond < 0 {
		return fmt.Errorf("RESILIENCE_RPS must not be negative")
	}
	if cfg.Resilience.Burst < 1 {
		return fmt.Errorf("RESILIENCE_BURST must be at least 1, got %d", cfg.Resilience.Burst)
	}
	if cfg.Resilience.RetryAttempts < 1 {
		return fmt.Errorf("RESILIENCE_RETRY_ATTEMPTS must be at least 1, got %d", cfg.Resilience.RetryAttempts)
	}
	if cfg.Resilience.BreakerMaxFailures < 1 {
		return fmt.Errorf("RESILIENCE_BREAKER_MAX_FAILURES must be at least 1")
	}

	validBackends := map[string]bool{"memory": true, "redis": true, "badger": true}
	if !validBackends[cfg.Store.Backend] {
		return fmt.Errorf("STORE_BACKEND must be one of: memory, redis, badger; got %q", cfg.Store.Backend)
	}
	if cfg.Store.Backend == "redis" && cfg.Store.RedisAddr == "" {
		return fmt.Errorf("STORE_REDIS_ADDR is required for the redis backend")
	}

	if !timeutil.IsSupportedLocale(cfg.Display.Locale) {
		return fmt.Errorf("DISPLAY_LOCALE %q is not supported", cfg.Display.Locale)
	}
	if _, err := timeutil.GetLocation(cfg.Display.Timezone); err != nil {
		return fmt.Errorf("DISPLAY_TIMEZONE %q is invalid: %w", cfg.Display.Timezone, err)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	// Snowflake node IDs are 10 bits wide
	if cfg.App.NodeID < 0 || cfg.App.NodeID > 1023 {
		return fmt.Errorf("APP_NODE_ID must be between 0 and 1023, got %d", cfg.App.NodeID)
	}

	return nil
}

// UsesUpstream reports whether routes are fetched over HTTP rather than from the fixture file.
func (c *Config) UsesUpstream() bool {
	return c.Upstream.BaseURL != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

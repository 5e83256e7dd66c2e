// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/community-events/internal/confirm"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Locale      string

	ConfirmURL     string
	ConfirmDelay   time.Duration
	ConfirmTimeout time.Duration

	// SeedFile overrides the built-in seed list. DatabaseURL, when set, takes
	// precedence and the seed is read from Postgres instead.
	SeedFile       string
	DatabaseURL    string
	MigrationsPath string

	CORSOrigins        []string
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load reads configuration from environment variables, loading a .env file
// first outside production.
func Load() (*Config, error) {
	env := getEnv("GO_ENV", "development")
	if env != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("warning: .env file could not be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Locale:         getEnv("LOCALE", "en"),
		ConfirmURL:     getEnv("CONFIRM_URL", confirm.DefaultURL),
		SeedFile:       os.Getenv("SEED_FILE"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
	}

	var err error
	if cfg.ConfirmDelay, err = getDuration("CONFIRM_DELAY", time.Second); err != nil {
		return nil, err
	}
	if cfg.ConfirmTimeout, err = getDuration("CONFIRM_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 5); err != nil {
		return nil, err
	}
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("config: PORT must be numeric, got %q", c.Port)
	}
	u, err := url.Parse(c.ConfirmURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: CONFIRM_URL invalid (%q)", c.ConfirmURL)
	}
	if c.ConfirmDelay < 0 {
		return fmt.Errorf("config: CONFIRM_DELAY cannot be negative")
	}
	if c.ConfirmTimeout <= 0 {
		return fmt.Errorf("config: CONFIRM_TIMEOUT must be positive")
	}
	if c.RateLimitPerMinute <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: rate limit values must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

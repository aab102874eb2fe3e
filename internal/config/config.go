// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config holds every setting of the printcraft server.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	StorageBackend   string `env:"STORAGE_BACKEND"   envDefault:"bolt"`
	StorageNamespace string `env:"STORAGE_NAMESPACE" envDefault:"printcraft"`
	BoltPath         string `env:"BOLT_PATH"         envDefault:"printcraft.db"`
	SQLitePath       string `env:"SQLITE_PATH"       envDefault:"printcraft.sqlite"`
	DatabaseURL      string `env:"DATABASE_URL"`

	RedisAddr     string        `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"       envDefault:"0"`
	RedisTTL      time.Duration `env:"REDIS_TTL"      envDefault:"0"`

	CatalogPath   string        `env:"CATALOG_PATH"`
	CheckoutDelay time.Duration `env:"CHECKOUT_DELAY" envDefault:"1200ms"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings the selected backend depends on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("ADDR is required")
	}
	switch c.StorageBackend {
	case BackendBolt:
		if strings.TrimSpace(c.BoltPath) == "" {
			return fmt.Errorf("BOLT_PATH is required for the bolt backend")
		}
	case BackendSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	case BackendRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
		if c.RedisTTL < 0 {
			return fmt.Errorf("REDIS_TTL must be >= 0")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.CheckoutDelay < 0 {
		return fmt.Errorf("CHECKOUT_DELAY must be >= 0")
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}

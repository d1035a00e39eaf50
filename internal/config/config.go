package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const defaultPort = "8080"

// Config aggregates the service configuration.
type Config struct {
	Server ServerConfig
	Seed   SeedConfig
	Audit  AuditConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port          string `env:"PORT" envDefault:"8080"`
	AllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`

	// Addr is derived from Port.
	Addr string
}

// SeedConfig selects the initial profile list. An empty File means the
// built-in seed.
type SeedConfig struct {
	File string `env:"PROFILES_SEED_FILE"`
}

// AuditConfig controls the in-memory audit history.
type AuditConfig struct {
	HistoryLimit int `env:"AUDIT_HISTORY_LIMIT" envDefault:"50"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	addr, err := listenAddr(cfg.Server.Port)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr

	cfg.Seed.File = strings.TrimSpace(cfg.Seed.File)
	if strings.TrimSpace(cfg.Server.AllowedOrigin) == "" {
		cfg.Server.AllowedOrigin = "*"
	}
	if cfg.Audit.HistoryLimit < 1 {
		cfg.Audit.HistoryLimit = 1
	}

	return &cfg, nil
}

// listenAddr turns PORT into a listen address.
func listenAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = defaultPort
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}

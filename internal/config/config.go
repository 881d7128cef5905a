// Package config loads configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config configures the command-line client.
type Config struct {
	BaseURL     string        `env:"HUBSPOT_BASE_URL,default=https://api.hubapi.com/contacts/v1"`
	AccessToken string        `env:"HUBSPOT_ACCESS_TOKEN"`
	Timeout     time.Duration `env:"HUBSPOT_TIMEOUT,default=30s"`
	LogLevel    string        `env:"HUBSPOT_LOG_LEVEL,default=info"`
}

// PortalConfig configures the fake portal server.
type PortalConfig struct {
	Addr      string `env:"FAKEPORTAL_ADDR,default=:8080"`
	DBPath    string `env:"FAKEPORTAL_DB,default=fakeportal.db"`
	AuthToken string `env:"FAKEPORTAL_AUTH_TOKEN"`
}

// Load reads the client configuration.
func Load() (Config, error) {
	var cfg Config
	if err := decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadPortal reads the fake portal configuration.
func LoadPortal() (PortalConfig, error) {
	var cfg PortalConfig
	if err := decode(&cfg); err != nil {
		return PortalConfig{}, err
	}
	return cfg, nil
}

func decode(target any) error {
	if err := envdecode.Decode(target); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("decode environment: %w", err)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level. Unknown names map to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

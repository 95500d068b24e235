package config

import (
	"fmt"

	"github.com/GriffinCanCode/sceneryloader/internal/logging"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Fixture FixtureConfig
	Metrics MetricsConfig
	Catalog CatalogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"SGL_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"SGL_LOG_DEV" default:"false"`
}

// FixtureConfig points at the catalog fixture for the harness.
type FixtureConfig struct {
	Path string `envconfig:"SGL_FIXTURE" default:""`
}

// MetricsConfig holds Prometheus configuration.
type MetricsConfig struct {
	Enabled   bool   `envconfig:"SGL_METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"SGL_METRICS_NAMESPACE" default:"sceneryloader"`
}

// CatalogConfig holds catalog index display settings.
type CatalogConfig struct {
	AuthorPlaceholder string `envconfig:"SGL_AUTHOR_PLACEHOLDER" default:"unknown"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "sceneryloader",
		},
		Catalog: CatalogConfig{
			AuthorPlaceholder: types.AuthorPlaceholder,
		},
	}
}

// LoggerConfig converts the section into a logging.Config.
func (c LogConfig) LoggerConfig() logging.Config {
	if c.Development {
		cfg := logging.DevelopmentConfig()
		if c.Level != "" {
			cfg.Level = c.Level
		}
		return cfg
	}
	cfg := logging.DefaultConfig()
	if c.Level != "" {
		cfg.Level = c.Level
	}
	return cfg
}

// Package config provides 12-factor configuration for the scenery loader.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Fixture: Catalog fixture used by the command line harness
//   - Metrics: Prometheus collection toggle and namespace
//   - Catalog: Display placeholders for indexed groups
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	logger, err := logging.New(cfg.Logging.LoggerConfig())
//
// Environment Variables:
//   - SGL_LOG_LEVEL, SGL_LOG_DEV
//   - SGL_FIXTURE
//   - SGL_METRICS_ENABLED, SGL_METRICS_NAMESPACE
//   - SGL_AUTHOR_PLACEHOLDER
package config

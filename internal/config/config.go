// Package config loads runtime settings for the storefront CLI.
//
// Sources are layered: built-in defaults, then an optional JSON file
// (-c/-config), then environment variables, then command-line flags. Later
// sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - BaseURL: root of the remote store API.
//   - DatabaseFile: file name of the local state database, placed in the
//     data directory.
//   - RequestTimeout: per-request bound for remote calls.
//   - CacheTTL: how long the full product list is cached for search.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	BaseURL        string        `env:"STOREFRONT_BASE_URL"`
	DatabaseFile   string        `env:"STOREFRONT_DATABASE_FILE"`
	RequestTimeout time.Duration `env:"STOREFRONT_REQUEST_TIMEOUT"`
	CacheTTL       time.Duration `env:"STOREFRONT_CACHE_TTL"`
	LogLevel       string        `env:"STOREFRONT_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://fakestoreapi.com"
	c.DatabaseFile = "storefront.db"
	c.RequestTimeout = 10 * time.Second
	c.CacheTTL = 5 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

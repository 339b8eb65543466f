package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with values from STOREFRONT_* environment
// variables (see the env tags on Config). Panics on malformed values.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}

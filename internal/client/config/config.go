// Package config assembles runtime settings for the Pokedex CLI from
// defaults, an optional JSON file, and command-line flags, in that order of
// precedence (later sources win).
package config

import "time"

// Config holds runtime settings for the Pokedex CLI.
type Config struct {
	// CatalogBaseURL is the root of the catalog REST API.
	CatalogBaseURL string

	// PageLimit is the number of items requested for the first page.
	PageLimit int

	// RequestTimeout bounds every catalog HTTP request.
	RequestTimeout time.Duration

	// StoreDriver selects the local store backend: "sqlite" or "postgres".
	StoreDriver string

	// StoreDSN is the driver-specific data source name.
	StoreDSN string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.CatalogBaseURL = "https://pokeapi.co/api/v2"
	c.PageLimit = 10
	c.RequestTimeout = 10 * time.Second
	c.StoreDriver = "sqlite"
	c.StoreDSN = "pokedex.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

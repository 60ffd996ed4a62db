package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/pokedex/internal/flagx"
	"github.com/dmitrijs2005/pokedex/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. Zero values are treated as "not set" and
// leave the runtime Config untouched.
type JsonConfig struct {
	CatalogBaseURL string         `json:"catalog_base_url"`
	PageLimit      int            `json:"page_limit"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StoreDriver    string         `json:"store_driver"`
	StoreDSN       string         `json:"store_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is present no JSON is
// loaded. Read or unmarshal errors panic (the caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.CatalogBaseURL != "" {
		cfg.CatalogBaseURL = jc.CatalogBaseURL
	}
	if jc.PageLimit != 0 {
		cfg.PageLimit = jc.PageLimit
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StoreDriver != "" {
		cfg.StoreDriver = jc.StoreDriver
	}
	if jc.StoreDSN != "" {
		cfg.StoreDSN = jc.StoreDSN
	}
}

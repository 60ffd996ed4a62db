package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pokedex/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the catalog API
//	-l int      page size of the first list page
//	-t int      request timeout in seconds
//	-d string   store driver (sqlite or postgres)
//	-s string   store DSN
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-t", "-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.CatalogBaseURL, "a", cfg.CatalogBaseURL, "base URL of the catalog API")
	fs.IntVar(&cfg.PageLimit, "l", cfg.PageLimit, "page size of the first list page")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "store driver (sqlite or postgres)")
	fs.StringVar(&cfg.StoreDSN, "s", cfg.StoreDSN, "store DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

// Package cli is the interactive terminal front end of the Pokedex client.
// Commands dispatch into the session manager and the catalog page cache;
// every failure degrades to a printed message and a usable prompt.
package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/pokedex/internal/client/catalog"
	"github.com/dmitrijs2005/pokedex/internal/client/config"
	"github.com/dmitrijs2005/pokedex/internal/client/pokeapi"
	"github.com/dmitrijs2005/pokedex/internal/client/services"
	"github.com/dmitrijs2005/pokedex/internal/client/store"
	"github.com/dmitrijs2005/pokedex/internal/hashx"
	"github.com/dmitrijs2005/pokedex/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	store   *store.Store
	session *services.Session
	api     *pokeapi.Client
	cache   *catalog.PageCache
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		return nil, err
	}

	creds := services.NewCredentials(st.Users, hashx.SHA256Hasher{}, log)
	sess := services.NewSession(creds, st.Session, log)

	api := pokeapi.New(cfg.CatalogBaseURL, &http.Client{Timeout: cfg.RequestTimeout})
	cache := catalog.NewPageCache(api, cfg.PageLimit, log)

	return &App{
		config:  cfg,
		log:     log,
		store:   st,
		session: sess,
		api:     api,
		cache:   cache,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == services.StateLoggedIn
}

func (a *App) status() string {
	if u := a.session.Current(); u != nil {
		return u.Username
	}
	return a.session.State().String()
}

// Run restores a persisted session if one exists and starts the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.session.RestoreFromPersisted(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pokedex/internal/client/catalog"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return errNotLoggedIn
	}
	return nil
}

func (a *App) printSnapshot(snap catalog.Snapshot) {
	if snap.Err != "" {
		fmt.Fprintln(a.out, "Failed to load data:", snap.Err)
		fmt.Fprintln(a.out, "The previous list is kept; type 'reload' to retry.")
	}

	if snap.Query != "" {
		fmt.Fprintf(a.out, "Filter %q: %d of %d items\n", snap.Query, len(snap.Filtered), len(snap.Items))
	}
	for _, p := range snap.Filtered {
		fmt.Fprintln(a.out, " -", p.Name)
	}

	if len(snap.Items) == 0 {
		fmt.Fprintln(a.out, "(no items)")
	} else if snap.Exhausted() {
		fmt.Fprintln(a.out, "(end of list)")
	}
}

// List prints the current page, fetching the first one when nothing has been
// loaded yet.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	snap := a.cache.Snapshot()
	if len(snap.Items) == 0 && snap.Err == "" {
		snap = a.cache.Refresh(ctx)
	}
	a.printSnapshot(snap)
	return nil
}

// Next fetches the following page.
func (a *App) Next(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	if a.cache.Snapshot().Exhausted() {
		fmt.Fprintln(a.out, "Already at the end of the list; type 'reload' to start over.")
		return nil
	}
	a.printSnapshot(a.cache.Refresh(ctx))
	return nil
}

// Reload starts over from the first page.
func (a *App) Reload(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	a.cache.Reset()
	a.printSnapshot(a.cache.Refresh(ctx))
	return nil
}

package cli

import (
	"context"
	"fmt"
)

// Search narrows the currently loaded page to names containing query.
// An empty query clears the filter.
func (a *App) Search(ctx context.Context, query string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	snap := a.cache.SetQuery(query)
	if query == "" {
		fmt.Fprintln(a.out, "Filter cleared.")
	} else if len(snap.Filtered) == 0 {
		fmt.Fprintf(a.out, "No items match %q.\n", query)
		return nil
	}
	a.printSnapshot(snap)
	return nil
}

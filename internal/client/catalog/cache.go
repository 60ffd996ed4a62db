// Package catalog keeps the last fetched list page and a derived filtered
// view. Fetches follow a latest-wins discipline: a refresh issued while
// another is in flight cancels it, and a completing fetch applies its result
// only if no newer refresh has been issued since.
package catalog

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/pokedex/internal/client/models"
	"github.com/dmitrijs2005/pokedex/internal/client/pokeapi"
	"github.com/dmitrijs2005/pokedex/internal/logging"
)

// Lister fetches one catalog page. *pokeapi.Client satisfies this.
type Lister interface {
	ListPage(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error)
}

// Snapshot is the published state of the cache. Items and Next always change
// together; a failed fetch leaves both at their last good values.
type Snapshot struct {
	Items    []models.Pokemon
	Filtered []models.Pokemon
	Query    string
	Next     string
	Loading  bool
	Err      string
}

// Exhausted reports whether the listing has no further pages.
func (s Snapshot) Exhausted() bool {
	return len(s.Items) > 0 && s.Next == ""
}

// PageCache is the sequential page cursor over the catalog API.
type PageCache struct {
	api   Lister
	limit int
	log   logging.Logger

	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	cursor   string // URL of the page the next Refresh fetches; "" = first page
	items    []models.Pokemon
	next     string
	query    string
	loading  bool
	errMsg   string
	onChange func(Snapshot)
}

func NewPageCache(api Lister, limit int, log logging.Logger) *PageCache {
	return &PageCache{api: api, limit: limit, log: log}
}

// SetOnChange registers a subscriber notified after every published change.
func (c *PageCache) SetOnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

func (c *PageCache) snapshotLocked() Snapshot {
	return Snapshot{
		Items:    c.items,
		Filtered: Filter(c.items, c.query),
		Query:    c.query,
		Next:     c.next,
		Loading:  c.loading,
		Err:      c.errMsg,
	}
}

// notifyLocked must be called with c.mu held; the callback itself runs with
// the lock held, so subscribers must not call back into the cache.
func (c *PageCache) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.snapshotLocked())
	}
}

// Snapshot returns the current published state.
func (c *PageCache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Reset points the cursor back at the first page. Items are kept until the
// next successful refresh replaces them.
func (c *PageCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = ""
}

// SetQuery recomputes the filtered view synchronously. It never triggers
// network activity.
func (c *PageCache) SetQuery(q string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
	c.notifyLocked()
	return c.snapshotLocked()
}

// Refresh fetches the page at the current cursor (or the first page) and, on
// success, replaces items wholesale and advances the cursor to the returned
// next-page URL. Calling Refresh while a previous call is still in flight
// supersedes it: the previous call's HTTP request is cancelled and its
// result, success or failure, is discarded.
//
// The returned snapshot is the state after this call settled; when the call
// was superseded it reflects whatever the newest refresh published.
func (c *PageCache) Refresh(ctx context.Context) Snapshot {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.cancel != nil {
		c.cancel() // supersede the in-flight fetch
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	pageURL := c.cursor
	c.loading = true
	c.errMsg = ""
	c.notifyLocked()
	c.mu.Unlock()

	page, err := c.api.ListPage(fetchCtx, pageURL, c.limit)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// A newer refresh was issued while we were fetching; its result is
		// the only one allowed to take effect.
		c.log.Debug(ctx, "stale refresh discarded", "gen", gen)
		return c.snapshotLocked()
	}

	c.loading = false
	c.cancel = nil
	if err != nil {
		c.errMsg = err.Error()
		c.log.Warn(ctx, "catalog refresh failed", "err", err)
	} else {
		c.items = page.Items
		c.next = page.Next
		c.cursor = page.Next
		c.log.Debug(ctx, "page fetched", "items", len(page.Items), "next", page.Next)
	}
	c.notifyLocked()
	return c.snapshotLocked()
}

package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/pokedex/internal/client/models"
	"github.com/dmitrijs2005/pokedex/internal/client/pokeapi"
	"github.com/dmitrijs2005/pokedex/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeLister struct {
	fn func(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error)
}

func (f *fakeLister) ListPage(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error) {
	return f.fn(ctx, pageURL, limit)
}

func page(next string, itemNames ...string) *pokeapi.Page {
	p := &pokeapi.Page{Next: next, Items: []models.Pokemon{}}
	for _, n := range itemNames {
		p.Items = append(p.Items, models.Pokemon{Name: n})
	}
	return p
}

func TestRefresh_ReplacesItemsAndAdvancesCursor(t *testing.T) {
	var urls []string
	api := &fakeLister{fn: func(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error) {
		urls = append(urls, pageURL)
		if pageURL == "" {
			return page("https://api/page2", "bulbasaur", "ivysaur"), nil
		}
		return page("", "venusaur"), nil
	}}
	c := NewPageCache(api, 10, testLogger())
	ctx := context.Background()

	snap := c.Refresh(ctx)
	assert.Equal(t, []string{"bulbasaur", "ivysaur"}, names(snap.Items))
	assert.Equal(t, "https://api/page2", snap.Next)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)

	// The next refresh follows the stored cursor and replaces the list
	// wholesale, no append.
	snap = c.Refresh(ctx)
	assert.Equal(t, []string{"venusaur"}, names(snap.Items))
	assert.Equal(t, "", snap.Next)
	assert.True(t, snap.Exhausted())

	assert.Equal(t, []string{"", "https://api/page2"}, urls)
}

func TestRefresh_FailureKeepsLastGoodState(t *testing.T) {
	fail := false
	api := &fakeLister{fn: func(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error) {
		if fail {
			return nil, errors.New("failed to decode response: missing results")
		}
		return page("https://api/page2", "pikachu"), nil
	}}
	c := NewPageCache(api, 10, testLogger())
	ctx := context.Background()

	c.Refresh(ctx)
	fail = true
	snap := c.Refresh(ctx)

	assert.Equal(t, []string{"pikachu"}, names(snap.Items)) // last good values kept
	assert.Equal(t, "https://api/page2", snap.Next)
	assert.Contains(t, snap.Err, "decode")
	assert.False(t, snap.Loading)

	// A new dispatch clears the error before fetching.
	fail = false
	snap = c.Refresh(ctx)
	assert.Empty(t, snap.Err)
}

func TestRefresh_LatestWins_StaleSuccessDiscarded(t *testing.T) {
	r1Started := make(chan struct{})
	r1Release := make(chan struct{})
	var calls int32

	api := &fakeLister{fn: func(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(r1Started)
			<-r1Release // keep R1 in flight; deliberately ignore cancellation
			return page("https://api/r1-next", "from-r1"), nil
		}
		return page("https://api/r2-next", "from-r2"), nil
	}}
	c := NewPageCache(api, 10, testLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Refresh(ctx)
	}()

	<-r1Started
	snap2 := c.Refresh(ctx)
	assert.Equal(t, []string{"from-r2"}, names(snap2.Items))

	// R1 resolves after R2, successfully, and must still be discarded.
	close(r1Release)
	wg.Wait()

	final := c.Snapshot()
	assert.Equal(t, []string{"from-r2"}, names(final.Items))
	assert.Equal(t, "https://api/r2-next", final.Next)
	assert.Empty(t, final.Err)
}

func TestRefresh_SupersededRequestIsCancelled(t *testing.T) {
	r1Started := make(chan struct{})
	r1Cancelled := make(chan struct{})
	var calls int32

	api := &fakeLister{fn: func(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(r1Started)
			<-ctx.Done()
			close(r1Cancelled)
			return nil, ctx.Err()
		}
		return page("", "from-r2"), nil
	}}
	c := NewPageCache(api, 10, testLogger())
	ctx := context.Background()

	go c.Refresh(ctx)
	<-r1Started

	snap := c.Refresh(ctx)
	<-r1Cancelled // the in-flight request saw the cancellation

	assert.Equal(t, []string{"from-r2"}, names(snap.Items))
	assert.Empty(t, snap.Err) // R1's cancellation error never surfaces

	final := c.Snapshot()
	assert.Equal(t, []string{"from-r2"}, names(final.Items))
	assert.Empty(t, final.Err)
}

func TestSetQuery_PureAndSynchronous(t *testing.T) {
	var calls int32
	api := &fakeLister{fn: func(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error) {
		atomic.AddInt32(&calls, 1)
		return page("", "pikachu", "charizard", "pidgey"), nil
	}}
	c := NewPageCache(api, 10, testLogger())
	c.Refresh(context.Background())
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))

	snap := c.SetQuery("pi")
	assert.Equal(t, []string{"pikachu", "pidgey"}, names(snap.Filtered))

	snap = c.SetQuery("PI")
	assert.Equal(t, []string{"pikachu", "pidgey"}, names(snap.Filtered))

	snap = c.SetQuery("")
	assert.Equal(t, []string{"pikachu", "charizard", "pidgey"}, names(snap.Filtered))

	// The filter never triggers network activity.
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestRefresh_PreservesQueryInFilteredView(t *testing.T) {
	api := &fakeLister{fn: func(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error) {
		return page("", "pikachu", "pidgey", "rattata"), nil
	}}
	c := NewPageCache(api, 10, testLogger())

	c.SetQuery("pi")
	snap := c.Refresh(context.Background())

	assert.Equal(t, "pi", snap.Query)
	assert.Equal(t, []string{"pikachu", "pidgey"}, names(snap.Filtered))
}

func TestReset_GoesBackToFirstPage(t *testing.T) {
	var urls []string
	api := &fakeLister{fn: func(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error) {
		urls = append(urls, pageURL)
		return page("https://api/next", "x"), nil
	}}
	c := NewPageCache(api, 10, testLogger())
	ctx := context.Background()

	c.Refresh(ctx)
	c.Refresh(ctx)
	c.Reset()
	c.Refresh(ctx)

	assert.Equal(t, []string{"", "https://api/next", ""}, urls)
}

func TestOnChange_PublishesLoadingThenResult(t *testing.T) {
	api := &fakeLister{fn: func(ctx context.Context, pageURL string, limit int) (*pokeapi.Page, error) {
		return page("", "pikachu"), nil
	}}
	c := NewPageCache(api, 10, testLogger())

	var snaps []Snapshot
	c.SetOnChange(func(s Snapshot) { snaps = append(snaps, s) })

	c.Refresh(context.Background())

	require.Len(t, snaps, 2)
	assert.True(t, snaps[0].Loading)
	assert.False(t, snaps[1].Loading)
	assert.Equal(t, []string{"pikachu"}, names(snaps[1].Items))
}

// Package pokeapi is a thin client for the public Pokemon catalog REST API.
// It only issues GETs and decodes JSON; paging state lives in the caller.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/pokedex/internal/client/models"
)

// DefaultBaseURL is the public endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Doer abstracts outbound HTTP execution so tests can stub the transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches list pages and item details.
type Client struct {
	baseURL string
	httpc   Doer
}

// New returns a Client for the given base URL ("" selects the public API).
// httpc may be nil, in which case http.DefaultClient is used.
func New(baseURL string, httpc Doer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

// Page is one decoded list page. Next is "" when the listing is exhausted.
type Page struct {
	Next  string
	Items []models.Pokemon
}

type listResponse struct {
	Next    *string          `json:"next"`
	Results []models.Pokemon `json:"results"`
}

// FirstPageURL builds the URL of the first list page.
func (c *Client) FirstPageURL(limit int) string {
	return fmt.Sprintf("%s/pokemon?offset=0&limit=%d", c.baseURL, limit)
}

func (c *Client) get(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListPage fetches one page. pageURL is an opaque cursor from a previous
// page, or "" for the first page (limit items).
func (c *Client) ListPage(ctx context.Context, pageURL string, limit int) (*Page, error) {
	if pageURL == "" {
		pageURL = c.FirstPageURL(limit)
	}

	var lr listResponse
	if err := c.get(ctx, pageURL, &lr); err != nil {
		return nil, err
	}
	// A body without a results sequence is a shape mismatch, not an empty page.
	if lr.Results == nil {
		return nil, fmt.Errorf("failed to decode response: missing results")
	}

	page := &Page{Items: lr.Results}
	if lr.Next != nil {
		page.Next = *lr.Next
	}
	return page, nil
}

// Detail fetches a single item by name. The name is lower-cased the way the
// API expects it.
func (c *Client) Detail(ctx context.Context, name string) (*models.PokemonDetail, error) {
	rawURL := c.baseURL + "/pokemon/" + url.PathEscape(strings.ToLower(strings.TrimSpace(name)))

	var d models.PokemonDetail
	if err := c.get(ctx, rawURL, &d); err != nil {
		return nil, err
	}
	if d.Name == "" {
		return nil, fmt.Errorf("failed to decode response: missing name")
	}
	return &d, nil
}

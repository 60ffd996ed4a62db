package catalog

import (
	"strings"

	"github.com/dmitrijs2005/pokedex/internal/client/models"
)

// Filter returns the items whose name contains query as a case-insensitive
// substring, order preserved. An empty query matches everything. The filter
// is a pure function over in-memory data and never fails.
func Filter(items []models.Pokemon, query string) []models.Pokemon {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)

	out := make([]models.Pokemon, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}

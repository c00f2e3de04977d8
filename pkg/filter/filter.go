// Package filter derives the visible subset of a tag catalog from a
// search query. The derivation is pure: it never mutates the catalog,
// preserves catalog order, and is idempotent with respect to its inputs.
package filter

import (
	"strings"

	"github.com/tagsurf/tagsurf-terminal/pkg/models"
)

// Apply returns the tags whose names contain the query as a
// case-insensitive substring, in catalog order. An empty or
// whitespace-only query returns the catalog unchanged; any other query
// is matched verbatim, surrounding whitespace included. There is no
// ranking and no fuzzy matching.
func Apply(catalog models.Catalog, query string) models.Catalog {
	if strings.TrimSpace(query) == "" {
		return catalog
	}

	query = strings.ToLower(query)

	visible := make(models.Catalog, 0, len(catalog))
	for _, tag := range catalog {
		if strings.Contains(strings.ToLower(tag.Name), query) {
			visible = append(visible, tag)
		}
	}
	return visible
}

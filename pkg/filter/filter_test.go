package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tagsurf/tagsurf-terminal/pkg/models"
)

func sampleCatalog() models.Catalog {
	return models.Catalog{
		{Name: "Action", URL: "https://bestsimilar.com/tag/action"},
		{Name: "Drama", URL: "https://bestsimilar.com/tag/drama"},
		{Name: "Dark Comedy", URL: "https://bestsimilar.com/tag/dark-comedy"},
		{Name: "Melodrama", URL: "https://bestsimilar.com/tag/melodrama"},
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		catalog   models.Catalog
		query     string
		wantNames []string
	}{
		{
			name:      "empty query returns catalog unchanged",
			catalog:   sampleCatalog(),
			query:     "",
			wantNames: []string{"Action", "Drama", "Dark Comedy", "Melodrama"},
		},
		{
			name:      "whitespace-only query returns catalog unchanged",
			catalog:   sampleCatalog(),
			query:     "   ",
			wantNames: []string{"Action", "Drama", "Dark Comedy", "Melodrama"},
		},
		{
			name:      "substring match is case-insensitive",
			catalog:   sampleCatalog(),
			query:     "dra",
			wantNames: []string{"Drama", "Melodrama"},
		},
		{
			name:      "uppercase query matches lowercase names",
			catalog:   sampleCatalog(),
			query:     "DARK",
			wantNames: []string{"Dark Comedy"},
		},
		{
			name:      "surrounding whitespace is part of the match",
			catalog:   sampleCatalog(),
			query:     "  drama  ",
			wantNames: []string{},
		},
		{
			name:      "interior whitespace matches multi-word names",
			catalog:   sampleCatalog(),
			query:     "k co",
			wantNames: []string{"Dark Comedy"},
		},
		{
			name:      "no matches yields empty set",
			catalog:   sampleCatalog(),
			query:     "zzz",
			wantNames: []string{},
		},
		{
			name:      "empty catalog yields empty set regardless of query",
			catalog:   models.Catalog{},
			query:     "dra",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.catalog, tt.query)

			names := make([]string, 0, len(got))
			for _, tag := range got {
				names = append(names, tag.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestApplyMatchesContainQueryVerbatim(t *testing.T) {
	catalog := sampleCatalog()

	for _, query := range []string{"dra", "DARK", "  drama  ", "k co"} {
		for _, tag := range Apply(catalog, query) {
			assert.Contains(t, strings.ToLower(tag.Name), strings.ToLower(query),
				"query %q", query)
		}
	}
}

func TestApplyPreservesCatalogOrder(t *testing.T) {
	catalog := models.Catalog{
		{Name: "Zebra Drama"},
		{Name: "Drama"},
		{Name: "Another Drama"},
	}

	got := Apply(catalog, "drama")

	assert.Equal(t, models.Catalog{
		{Name: "Zebra Drama"},
		{Name: "Drama"},
		{Name: "Another Drama"},
	}, got)
}

func TestApplyIsIdempotent(t *testing.T) {
	catalog := sampleCatalog()

	first := Apply(catalog, "dra")
	second := Apply(catalog, "dra")

	assert.Equal(t, first, second)
}

func TestApplyDoesNotMutateCatalog(t *testing.T) {
	catalog := sampleCatalog()

	Apply(catalog, "dra")

	assert.Equal(t, sampleCatalog(), catalog)
}

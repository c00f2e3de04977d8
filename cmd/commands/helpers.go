package commands

import (
	"context"

	"github.com/tagsurf/tagsurf-terminal/pkg/catalog"
	"github.com/tagsurf/tagsurf-terminal/pkg/models"
	"github.com/tagsurf/tagsurf-terminal/pkg/settings"
)

// maxNameWidth caps the NAME column so long tag names don't push the
// PATH column past the table rule.
const maxNameWidth = 40

// TagItem is the output shape shared by the catalog commands.
type TagItem struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Path string `json:"path" yaml:"path"`
}

// loadCatalog reads settings, builds a catalog client from them, and
// fetches the catalog.
func loadCatalog(ctx context.Context) (models.Catalog, *catalog.Client, error) {
	cfg, err := settings.Load()
	if err != nil {
		return nil, nil, err
	}

	client := catalog.NewClient(
		catalog.WithOrigin(cfg.Catalog.Origin),
		catalog.WithResourceURL(cfg.Catalog.ResourceURL),
		catalog.WithTimeout(cfg.Catalog.Timeout()),
	)

	tags, err := client.Fetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	return tags, client, nil
}

// tagItems converts catalog entries to the shared output shape.
func tagItems(tags models.Catalog, origin string) []TagItem {
	items := make([]TagItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, TagItem{
			Name: tag.Name,
			URL:  tag.URL,
			Path: catalog.PathFor(tag.URL, origin),
		})
	}
	return items
}

package models

// Tag represents a single entry in the remote tag catalog.
// Name is the display label shown to the user; URL is the tag's
// canonical location on the catalog origin. Names are not guaranteed
// unique by the source data, so identity is positional within a catalog.
type Tag struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Catalog is an ordered sequence of tags, replaced wholesale on each
// successful load. It is never mutated in place.
type Catalog []Tag

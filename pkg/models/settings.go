package models

import "time"

// Settings represents the application configuration
type Settings struct {
	Catalog CatalogSettings `yaml:"catalog"`
	UI      UISettings      `yaml:"ui"`
}

// CatalogSettings controls where the tag catalog is fetched from
type CatalogSettings struct {
	Origin         string `yaml:"origin"`
	ResourceURL    string `yaml:"resource_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the catalog request timeout as a duration.
func (c CatalogSettings) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// UISettings controls UI preferences
type UISettings struct {
	Theme string `yaml:"theme"` // "default" or "alternate"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Catalog: CatalogSettings{
			Origin:         "https://bestsimilar.com",
			ResourceURL:    "https://bestsimilar.com/taglist.json",
			TimeoutSeconds: 15,
		},
		UI: UISettings{
			Theme: "default",
		},
	}
}

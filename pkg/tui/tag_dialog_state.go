package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"

	"github.com/tagsurf/tagsurf-terminal/pkg/catalog"
	"github.com/tagsurf/tagsurf-terminal/pkg/models"
)

// TagDialog is the modal component for browsing the tag catalog. While
// open it owns the catalog, the search query, and the visible subset
// derived from the two; selecting a tag emits a TagSelectedMsg to the
// host view and closes the dialog.
type TagDialog struct {
	// Active reports whether the dialog is open.
	Active bool

	// Loading is true only while the latest catalog load is in flight.
	Loading bool

	catalog models.Catalog
	visible models.Catalog
	cursor  int

	// loadSeq is a monotonically increasing load-request token. Only the
	// response matching the latest issued token is applied; responses to
	// superseded requests are discarded.
	loadSeq int

	searchInput textinput.Model
	loadSpinner spinner.Model

	client *catalog.Client
	logger zerolog.Logger
	styles *Styles

	width  int
	height int
}

// NewTagDialog creates a tag dialog backed by the given catalog client.
func NewTagDialog(client *catalog.Client, logger zerolog.Logger, styles *Styles) *TagDialog {
	ti := textinput.New()
	ti.Placeholder = "Search tags..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return &TagDialog{
		searchInput: ti,
		loadSpinner: sp,
		client:      client,
		logger:      logger,
		styles:      styles,
	}
}

// SetSize updates the dialog dimensions.
func (d *TagDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.searchInput.Width = dialogContentWidth(width) - 4
}

// Query returns the current search query.
func (d *TagDialog) Query() string {
	return d.searchInput.Value()
}

// Visible returns the currently visible subset of the catalog.
func (d *TagDialog) Visible() models.Catalog {
	return d.visible
}

// Catalog returns the loaded catalog.
func (d *TagDialog) Catalog() models.Catalog {
	return d.catalog
}

// dialogContentWidth returns the usable inner width for a given screen
// width, clamped so the dialog stays readable on narrow terminals.
func dialogContentWidth(screenWidth int) int {
	w := screenWidth - 8
	if w > 76 {
		w = 76
	}
	if w < 24 {
		w = 24
	}
	return w
}

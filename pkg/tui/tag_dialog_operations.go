package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tagsurf/tagsurf-terminal/pkg/catalog"
	"github.com/tagsurf/tagsurf-terminal/pkg/filter"
)

// Open opens the dialog and starts a fresh catalog load. Reopening
// always re-fetches; a load still in flight from a previous open is
// superseded by the new request token.
func (d *TagDialog) Open() tea.Cmd {
	d.Active = true
	d.Loading = true
	d.catalog = nil
	d.visible = nil
	d.cursor = 0
	d.searchInput.SetValue("")
	d.searchInput.Focus()

	d.loadSeq++
	return tea.Batch(
		d.loadCmd(d.loadSeq),
		d.loadSpinner.Tick,
		textinput.Blink,
	)
}

// Close closes the dialog and resets the query and loading flag to
// their defaults. The catalog is left as-is; the next open re-fetches.
func (d *TagDialog) Close() {
	d.Active = false
	d.Loading = false
	d.cursor = 0
	d.searchInput.SetValue("")
	d.searchInput.Blur()
}

// loadCmd fetches the catalog asynchronously, tagging the result with
// the request token so stale responses can be recognized.
func (d *TagDialog) loadCmd(seq int) tea.Cmd {
	client := d.client
	return func() tea.Msg {
		tags, err := client.Fetch(context.Background())
		if err != nil {
			return tagsLoadFailedMsg{seq: seq, err: err}
		}
		return tagsLoadedMsg{seq: seq, tags: tags}
	}
}

// HandleInput processes keyboard input while the dialog is open.
func (d *TagDialog) HandleInput(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if !d.Active {
		return false, nil
	}

	switch msg.String() {
	case "esc":
		d.Close()
		return true, nil

	case "enter":
		return true, d.selectCurrent()

	case "left":
		if d.cursor > 0 {
			d.cursor--
		}
		return true, nil

	case "right":
		if d.cursor < len(d.visible)-1 {
			d.cursor++
		}
		return true, nil

	case "home":
		d.cursor = 0
		return true, nil

	case "end":
		if len(d.visible) > 0 {
			d.cursor = len(d.visible) - 1
		}
		return true, nil
	}

	var inputCmd tea.Cmd
	d.searchInput, inputCmd = d.searchInput.Update(msg)
	d.applyFilter()
	return true, inputCmd
}

// HandleMessage processes load and spinner messages. Messages for the
// dialog are consumed even after it closes, so an in-flight load that
// resolves late still settles the catalog state.
func (d *TagDialog) HandleMessage(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case tagsLoadedMsg:
		if msg.seq != d.loadSeq {
			// Response to a superseded request; discard.
			return true, nil
		}
		d.Loading = false
		d.catalog = msg.tags
		d.applyFilter()
		return true, nil

	case tagsLoadFailedMsg:
		if msg.seq != d.loadSeq {
			return true, nil
		}
		d.Loading = false
		d.catalog = nil
		d.visible = nil
		d.cursor = 0
		d.logger.Error().Err(msg.err).Msg("tag catalog load failed")
		return true, nil

	case spinner.TickMsg:
		if d.Active && d.Loading {
			var spinCmd tea.Cmd
			d.loadSpinner, spinCmd = d.loadSpinner.Update(msg)
			return true, spinCmd
		}
	}

	return false, nil
}

// applyFilter recomputes the visible subset from the catalog and the
// current query, clamping the cursor into the new range.
func (d *TagDialog) applyFilter() {
	d.visible = filter.Apply(d.catalog, d.searchInput.Value())
	if d.cursor >= len(d.visible) {
		d.cursor = len(d.visible) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

// selectCurrent dispatches the tag under the cursor to the host view.
// Selection cannot fail: URLs from foreign origins pass through as-is.
func (d *TagDialog) selectCurrent() tea.Cmd {
	if d.cursor >= len(d.visible) {
		return nil
	}

	tag := d.visible[d.cursor]
	path := catalog.PathFor(tag.URL, d.client.Origin())
	name := tag.Name
	d.Close()

	return func() tea.Msg {
		return TagSelectedMsg{Path: path, Name: name}
	}
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBrowser() *BrowserModel {
	d := newTestDialog()
	m := NewBrowserModel(d, d.styles)
	m.SetSize(80, 24)
	return m
}

func TestBrowserOpensDialog(t *testing.T) {
	m := newTestBrowser()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})

	assert.True(t, m.dialog.Active)
	assert.NotNil(t, cmd)
}

func TestBrowserConsumesSelection(t *testing.T) {
	m := newTestBrowser()

	_, cmd := m.Update(TagSelectedMsg{Path: "/tag/action", Name: "Action"})

	path, name := m.Selected()
	assert.Equal(t, "/tag/action", path)
	assert.Equal(t, "Action", name)

	// A status message is emitted for the status bar.
	require.NotNil(t, cmd)
	status, ok := cmd().(StatusMsg)
	require.True(t, ok)
	assert.Contains(t, string(status), "Action")
}

func TestBrowserRoutesKeysToOpenDialog(t *testing.T) {
	m := newTestBrowser()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	m.dialog.HandleMessage(tagsLoadedMsg{seq: m.dialog.loadSeq, tags: testCatalog()})

	// "q" is typed into the search input instead of quitting.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, m.dialog.Active)
	assert.Equal(t, "q", m.dialog.Query())
	_ = cmd
}

func TestBrowserViewShowsSelection(t *testing.T) {
	m := newTestBrowser()

	assert.Contains(t, m.View(), "No tag selected")

	m.Update(TagSelectedMsg{Path: "/tag/drama", Name: "Drama"})
	view := m.View()
	assert.Contains(t, view, "Drama")
	assert.Contains(t, view, "/tag/drama")
}

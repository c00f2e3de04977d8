package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// BrowserModel is the host view. It owns the tag dialog, consumes the
// selection it emits, and shows the most recently selected tag.
type BrowserModel struct {
	dialog *TagDialog
	styles *Styles

	selectedPath string
	selectedName string

	width  int
	height int
}

// NewBrowserModel creates the host view around a tag dialog.
func NewBrowserModel(dialog *TagDialog, styles *Styles) *BrowserModel {
	return &BrowserModel{
		dialog: dialog,
		styles: styles,
	}
}

// SetSize updates the view dimensions.
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.dialog.SetSize(width, height)
}

// Selected returns the path and name of the last selected tag.
func (m *BrowserModel) Selected() (path, name string) {
	return m.selectedPath, m.selectedName
}

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Dialog messages (loads, spinner ticks) are handled regardless of
	// open state so late responses still settle.
	if handled, cmd := m.dialog.HandleMessage(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case TagSelectedMsg:
		m.selectedPath = msg.Path
		m.selectedName = msg.Name
		return m, func() tea.Msg {
			return StatusMsg(fmt.Sprintf("Selected %s → %s", msg.Name, msg.Path))
		}

	case tea.KeyMsg:
		if m.dialog.Active {
			handled, cmd := m.dialog.HandleInput(msg)
			if handled {
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "t", "enter":
			return m, m.dialog.Open()

		case "c":
			if m.selectedPath != "" {
				if err := clipboard.WriteAll(m.selectedPath); err != nil {
					return m, func() tea.Msg {
						return StatusMsg("Failed to copy to clipboard")
					}
				}
				return m, func() tea.Msg {
					return StatusMsg("Copied " + m.selectedPath)
				}
			}

		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *BrowserModel) View() string {
	if m.dialog.Active {
		return m.overlayDialog()
	}

	var content strings.Builder
	content.WriteString(m.styles.Title.Render("TAGSURF"))
	content.WriteString("\n\n")

	if m.selectedName == "" {
		content.WriteString(m.styles.Muted.Render("No tag selected."))
	} else {
		content.WriteString("Selected tag: ")
		content.WriteString(m.styles.Accent.Render(m.selectedName))
		content.WriteString("\n")
		content.WriteString("Path: ")
		content.WriteString(m.selectedPath)
	}
	content.WriteString("\n\n")

	help := "t browse tags · c copy path · q quit"
	if m.width > 0 {
		help = wordwrap.String(help, m.width-2)
	}
	content.WriteString(m.styles.Help.Render(help))

	return lipgloss.NewStyle().Padding(1, 2).Render(content.String())
}

// overlayDialog centers the dialog on the screen.
func (m *BrowserModel) overlayDialog() string {
	dialog := m.dialog.View()
	if m.width == 0 || m.height == 0 {
		return dialog
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tagsurf/tagsurf-terminal/internal/logging"
	"github.com/tagsurf/tagsurf-terminal/pkg/catalog"
	"github.com/tagsurf/tagsurf-terminal/pkg/models"
	"github.com/tagsurf/tagsurf-terminal/pkg/theme"
)

// App is the root model. It wires the catalog client, theme styles, and
// diagnostic logger into the browser view and handles global concerns:
// window size, quitting, and the status bar.
type App struct {
	browser   *BrowserModel
	styles    *Styles
	logCloser io.Closer
	width     int
	height    int
	statusMsg string
}

// NewApp builds the application from settings.
func NewApp(s *models.Settings) (*App, error) {
	profile, err := theme.Lookup(s.UI.Theme)
	if err != nil {
		return nil, err
	}
	styles := NewStyles(profile)

	logger, closer := logging.NewTUILogger()

	client := catalog.NewClient(
		catalog.WithOrigin(s.Catalog.Origin),
		catalog.WithResourceURL(s.Catalog.ResourceURL),
		catalog.WithTimeout(s.Catalog.Timeout()),
	)

	dialog := NewTagDialog(client, logger, styles)
	return &App{
		browser:   NewBrowserModel(dialog, styles),
		styles:    styles,
		logCloser: closer,
	}, nil
}

func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	var cmd tea.Cmd
	m, cmd := a.browser.Update(msg)
	if b, ok := m.(*BrowserModel); ok {
		a.browser = b
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.browser.View()

	// Add status bar if there's a message
	if a.statusMsg != "" && !a.browser.dialog.Active {
		statusBar := a.styles.StatusBar.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// CloseLog releases the diagnostic log sink. Call it once the program
// loop has exited, whichever key ended it.
func (a *App) CloseLog() {
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

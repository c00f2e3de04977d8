package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tagsurf/tagsurf-terminal/pkg/theme"
)

// Styles holds the lipgloss styles derived from a theme profile. The
// profile is resolved once at startup; styles are not rebuilt afterwards.
type Styles struct {
	profile theme.Profile

	Title     lipgloss.Style
	Dialog    lipgloss.Style
	SearchBox lipgloss.Style
	Chip      lipgloss.Style
	ChipFocus lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Spinner   lipgloss.Style
	Danger    lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set for a theme profile.
func NewStyles(p theme.Profile) *Styles {
	border := lipgloss.NormalBorder()
	if p.Radius > 0 {
		border = lipgloss.RoundedBorder()
	}

	return &Styles{
		profile: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.SidebarPrimaryForeground.Color()).
			Background(p.SidebarPrimary.Color()).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.Ring.Color()).
			Padding(1, 2),

		SearchBox: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.Input.Color()).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Background(p.Secondary.Color()).
			Foreground(p.Foreground.Color()).
			Padding(0, 1),

		ChipFocus: lipgloss.NewStyle().
			Background(p.Primary.Color()).
			Foreground(p.Background.Color()).
			Bold(true).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(p.SidebarForeground.Color()).
			Faint(true),

		Accent: lipgloss.NewStyle().
			Background(p.Accent.Color()).
			Foreground(p.Foreground.Color()).
			Padding(0, 1),

		Spinner: lipgloss.NewStyle().
			Foreground(p.Primary.Color()),

		Danger: lipgloss.NewStyle().
			Foreground(p.Destructive.Color()).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(p.SidebarAccent.Color()).
			Foreground(p.SidebarAccentForeground.Color()).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(p.SidebarForeground.Color()),
	}
}

// Profile returns the profile the styles were built from.
func (s *Styles) Profile() theme.Profile {
	return s.profile
}

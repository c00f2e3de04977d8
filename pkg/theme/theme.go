// Package theme defines the design tokens consumed by the presentation
// layer. A profile is an immutable set of named HSL color tokens plus a
// corner radius, loaded once at startup and injected into the TUI style
// set; it is never mutated at runtime.
package theme

import "fmt"

// Profile names selectable from settings.
const (
	ProfileDefault   = "default"
	ProfileAlternate = "alternate"
)

// Profile is a named set of design tokens.
type Profile struct {
	Name string

	Background HSL
	Foreground HSL
	Card       HSL
	Popover    HSL
	Primary    HSL
	Secondary  HSL
	Muted      HSL
	Accent     HSL
	// Destructive is the only token that differs between the default and
	// alternate profiles (the alternate uses a darker lightness).
	Destructive HSL
	Border      HSL
	Input       HSL
	Ring        HSL

	Sidebar                  HSL
	SidebarForeground        HSL
	SidebarPrimary           HSL
	SidebarPrimaryForeground HSL
	SidebarAccent            HSL
	SidebarAccentForeground  HSL
	SidebarBorder            HSL
	SidebarRing              HSL

	// Radius selects the border shape: a positive radius renders rounded
	// borders, zero renders square ones.
	Radius float64
}

// Default returns the default token profile.
func Default() Profile {
	p := base()
	p.Name = ProfileDefault
	p.Destructive = HSL{0, 0.842, 0.602}
	return p
}

// Alternate returns the alternate token profile. It is defined
// identically to the default except for the destructive lightness.
func Alternate() Profile {
	p := base()
	p.Name = ProfileAlternate
	p.Destructive = HSL{0, 0.842, 0.306}
	return p
}

// Lookup resolves a profile by name.
func Lookup(name string) (Profile, error) {
	switch name {
	case "", ProfileDefault:
		return Default(), nil
	case ProfileAlternate:
		return Alternate(), nil
	default:
		return Profile{}, fmt.Errorf("unknown theme profile: %q", name)
	}
}

// Names returns the selectable profile names.
func Names() []string {
	return []string{ProfileDefault, ProfileAlternate}
}

func base() Profile {
	return Profile{
		Background: HSL{0, 0, 1.0},
		Foreground: HSL{240, 0.10, 0.04},
		Card:       HSL{0, 0, 1.0},
		Popover:    HSL{0, 0, 1.0},
		Primary:    HSL{240, 0.059, 0.10},
		Secondary:  HSL{240, 0.048, 0.959},
		Muted:      HSL{240, 0.048, 0.959},
		Accent:     HSL{240, 0.048, 0.959},
		Border:     HSL{240, 0.059, 0.90},
		Input:      HSL{240, 0.059, 0.90},
		Ring:       HSL{240, 0.10, 0.04},

		Sidebar:                  HSL{0, 0, 0.985},
		SidebarForeground:        HSL{240, 0.053, 0.26},
		SidebarPrimary:           HSL{240, 0.059, 0.10},
		SidebarPrimaryForeground: HSL{0, 0, 0.98},
		SidebarAccent:            HSL{240, 0.048, 0.959},
		SidebarAccentForeground:  HSL{240, 0.059, 0.10},
		SidebarBorder:            HSL{220, 0.13, 0.91},
		SidebarRing:              HSL{217.2, 0.912, 0.598},

		Radius: 0.5,
	}
}

package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL is a color token expressed as a hue/saturation/lightness triple.
// Hue is in degrees [0, 360); saturation and lightness are in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

// Hex returns the token as a #rrggbb string.
func (c HSL) Hex() string {
	return colorful.Hsl(c.H, c.S, c.L).Clamped().Hex()
}

// Color returns the token as a lipgloss terminal color.
func (c HSL) Color() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

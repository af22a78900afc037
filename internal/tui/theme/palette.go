// Package theme provides color themes for the TUI.
package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg        lipgloss.Color
	Surface   lipgloss.Color
	Selection lipgloss.Color
	Fg        lipgloss.Color
	FgMuted   lipgloss.Color
	Accent    lipgloss.Color
	AccentAlt lipgloss.Color
	Error     lipgloss.Color

	CardBorder lipgloss.Color
	ErrorBg    lipgloss.Color

	TextOnAccent lipgloss.Color
	TextOnError  lipgloss.Color

	IsLight bool
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	isLight := isLightTheme(t.Bg)
	borderHex := blendColors(t.FgMuted, t.Bg, 0.45)
	errorBgHex := blendColors(t.Error, t.Bg, 0.82)
	if isLight {
		errorBgHex = blendColors(t.Error, t.Bg, 0.88)
	}

	return &Palette{
		Bg:        lipgloss.Color(t.Bg),
		Surface:   lipgloss.Color(t.BgHighlight),
		Selection: lipgloss.Color(t.BgSelection),
		Fg:        lipgloss.Color(t.Fg),
		FgMuted:   lipgloss.Color(t.FgMuted),
		Accent:    lipgloss.Color(t.Accent),
		AccentAlt: lipgloss.Color(t.AccentAlt),
		Error:     lipgloss.Color(t.Error),

		CardBorder: lipgloss.Color(borderHex),
		ErrorBg:    lipgloss.Color(errorBgHex),

		TextOnAccent: lipgloss.Color(chooseTextColor(t.Accent, lightest(t), darkest(t))),
		TextOnError:  lipgloss.Color(chooseTextColor(errorBgHex, lightest(t), darkest(t))),

		IsLight: isLight,
	}
}

// lightest and darkest pick the theme's extreme text candidates.
func lightest(t *Theme) string {
	if isLightTheme(t.Bg) {
		return t.Bg
	}
	return t.Fg
}

func darkest(t *Theme) string {
	if isLightTheme(t.Bg) {
		return t.Fg
	}
	return t.Bg
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// parseHex parses a 2-character hex string into an integer.
func parseHex(s string, v *int) {
	var val int
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	*v = val
}

// formatHexColor formats RGB values as a hex color string.
func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	result := make([]byte, 7)
	result[0] = '#'
	result[1] = hex[r>>4]
	result[2] = hex[r&0xf]
	result[3] = hex[g>>4]
	result[4] = hex[g&0xf]
	result[5] = hex[b>>4]
	result[6] = hex[b&0xf]
	return string(result)
}

func chooseTextColor(bg, lightText, darkText string) string {
	lightContrast := contrastRatio(bg, lightText)
	darkContrast := contrastRatio(bg, darkText)
	if lightContrast >= darkContrast {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	if len(hex) != 7 || hex[0] != '#' {
		return 0
	}
	var r, g, b int
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func blendColors(a, b string, ratio float64) string {
	if len(a) != 7 || a[0] != '#' || len(b) != 7 || b[0] != '#' {
		return a
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	var ar, ag, ab int
	var br, bg, bb int
	parseHex(a[1:3], &ar)
	parseHex(a[3:5], &ag)
	parseHex(a[5:7], &ab)
	parseHex(b[1:3], &br)
	parseHex(b[3:5], &bg)
	parseHex(b[5:7], &bb)

	r := int(float64(ar)*(1-ratio) + float64(br)*ratio)
	g := int(float64(ag)*(1-ratio) + float64(bg)*ratio)
	bv := int(float64(ab)*(1-ratio) + float64(bb)*ratio)

	return formatHexColor(r, g, bv)
}

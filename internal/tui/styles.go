// Package tui provides the terminal user interface for edulearn.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/edulearn/internal/tui/theme"
	"github.com/javiermolinar/edulearn/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg         lipgloss.Color
	colorSurface    lipgloss.Color
	colorFg         lipgloss.Color
	colorFgMuted    lipgloss.Color
	colorAccent     lipgloss.Color
	colorAccentAlt  lipgloss.Color
	colorErrorBg    lipgloss.Color
	colorCardBorder lipgloss.Color

	colorTextOnAccent lipgloss.Color
	colorTextOnError  lipgloss.Color

	// Header
	HeaderBarStyle lipgloss.Style
	BrandStyle     lipgloss.Style
	NavStyle       lipgloss.Style

	// Main region
	HeadingStyle lipgloss.Style
	SpinnerStyle lipgloss.Style
	LoadingStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	EmptyStyle   lipgloss.Style

	// Course card
	CardStyle            lipgloss.Style
	CardTitleStyle       lipgloss.Style
	CardDescriptionStyle lipgloss.Style
	CardInstructorStyle  lipgloss.Style
	CardButtonStyle      lipgloss.Style

	// Footer
	FooterBarStyle lipgloss.Style
	CopyrightStyle lipgloss.Style
	StatusStyle    lipgloss.Style
	HelpStyle      lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorSurface = palette.Surface
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorAccentAlt = palette.AccentAlt
	s.colorErrorBg = palette.ErrorBg
	s.colorCardBorder = palette.CardBorder
	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnError = palette.TextOnError

	base := lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.HeaderBarStyle = base.
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(s.colorCardBorder).
		BorderBackground(s.colorBg)

	s.BrandStyle = base.
		Bold(true).
		Foreground(s.colorAccent)

	s.NavStyle = base.
		Foreground(s.colorFgMuted)

	s.HeadingStyle = base.
		Bold(true).
		Foreground(s.colorAccentAlt)

	s.SpinnerStyle = base.
		Foreground(s.colorAccent)

	s.LoadingStyle = base.
		Foreground(s.colorFgMuted)

	// Error banner
	s.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorTextOnError).
		Background(s.colorErrorBg).
		Padding(1, 2)

	s.EmptyStyle = base.
		Italic(true).
		Foreground(s.colorFgMuted)

	card := lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorSurface)

	s.CardStyle = card.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorCardBorder).
		BorderBackground(s.colorBg).
		Padding(0, 1)

	s.CardTitleStyle = card.
		Bold(true)

	s.CardDescriptionStyle = card.
		Foreground(s.colorFgMuted)

	s.CardInstructorStyle = card.
		Foreground(s.colorAccentAlt)

	s.CardButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent)

	s.FooterBarStyle = base.
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(s.colorCardBorder).
		BorderBackground(s.colorBg)

	s.CopyrightStyle = base.
		Foreground(s.colorFgMuted)

	s.StatusStyle = base.
		Foreground(s.colorAccent)

	s.HelpStyle = base.
		Foreground(s.colorFgMuted)

	s.AppStyle = base

	return s
}

// CardStyles returns the styles used by the course card renderer.
func (s *Styles) CardStyles() view.CardStyles {
	return view.CardStyles{
		Card:        s.CardStyle,
		Title:       s.CardTitleStyle,
		Description: s.CardDescriptionStyle,
		Instructor:  s.CardInstructorStyle,
		Button:      s.CardButtonStyle,
	}
}

// MainStyles returns the styles used by the main region renderer.
func (s *Styles) MainStyles() view.MainStyles {
	return view.MainStyles{
		Loading: s.LoadingStyle,
		Error:   s.ErrorStyle,
		Empty:   s.EmptyStyle,
		Heading: s.HeadingStyle,
		Bg:      s.colorBg,
	}
}

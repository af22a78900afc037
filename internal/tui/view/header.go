package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Brand is the site name shown in the header and footer.
const Brand = "EduLearn Platform"

// NavItems are the static header links. They are labels only.
var NavItems = []string{"Home", "Courses", "About", "Contact"}

// HeaderViewState holds what the header needs.
type HeaderViewState struct {
	Width int
	Brand lipgloss.Style
	Nav   lipgloss.Style
	Bar   lipgloss.Style
}

// RenderHeader renders the brand on the left and the navigation on the right.
func RenderHeader(state HeaderViewState) string {
	inner := max(state.Width-state.Bar.GetHorizontalFrameSize(), 1)

	brand := state.Brand.Render(ansi.Truncate(Brand, inner, "…"))
	navText := strings.Join(NavItems, "  ")
	room := inner - lipgloss.Width(brand) - 2
	nav := ""
	if room >= lipgloss.Width(navText) {
		nav = state.Nav.Render(navText)
	}

	gap := max(inner-lipgloss.Width(brand)-lipgloss.Width(nav), 0)
	line := brand + strings.Repeat(" ", gap) + nav
	return state.Bar.Width(state.Width - state.Bar.GetHorizontalBorderSize()).Render(line)
}

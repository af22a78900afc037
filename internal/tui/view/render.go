package view

import "github.com/charmbracelet/lipgloss"

// ViewState contains the pre-rendered sections of the screen.
type ViewState struct {
	Width            int
	Height           int
	Header           string
	Main             string
	Footer           string
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return LoadingText
	}

	return lipgloss.JoinVertical(lipgloss.Left, state.Header, state.Main, state.Footer)
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/tui/commands"
	"github.com/javiermolinar/edulearn/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch msg.String() {
	case "q", "ctrl+c":
		m.Deactivate()
		return m, tea.Quit
	case "y":
		return m.copyCatalog()
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	}

	// Scrolling keys (up/down, j/k, pgup/pgdown) are handled by the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// copyCatalog copies the loaded catalog to the clipboard as plain text.
func (m Model) copyCatalog() (tea.Model, tea.Cmd) {
	loaded, ok := m.state.(course.Loaded)
	if !ok || len(loaded.Courses) == 0 {
		return m, commands.ShowStatus("Nothing to copy")
	}
	if err := m.copyText(view.PlainCatalog(loaded.Courses)); err != nil {
		LogError("copy catalog", err)
		return m, commands.ShowStatus(fmt.Sprintf("Copy failed: %v", err))
	}
	return m, commands.ShowStatus("Copied " + view.FormatCount(len(loaded.Courses)))
}

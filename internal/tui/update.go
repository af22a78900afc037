package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/tui/commands"
)

// How long a transient status message stays visible.
const statusTTL = 3 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		if msg.Width != m.width {
			m.cards.Reset()
		}
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.buildLayoutCache(m.width, m.height)
		m.syncViewport()
		return m, nil

	case commands.CoursesLoadedMsg:
		return m.settle(msg.Activation, course.Resolve(msg.Courses, nil), msg.Size), nil

	case commands.FetchFailedMsg:
		if ok, _ := m.life.accepts(msg.Activation); ok {
			LogError("fetch courses", msg.Err)
		}
		return m.settle(msg.Activation, course.Resolve(nil, msg.Err), 0), nil

	case spinner.TickMsg:
		// The spinner stops once the state settles.
		if course.Settled(m.state) {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(statusTTL)
		return m, commands.ClearStatusAfter(statusTTL)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

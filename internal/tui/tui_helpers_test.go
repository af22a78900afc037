package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/edulearn/internal/config"
	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/tui/commands"
)

func useASCII(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}

type stubLister struct {
	courses []course.Course
	err     error
	calls   int
}

func (s *stubLister) ListCourses(ctx context.Context) ([]course.Course, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.courses, s.err
}

func newTestModel(src course.Lister, opts ...ModelOption) Model {
	cfg := config.Default()
	cfg.Catalog.Endpoint = "http://catalog.test/api/courses"
	opts = append([]ModelOption{WithYear(2026)}, opts...)
	return New(src, cfg, opts...)
}

// runCmd executes cmd and any batched commands, returning every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// fetchResult runs cmd and returns the single fetch result it produced.
func fetchResult(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	var found []tea.Msg
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case commands.CoursesLoadedMsg, commands.FetchFailedMsg:
			found = append(found, msg)
		}
	}
	if len(found) != 1 {
		t.Fatalf("expected exactly one fetch result, got %d", len(found))
	}
	return found[0]
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

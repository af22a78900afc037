package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/edulearn/internal/course"
)

const panicNotice = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
// A panic during Update fails the current activation.

type safeModel struct {
	m   Model
	log *slog.Logger
}

func wrapSafe(m Model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "tui.update",
				"msg_type", fmt.Sprintf("%T", msg),
				"state", course.StateName(s.m.state),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)

			s.fault()
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(Model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "tui.view",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			out = panicNotice
		}
	}()
	return s.m.View()
}

// fault moves the view to Failed and releases the in-flight fetch.
func (s *safeModel) fault() {
	s.m.statusMsg = panicNotice
	s.m.state = course.Failed{Message: panicNotice}
	s.m.viewport.SetContent("")
	if s.m.life != nil {
		s.m.life.settle()
	}
}

var _ tea.Model = (*safeModel)(nil)

// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/edulearn/internal/course"
)

// ErrNoSource is reported when the model has no catalog source.
var ErrNoSource = errors.New("no course source configured")

// SizedLister is a course source that also reports the response payload size.
type SizedLister interface {
	Fetch(ctx context.Context) ([]course.Course, int, error)
}

// CoursesLoadedMsg is sent when a catalog fetch succeeds.
type CoursesLoadedMsg struct {
	Activation int
	Courses    []course.Course
	Size       int // Payload bytes, 0 when unknown
}

// FetchFailedMsg is sent when a catalog fetch fails for any reason.
type FetchFailedMsg struct {
	Activation int
	Err        error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// FetchCourses issues one catalog fetch and tags the result with activation.
func FetchCourses(ctx context.Context, src course.Lister, activation int) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return FetchFailedMsg{Activation: activation, Err: ErrNoSource}
		}

		var (
			courses []course.Course
			size    int
			err     error
		)
		if sl, ok := src.(SizedLister); ok {
			courses, size, err = sl.Fetch(ctx)
		} else {
			courses, err = src.ListCourses(ctx)
		}
		if err != nil {
			return FetchFailedMsg{Activation: activation, Err: err}
		}
		return CoursesLoadedMsg{Activation: activation, Courses: courses, Size: size}
	}
}

// ShowStatus returns a command that shows msg in the status line.
func ShowStatus(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter returns a command that clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/logger"
)

// debugLog returns the logger used for TUI events.
func debugLog() *slog.Logger {
	return logger.L().With("component", "tui")
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog().Debug("tui.key_press",
		"key", msg.String(),
		"type", fmt.Sprintf("%d", msg.Type),
	)
}

// LogActivation logs the start of a fetch lifecycle.
func LogActivation(activation int, endpoint string) {
	debugLog().Info("tui.activate",
		"activation", activation,
		"endpoint", endpoint,
	)
}

// LogDeactivation logs teardown of the current activation.
func LogDeactivation(activation int, state course.LoadState) {
	debugLog().Info("tui.deactivate",
		"activation", activation,
		"state", course.StateName(state),
	)
}

// LogStateChange logs a load state transition.
func LogStateChange(activation int, from, to course.LoadState) {
	attrs := []any{
		"activation", activation,
		"from", course.StateName(from),
		"to", course.StateName(to),
	}
	switch s := to.(type) {
	case course.Loaded:
		attrs = append(attrs, "courses", len(s.Courses))
	case course.Failed:
		attrs = append(attrs, "message", s.Message)
	}
	debugLog().Info("tui.state_change", attrs...)
}

// LogIgnoredResult logs a fetch result that arrived for a stale or
// inactive lifecycle.
func LogIgnoredResult(activation, current int, reason string) {
	debugLog().Debug("tui.result_ignored",
		"activation", activation,
		"current", current,
		"reason", reason,
	)
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLog().Error("tui.error",
		"context", context,
		"error", err.Error(),
	)
}

package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/edulearn/internal/course"
)

// Column breakpoints in terminal cells.
const (
	mediumWidth = 72
	wideWidth   = 110
)

// GridOptions controls the catalog grid layout.
type GridOptions struct {
	Width int
	Gap   int // Blank columns between cards and blank lines between rows
	Card  CardOptions
	Cache *CardCache
}

// Columns returns the number of card columns for a region width:
// one when narrow, two when medium, three when wide.
func Columns(width int) int {
	switch {
	case width < mediumWidth:
		return 1
	case width < wideWidth:
		return 2
	default:
		return 3
	}
}

// RenderGrid lays out one card per course, row-major, in input order.
// It performs no sorting or filtering. An empty input renders an empty grid.
func RenderGrid(courses []course.Course, opts GridOptions) string {
	if len(courses) == 0 {
		return ""
	}

	cols := Columns(opts.Width)
	gap := max(opts.Gap, 0)
	cardW := (opts.Width - gap*(cols-1)) / cols
	spacer := strings.Repeat(" ", gap)

	rows := make([]string, 0, (len(courses)+cols-1)/cols)
	for start := 0; start < len(courses); start += cols {
		end := min(start+cols, len(courses))
		rows = append(rows, renderRow(courses[start:end], cardW, spacer, opts))
	}

	rowSep := strings.Repeat("\n", gap/2)
	return strings.Join(rows, "\n"+rowSep)
}

// renderRow renders a row of cards padded to a common height.
func renderRow(courses []course.Course, cardW int, spacer string, opts GridOptions) string {
	cardOpts := opts.Card
	cardOpts.Width = cardW
	cardOpts.MinHeight = 0

	cards := make([]string, len(courses))
	rowH := 0
	for i, c := range courses {
		cards[i] = opts.Cache.Render(c, cardOpts)
		rowH = max(rowH, lipgloss.Height(cards[i]))
	}

	parts := make([]string, 0, len(cards)*2)
	for i, c := range courses {
		if lipgloss.Height(cards[i]) < rowH {
			cardOpts.MinHeight = rowH
			cards[i] = opts.Cache.Render(c, cardOpts)
			cardOpts.MinHeight = 0
		}
		if i > 0 && spacer != "" {
			parts = append(parts, spacer)
		}
		parts = append(parts, cards[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

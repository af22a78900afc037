package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/edulearn/internal/course"
)

// Main region texts.
const (
	LoadingText    = "Loading courses..."
	EmptyText      = "No courses available at the moment."
	CatalogHeading = "Our Popular Courses"

	errorPrefix       = "Error: "
	catalogHeadingGap = 1
)

// MainStyles groups the styles of the main region.
type MainStyles struct {
	Loading lipgloss.Style
	Error   lipgloss.Style
	Empty   lipgloss.Style
	Heading lipgloss.Style
	Bg      lipgloss.Color
}

// MainViewState is everything RenderMain needs. It carries the load state
// by value; the renderer never mutates it.
type MainViewState struct {
	State   course.LoadState
	Width   int
	Height  int
	Offset  int    // First catalog line shown when the grid is taller than Height
	Spinner string // Current spinner frame
	Grid    GridOptions
	Styles  MainStyles
}

// RenderMain selects the main region rendering from the load state:
// a loading indicator, an error message, the empty-state message or the
// course grid. Equal inputs always produce equal output.
func RenderMain(state MainViewState) string {
	w, h := max(state.Width, 1), max(state.Height, 1)
	styles := state.Styles

	switch s := state.State.(type) {
	case course.Failed:
		text := ansi.Wrap(errorPrefix+s.Message, max(w-4, 1), "")
		return PlaceCenter(w, h, styles.Error.Render(text), styles.Bg)
	case course.Loaded:
		if len(s.Courses) == 0 {
			return PlaceCenter(w, h, styles.Empty.Render(EmptyText), styles.Bg)
		}
		grid := state.Grid
		grid.Width = w
		catalog := RenderCatalog(s.Courses, grid, styles.Heading)
		return PadLinesWithBackground(ClipLines(catalog, state.Offset, h), w, h, styles.Bg)
	default:
		text := LoadingText
		if state.Spinner != "" {
			text = state.Spinner + " " + text
		}
		return PlaceCenter(w, h, styles.Loading.Render(text), styles.Bg)
	}
}

// RenderCatalog renders the heading and the grid of a non-empty catalog
// at full height.
func RenderCatalog(courses []course.Course, grid GridOptions, heading lipgloss.Style) string {
	title := heading.Width(max(grid.Width, 1)).Align(lipgloss.Center).Render(CatalogHeading)
	return title + strings.Repeat("\n", catalogHeadingGap+1) + RenderGrid(courses, grid)
}

// ClipLines returns at most height lines of content starting at offset.
// The offset is clamped so the last page is always full when possible.
func ClipLines(content string, offset, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	offset = min(max(offset, 0), max(len(lines)-height, 0))
	end := min(offset+height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}

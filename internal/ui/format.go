package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/tui/view"
)

// Minimum width used when wrapping descriptions.
const minWrapWidth = 20

// PrintOpts configures course printing behavior.
type PrintOpts struct {
	Width   int  // Output width (0 = detect from terminal)
	Verbose bool // Show full descriptions instead of the three-line clamp
	ShowIDs bool // Show course IDs next to titles
}

// CalcWrapWidth returns the description wrap width.
func (o PrintOpts) CalcWrapWidth() int {
	w := o.Width
	if w <= 0 {
		w = termWidth()
	}
	// Descriptions are indented by four columns.
	return max(w-4, minWrapWidth)
}

// PrintCourses prints courses in order, one block per course.
func PrintCourses(w io.Writer, courses []course.Course, opts PrintOpts) {
	wrap := opts.CalcWrapWidth()
	for i, c := range courses {
		if i > 0 {
			fmt.Fprintln(w)
		}
		PrintCourse(w, c, opts, wrap)
	}
}

// PrintCourse prints a single course block.
func PrintCourse(w io.Writer, c course.Course, opts PrintOpts, wrap int) {
	title := formatTitle(c.Title)
	if opts.ShowIDs {
		title += " " + formatMuted("#"+c.ID.String())
	}
	fmt.Fprintf(w, "  %s\n", title)

	var lines []string
	if opts.Verbose {
		if d := strings.Join(strings.Fields(c.Description), " "); d != "" {
			lines = strings.Split(ansi.Wrap(d, wrap, ""), "\n")
		}
	} else {
		lines = view.ClampLines(c.Description, wrap, view.DefaultDescriptionLines)
	}
	for _, line := range lines {
		fmt.Fprintf(w, "    %s\n", formatMuted(strings.TrimRight(line, " ")))
	}

	fmt.Fprintf(w, "    %s\n", formatInstructor("Instructor: "+c.Instructor))
}

// PrintSummary prints the course count line.
func PrintSummary(w io.Writer, n, payloadBytes int) {
	fmt.Fprintf(w, "\n%s\n", formatStats(view.FormatSummary(n, payloadBytes)))
}

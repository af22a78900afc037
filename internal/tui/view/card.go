package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/edulearn/internal/course"
)

const (
	// DefaultDescriptionLines is how many wrapped description lines a card shows.
	DefaultDescriptionLines = 3

	minCardWidth = 12 // Used when no width is given

	instructorPrefix = "Instructor: "
	callToAction     = "View Course"
	ellipsis         = "…"
)

// CardStyles groups the styles used to draw one course card.
type CardStyles struct {
	Card        lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Instructor  lipgloss.Style
	Button      lipgloss.Style
}

// CardOptions controls card geometry.
type CardOptions struct {
	Width            int // Outer width, borders included
	MinHeight        int // Outer height to pad up to (0 = natural height)
	DescriptionLines int
	Styles           CardStyles
}

// RenderCard renders one course as a bordered card: title, clamped
// description, instructor label and an inert "View Course" button.
// Empty fields render as blank text.
func RenderCard(c course.Course, opts CardOptions) string {
	width := opts.Width
	if width <= 0 {
		width = minCardWidth
	}
	styles := opts.Styles
	borderW := styles.Card.GetHorizontalBorderSize()
	inner := max(1, width-styles.Card.GetHorizontalFrameSize())

	descLines := opts.DescriptionLines
	if descLines <= 0 {
		descLines = DefaultDescriptionLines
	}

	title := styles.Title.Width(inner).Render(singleLine(c.Title))

	desc := ClampLines(c.Description, inner, descLines)
	for len(desc) < descLines {
		desc = append(desc, "")
	}
	description := styles.Description.Width(inner).Render(strings.Join(desc, "\n"))

	instructor := styles.Instructor.Width(inner).Render(
		ansi.Truncate(instructorPrefix+singleLine(c.Instructor), inner, ellipsis),
	)

	button := styles.Button.
		Width(inner).
		Align(lipgloss.Center).
		Render(ansi.Truncate(callToAction, inner, ""))

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		description,
		"",
		instructor,
		"",
		button,
	)

	card := styles.Card.Width(width - borderW)
	if opts.MinHeight > 0 {
		card = card.Height(max(0, opts.MinHeight-styles.Card.GetVerticalBorderSize()))
	}
	return card.Render(body)
}

// ClampLines word-wraps text to width and keeps at most maxLines lines,
// ending the last kept line with an ellipsis when text was cut. The input
// string is not modified.
func ClampLines(text string, width, maxLines int) []string {
	text = singleLine(text)
	if text == "" || width <= 0 || maxLines <= 0 {
		return nil
	}

	lines := strings.Split(ansi.Wrap(text, width, ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	if len(lines) <= maxLines {
		return lines
	}

	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if ansi.StringWidth(last)+ansi.StringWidth(ellipsis) > width {
		last = strings.TrimRight(ansi.Truncate(last, width-ansi.StringWidth(ellipsis), ""), " ")
	}
	lines[maxLines-1] = last + ellipsis
	return lines
}

// singleLine collapses runs of whitespace, including newlines, to one space.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Package view renders the catalog screen: header, main region, footer.
package view

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/javiermolinar/edulearn/internal/course"
)

// FormatCount formats a course count as "1 course" or "N courses".
func FormatCount(n int) string {
	if n == 1 {
		return "1 course"
	}
	return humanize.Comma(int64(n)) + " courses"
}

// FormatSummary describes a loaded catalog, including the payload size
// when it is known.
func FormatSummary(n, payloadBytes int) string {
	if payloadBytes <= 0 {
		return FormatCount(n)
	}
	return fmt.Sprintf("%s · %s", FormatCount(n), humanize.Bytes(uint64(payloadBytes)))
}

// PlainCatalog renders courses as plain text, one block per course, in order.
// Descriptions are written in full.
func PlainCatalog(courses []course.Course) string {
	var b strings.Builder
	for i, c := range courses {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", c.Title)
		if d := singleLine(c.Description); d != "" {
			fmt.Fprintf(&b, "%s\n", d)
		}
		fmt.Fprintf(&b, "%s%s\n", instructorPrefix, c.Instructor)
	}
	return b.String()
}

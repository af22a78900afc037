package view

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/edulearn/internal/course"
)

func useASCII(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}

func testCardStyles() CardStyles {
	return CardStyles{
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle(),
		Instructor:  lipgloss.NewStyle(),
		Button:      lipgloss.NewStyle(),
	}
}

func testGrid(width int) GridOptions {
	return GridOptions{
		Width: width,
		Gap:   2,
		Card:  CardOptions{Styles: testCardStyles()},
	}
}

var names = []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"}

func sampleCourses(n int) []course.Course {
	courses := make([]course.Course, n)
	for i := range courses {
		courses[i] = course.Course{
			ID:          course.ID(fmt.Sprint(i + 1)),
			Title:       names[i%len(names)],
			Description: "A short description.",
			Instructor:  "Teacher " + names[i%len(names)],
		}
	}
	return courses
}

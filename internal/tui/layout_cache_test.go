package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/edulearn/internal/tui/view"
)

func TestBuildLayoutCache(t *testing.T) {
	m := Model{styles: NewStyles(testTheme())}

	layout := m.buildLayoutCache(100, 40)
	if layout.HeaderH != 2 || layout.FooterH != 3 {
		t.Fatalf("chrome heights = %d/%d, want 2/3", layout.HeaderH, layout.FooterH)
	}
	if layout.MainH != 35 {
		t.Fatalf("MainH = %d, want 35", layout.MainH)
	}
	if layout.Columns != 2 {
		t.Fatalf("Columns = %d, want 2", layout.Columns)
	}

	tiny := m.buildLayoutCache(20, 3)
	if tiny.MainH != 1 {
		t.Fatalf("MainH = %d, want 1 for tiny terminals", tiny.MainH)
	}
}

func TestLayoutMatchesRenderedChrome(t *testing.T) {
	useASCII(t)

	m := newTestModel(&stubLister{})
	header := view.RenderHeader(m.headerViewState())
	footer := view.RenderFooter(m.footerViewState())

	if got := lipgloss.Height(header); got != m.layout.HeaderH {
		t.Fatalf("header height = %d, layout says %d", got, m.layout.HeaderH)
	}
	if got := lipgloss.Height(footer); got != m.layout.FooterH {
		t.Fatalf("footer height = %d, layout says %d:\n%s", got, m.layout.FooterH, strings.TrimSpace(footer))
	}
}

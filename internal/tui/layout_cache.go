package tui

import "github.com/javiermolinar/edulearn/internal/tui/view"

// Rows of content inside the header and footer bars.
const (
	headerLines = 1
	footerLines = 2
)

// LayoutCache stores layout dimensions derived from the window size.
type LayoutCache struct {
	Width  int
	Height int

	HeaderH int
	FooterH int
	MainH   int

	Columns int
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	headerH := headerLines + styles.HeaderBarStyle.GetVerticalFrameSize()
	footerH := footerLines + styles.FooterBarStyle.GetVerticalFrameSize()

	return LayoutCache{
		Width:   width,
		Height:  height,
		HeaderH: headerH,
		FooterH: footerH,
		MainH:   max(height-headerH-footerH, 1),
		Columns: view.Columns(width),
	}
}

package tui

import (
	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/tui/view"
)

// Help lines shown in the footer.
const (
	helpLoaded = "↑/↓ scroll • y copy • q quit"
	helpIdle   = "q quit"
)

// View renders the catalog screen.
func (m Model) View() string {
	out := view.Render(m.viewState())
	if m.width <= 0 || m.height <= 0 {
		return out
	}
	return view.PadLinesWithBackground(m.styles.AppStyle.Render(out), m.width, m.height, m.styles.colorBg)
}

func (m Model) viewState() view.ViewState {
	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		Header:           view.RenderHeader(m.headerViewState()),
		Main:             view.RenderMain(m.mainViewState(m.layout.MainH)),
		Footer:           view.RenderFooter(m.footerViewState()),
		EmptyPlaceholder: view.LoadingText,
	}
}

func (m Model) headerViewState() view.HeaderViewState {
	return view.HeaderViewState{
		Width: m.width,
		Brand: m.styles.BrandStyle,
		Nav:   m.styles.NavStyle,
		Bar:   m.styles.HeaderBarStyle,
	}
}

func (m Model) footerViewState() view.FooterViewState {
	return view.FooterViewState{
		Width:       m.width,
		Year:        m.year,
		StatusText:  m.statusText(),
		HelpText:    m.helpText(),
		Bar:         m.styles.FooterBarStyle,
		Copyright:   m.styles.CopyrightStyle,
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
	}
}

func (m Model) mainViewState(height int) view.MainViewState {
	return view.MainViewState{
		State:   m.state,
		Width:   m.width,
		Height:  height,
		Offset:  m.viewport.YOffset,
		Spinner: m.spinner.View(),
		Grid:    m.gridOptions(),
		Styles:  m.styles.MainStyles(),
	}
}

func (m Model) gridOptions() view.GridOptions {
	return view.GridOptions{
		Width: m.width,
		Gap:   gridGap,
		Card: view.CardOptions{
			DescriptionLines: view.DefaultDescriptionLines,
			Styles:           m.styles.CardStyles(),
		},
		Cache: m.cards,
	}
}

func (m Model) statusText() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	switch s := m.state.(type) {
	case course.Loaded:
		return view.FormatSummary(len(s.Courses), m.payloadSize)
	case course.Failed:
		return "Load failed"
	default:
		if m.endpoint != "" {
			return "Fetching " + m.endpoint
		}
		return "Fetching courses"
	}
}

func (m Model) helpText() string {
	if s, ok := m.state.(course.Loaded); ok && len(s.Courses) > 0 {
		return helpLoaded
	}
	return helpIdle
}

// syncViewport sizes the viewport to the main region and loads the full
// catalog into it so scroll offsets stay within bounds.
func (m *Model) syncViewport() {
	m.viewport.Width = max(m.width, 1)
	m.viewport.Height = m.layout.MainH

	loaded, ok := m.state.(course.Loaded)
	if !ok || len(loaded.Courses) == 0 {
		m.viewport.SetContent("")
		m.viewport.GotoTop()
		return
	}

	grid := m.gridOptions()
	grid.Width = max(m.width, 1)
	m.viewport.SetContent(view.RenderCatalog(loaded.Courses, grid, m.styles.HeadingStyle))
}

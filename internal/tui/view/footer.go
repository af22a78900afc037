package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the strings and styles needed to render the footer.
type FooterViewState struct {
	Width       int
	Year        int
	StatusText  string
	HelpText    string
	Bar         lipgloss.Style
	Copyright   lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
}

// Copyright returns the footer notice for year.
func Copyright(year int) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", year, Brand)
}

// RenderFooter renders the copyright notice above a status and help line.
func RenderFooter(state FooterViewState) string {
	inner := max(state.Width-state.Bar.GetHorizontalFrameSize(), 1)

	notice := state.Copyright.
		Width(inner).
		Align(lipgloss.Center).
		Render(ansi.Truncate(Copyright(state.Year), inner, ""))

	help := footerLine(inner, state.HelpStyle, state.HelpText)
	helpW := lipgloss.Width(help)
	if state.HelpText == "" {
		helpW = 0
		help = ""
	}
	status := footerLine(max(inner-helpW-1, 0), state.StatusStyle, state.StatusText)
	info := status
	if help != "" {
		info = lipgloss.PlaceHorizontal(inner-helpW, lipgloss.Left, status) + help
	}

	return state.Bar.
		Width(state.Width - state.Bar.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, notice, info))
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	} else {
		content = ""
	}
	return style.Render(content)
}

package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the control column and the tab panel horizontally,
// with the menu bar on top and the help footer and status bar below.
func ComposeLayout(menuBar, controls, panel, footer, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, controls, panel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, footer, statusBar)
}

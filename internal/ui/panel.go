package ui

import "github.com/charmbracelet/lipgloss"

// RenderPanel wraps content in a bordered box with a title row.
// The content is rendered by the caller to keep this package free of
// domain imports beyond what the widgets need.
func RenderPanel(width, height int, title, content string, focused bool) string {
	style := StylePanelBorder
	if focused {
		style = StylePanelActive
	}
	body := StylePanelTitle.Render(title) + "\n" + content
	return style.Width(width - 2).Height(height - 2).MaxHeight(height).Render(body)
}

// Center places text in the middle of a width x height block.
func Center(width, height int, text string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"miner-radar.klederson.com/internal/notify"
)

// RenderToasts stacks notifications newest first.
func RenderToasts(width int, items []notify.Notification) string {
	if len(items) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		n := items[i]
		box, title := StyleToast, StyleValue
		if n.Variant == notify.VariantDestructive {
			box, title = StyleToastDanger, StyleValue.Foreground(ColorDanger)
		}
		body := title.Render(n.Title)
		if n.Description != "" {
			body += "\n" + StyleLabel.Render(n.Description)
		}
		rendered = append(rendered, box.Width(width-2).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

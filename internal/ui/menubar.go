package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"miner-radar.klederson.com/internal/config"
)

// RenderMenuBar renders the top bar: title, tab strip and scan state.
func RenderMenuBar(width int, tabs []string, active int, scanning bool) string {
	title := StyleTitle.Render(fmt.Sprintf("%s v%s", config.AppName, config.AppVersion))

	var strip strings.Builder
	for i, t := range tabs {
		strip.WriteString(" ")
		if i == active {
			strip.WriteString(StyleTabActive.Render(t))
		} else {
			strip.WriteString(StyleTabInactive.Render(t))
		}
	}

	status := StyleStatusIdle.Render("○ IDLE")
	if scanning {
		status = StyleStatusScanning.Render("● SCANNING")
	}

	left := title + "  " + strip.String()
	right := status

	// StyleMenuBar pads one cell on each side.
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return StyleMenuBar.Width(width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}

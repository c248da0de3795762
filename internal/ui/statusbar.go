package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Status is the session summary shown in the bottom bar.
type Status struct {
	Scanning   bool
	Frequency  float64
	Threshold  float64
	Signals    int
	Suspicious int
	LastBatch  time.Time
	Now        time.Time
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	state := StyleStatusIdle.Render("[IDLE]")
	if s.Scanning {
		state = StyleStatusScanning.Render("[SCANNING]")
	}

	last := "no batch yet"
	if !s.LastBatch.IsZero() {
		last = humanize.RelTime(s.LastBatch, s.Now, "ago", "from now")
	}

	info := fmt.Sprintf(" Freq: %s MHz  Threshold: %.0f%%  Signals: %d  Suspicious: %d  Last batch: %s",
		humanize.Ftoa(s.Frequency), s.Threshold, s.Signals, s.Suspicious, last)

	content := state + StyleLabel.Render(info)

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).MaxHeight(1).Render(content + strings.Repeat(" ", gap))
}

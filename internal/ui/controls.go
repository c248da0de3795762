package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"miner-radar.klederson.com/internal/config"
	"miner-radar.klederson.com/internal/spectrum"
)

// Controls is what the scan control column shows.
type Controls struct {
	Scanning      bool
	Frequency     float64
	Threshold     float64
	AlertsEnabled bool

	// FrequencyInput is the rendered text field while the frequency is
	// being typed, empty otherwise.
	FrequencyInput string

	Pending    int
	Spinner    string
	Signals    int
	Suspicious bool
	Trend      []float64
	LatestPeak float64
}

// RenderControls renders the control column body for the given inner width.
func RenderControls(width int, c Controls) string {
	if width < 20 {
		width = 20
	}

	field := func(label, value string) string {
		return StyleLabel.Render(fmt.Sprintf("%-11s", label)) + value
	}

	freq := StyleValue.Render(humanize.Ftoa(c.Frequency) + " MHz")
	if c.FrequencyInput != "" {
		freq = c.FrequencyInput
	}

	alerts := StyleOff.Render("OFF")
	if c.AlertsEnabled {
		alerts = StyleOn.Render("ON")
	}

	meterW := width - 11 - 7
	if meterW < 6 {
		meterW = 6
	}

	lines := []string{
		field("Frequency", freq),
		field("", StyleHelp.Render(fmt.Sprintf("%.0f - %.0f MHz", config.MinFrequency, config.MaxFrequency))),
		field("Threshold", renderMeter(c.Threshold, config.MaxThreshold, meterW)+StyleValue.Render(fmt.Sprintf(" %3.0f%%", c.Threshold))),
		field("Alerts", alerts),
		"",
	}

	switch {
	case c.Pending > 0:
		lines = append(lines, c.Spinner+" "+StyleStatusScanning.Render("Detecting signals..."))
	case c.Scanning:
		lines = append(lines, StyleStatusScanning.Render("● Scanning"))
	default:
		lines = append(lines, StyleStatusIdle.Render("○ Idle"))
	}

	if c.Signals > 0 {
		lines = append(lines, field("Batch", StyleValue.Render(fmt.Sprintf("%d signals", c.Signals))))
	}
	if c.Suspicious {
		lines = append(lines, "", StyleBanner.Width(width-1).Render("Suspicious signals detected. Review the report."))
	}

	if len(c.Trend) > 0 {
		latest := StyleValue.Render(fmt.Sprintf("  latest %.0f%%", c.LatestPeak))
		lines = append(lines, "", StyleLabel.Render("Peak suspicion trend")+latest, renderSparkline(c.Trend, width))
	}

	return strings.Join(lines, "\n")
}

// renderMeter draws value on a 0..limit scale as a bracketed bar.
func renderMeter(value, limit float64, width int) string {
	ratio := value / limit
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	filledPart := lipgloss.NewStyle().Foreground(ColorAccentMid).Render(strings.Repeat("|", filled))
	emptyPart := StyleOff.Render(strings.Repeat("-", width-filled))
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

var sparkChars = []rune{'_', '.', '-', '~', '^'}

// renderSparkline plots suspicion values on a fixed 0..100 scale, one cell
// per value, coloured by spectrum tier. Only the last width values fit.
func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	var sb strings.Builder
	for _, v := range values[start:] {
		idx := int(v / config.SpectrumMaxAmp * float64(len(sparkChars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(spectrum.TierOf(v).Hex()))
		sb.WriteString(style.Render(string(sparkChars[idx])))
	}
	return sb.String()
}

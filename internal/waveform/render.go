package waveform

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorTrace    = lipgloss.Color("#3B82F6")
	colorBaseline = lipgloss.Color("#94A3B8")
	colorCaption  = lipgloss.Color("#00FF41")
	colorHint     = lipgloss.Color("#64748B")

	styleTrace    = lipgloss.NewStyle().Foreground(colorTrace).Bold(true)
	styleBaseline = lipgloss.NewStyle().Foreground(colorBaseline)
	styleCaption  = lipgloss.NewStyle().Foreground(colorCaption)
	styleHint     = lipgloss.NewStyle().Foreground(colorHint).Italic(true)
)

const idleHint = "Start a scan to view the signal"

// Frame describes what the oscilloscope panel should show.
type Frame struct {
	Active       bool
	Elapsed      float64 // Seconds on the animation clock
	FrequencyMHz float64
	Rand         *rand.Rand // Source for the interference term
}

// Render draws the oscilloscope panel as exactly height lines of width
// cells: a caption row followed by the plot.
func Render(width, height int, f Frame) string {
	if width < 4 || height < 3 {
		return ""
	}

	rows := height - 1
	base := newCanvas(width, rows)
	base.plot(Baseline(base.pixelWidth(), base.pixelHeight()))

	trace := newCanvas(width, rows)
	if f.Active && f.Rand != nil {
		trace.plot(Synthesize(f.Elapsed, f.FrequencyMHz, trace.pixelWidth(), trace.pixelHeight(), f.Rand))
	}

	lines := make([]string, 0, height)
	lines = append(lines, caption(width, f.FrequencyMHz))

	hintRow := rows/2 - 1
	for row := 0; row < rows; row++ {
		if !f.Active && row == hintRow {
			lines = append(lines, centered(width, idleHint))
			continue
		}
		lines = append(lines, renderRow(base, trace, row))
	}
	return strings.Join(lines, "\n")
}

func caption(width int, freq float64) string {
	text := fmt.Sprintf("Frequency: %s MHz", strconv.FormatFloat(freq, 'f', -1, 64))
	if len(text) > width {
		text = text[:width]
	}
	return strings.Repeat(" ", width-len(text)) + styleCaption.Render(text)
}

func centered(width int, text string) string {
	if len(text) > width {
		text = text[:width]
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + styleHint.Render(text) + strings.Repeat(" ", width-pad-len(text))
}

// renderRow emits one text row, grouping neighbouring cells that share a
// style so lipgloss only wraps each run once.
func renderRow(base, trace *canvas, row int) string {
	var sb strings.Builder
	var run []rune
	var runStyle *lipgloss.Style

	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle == nil {
			sb.WriteString(string(run))
		} else {
			sb.WriteString(runStyle.Render(string(run)))
		}
		run = run[:0]
	}

	for col := 0; col < base.cols; col++ {
		tm := trace.mask(col, row)
		bm := base.mask(col, row)

		var style *lipgloss.Style
		ch := ' '
		switch {
		case tm != 0:
			style, ch = &styleTrace, brailleRune(tm|bm)
		case bm != 0:
			style, ch = &styleBaseline, brailleRune(bm)
		}

		if style != runStyle {
			flush()
			runStyle = style
		}
		run = append(run, ch)
	}
	flush()
	return sb.String()
}

package spectrum

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"miner-radar.klederson.com/internal/config"
	"miner-radar.klederson.com/internal/signal"
)

// Placeholder is shown over empty axes when the batch has no records.
const Placeholder = "no signals detected"

const (
	titleAmplitude = "Amplitude (dB)"
	titleFrequency = "Frequency (MHz)"
)

// termMargins leave two rows on top for titles and signal labels, room on
// the left for three digit amplitude labels, and one row under the axis for
// frequency labels.
var termMargins = Margins{Top: 2, Right: 3, Bottom: 2, Left: 5}

type kind int

const (
	kindEmpty kind = iota
	kindGrid
	kindAxis
	kindLabel
	kindTitle
	kindPlaceholder
	kindNormal
	kindCaution
	kindHigh
)

var kindStyles = map[kind]lipgloss.Style{
	kindGrid:        lipgloss.NewStyle().Foreground(lipgloss.Color("#334155")),
	kindAxis:        lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
	kindLabel:       lipgloss.NewStyle().Foreground(lipgloss.Color("#cbd5e1")),
	kindTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")).Italic(true),
	kindPlaceholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Italic(true),
	kindNormal:      lipgloss.NewStyle().Foreground(lipgloss.Color(TierNormal.Hex())),
	kindCaution:     lipgloss.NewStyle().Foreground(lipgloss.Color(TierCaution.Hex())).Bold(true),
	kindHigh:        lipgloss.NewStyle().Foreground(lipgloss.Color(TierHigh.Hex())).Bold(true),
}

func tierKind(t Tier) kind {
	switch t {
	case TierHigh:
		return kindHigh
	case TierCaution:
		return kindCaution
	default:
		return kindNormal
	}
}

type cell struct {
	ch   rune
	kind kind
}

type grid struct {
	cols, rows int
	cells      []cell
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range g.cells {
		g.cells[i] = cell{ch: ' '}
	}
	return g
}

func (g *grid) put(col, row int, ch rune, k kind) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = cell{ch: ch, kind: k}
}

func (g *grid) text(col, row int, s string, k kind) {
	for i, ch := range []rune(s) {
		g.put(col+i, row, ch, k)
	}
}

// Render draws the spectrum chart for the given batch as exactly height
// lines of width cells. Tier colours depend only on each record's
// suspicion level.
func Render(width, height int, signals []signal.Signal, base float64) string {
	if width < 24 || height < 8 {
		return ""
	}

	l := NewLayout(base, float64(width), float64(height), termMargins)
	g := newGrid(width, height)

	left := round(l.Left())
	right := round(l.Right())
	top := round(l.Top())
	bottom := round(l.Bottom())

	for _, t := range l.AmplitudeTicks()[1:] {
		row := round(t.Pos)
		for col := left + 2; col <= right; col += 2 {
			g.put(col, row, '·', kindGrid)
		}
	}
	for _, t := range l.FrequencyTicks()[1:] {
		col := round(t.Pos)
		for row := top; row < bottom; row++ {
			g.put(col, row, '┊', kindGrid)
		}
	}

	for col := left; col <= right; col++ {
		g.put(col, bottom, '─', kindAxis)
	}
	for row := top; row < bottom; row++ {
		g.put(left, row, '│', kindAxis)
	}
	g.put(left, bottom, '└', kindAxis)

	for _, t := range l.AmplitudeTicks() {
		label := strconv.FormatFloat(t.Value, 'f', 0, 64)
		g.text(left-1-len(label), round(t.Pos), label, kindLabel)
	}

	// Frequency labels are dropped when they would run into the previous one.
	lastEnd := -1
	for _, t := range l.FrequencyTicks() {
		label := strconv.FormatFloat(t.Value, 'f', 0, 64)
		start := round(t.Pos) - len(label)/2
		if start <= lastEnd {
			continue
		}
		g.text(start, bottom+1, label, kindLabel)
		lastEnd = start + len(label)
	}

	g.text(0, 0, titleAmplitude, kindTitle)
	if len(titleAmplitude)+len(titleFrequency)+2 <= width {
		g.text(width-len(titleFrequency), 0, titleFrequency, kindTitle)
	}

	if len(signals) == 0 {
		g.text((width-len(Placeholder))/2, (top+bottom)/2, Placeholder, kindPlaceholder)
		return g.String()
	}

	for _, s := range signals {
		x := l.X(s.Frequency)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		col := round(x)
		if col <= left || col > right {
			continue
		}
		k := tierKind(TierOf(s.SuspicionLevel))

		amp := math.Max(0, math.Min(config.SpectrumMaxAmp, s.Amplitude))
		peak := round(l.Y(amp))
		for row := peak + 1; row < bottom; row++ {
			g.put(col, row, '█', k)
		}
		g.put(col, peak, '●', k)

		label := strconv.FormatFloat(s.Frequency, 'f', 1, 64)
		g.text(col-len(label)/2, peak-1, label, kindLabel)
	}

	return g.String()
}

func round(v float64) int {
	return int(math.Round(v))
}

// String emits the grid row by row, wrapping each run of same-kind cells in
// a single lipgloss style.
func (g *grid) String() string {
	lines := make([]string, g.rows)
	for row := 0; row < g.rows; row++ {
		var sb strings.Builder
		var run []rune
		runKind := kindEmpty

		flush := func() {
			if len(run) == 0 {
				return
			}
			if st, ok := kindStyles[runKind]; ok {
				sb.WriteString(st.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			if c.kind != runKind {
				flush()
				runKind = c.kind
			}
			run = append(run, c.ch)
		}
		flush()
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

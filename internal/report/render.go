package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

const dateLayout = "2006-01-02 15:04:05"

var headers = []string{"ID", "Frequency (MHz)", "Amplitude", "Pattern", "Detected", "Suspicion", "Status"}

var (
	styleHeader    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Bold(true).Padding(0, 1)
	styleCell      = lipgloss.NewStyle().Padding(0, 1)
	styleBorder    = lipgloss.NewStyle().Foreground(lipgloss.Color("#334155"))
	styleDim       = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	styleStatusHi  = styleCell.Foreground(lipgloss.Color("#ef4444")).Bold(true)
	styleStatusSus = styleCell.Foreground(lipgloss.Color("#f97316"))
	styleStatusOK  = styleCell.Foreground(lipgloss.Color("#64748b"))
)

func statusStyle(s Status) lipgloss.Style {
	switch s {
	case StatusHighlySuspicious:
		return styleStatusHi
	case StatusSuspicious:
		return styleStatusSus
	default:
		return styleStatusOK
	}
}

// MeanText formats the mean suspicion, or "n/a" when undefined.
func (s Summary) MeanText() string {
	if !s.HasMean() {
		return "n/a"
	}
	return strconv.FormatFloat(s.MeanSuspicion, 'f', 1, 64) + "%"
}

func (r Report) rows(relative bool) [][]string {
	rows := make([][]string, 0, len(r.Signals))
	for _, s := range r.Signals {
		detected := s.Timestamp.Format(dateLayout)
		if relative {
			detected = humanize.RelTime(s.Timestamp, r.GeneratedAt, "ago", "from now")
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			strconv.FormatFloat(s.Frequency, 'f', 1, 64),
			strconv.FormatFloat(s.Amplitude, 'f', 1, 64),
			s.Pattern.String(),
			detected,
			strconv.FormatFloat(s.SuspicionLevel, 'f', 0, 64) + "%",
			Classify(s.SuspicionLevel, r.Threshold).String(),
		})
	}
	return rows
}

func (r Report) summaryLines() []string {
	return []string{
		fmt.Sprintf("Total signals detected: %d", r.Summary.Total),
		fmt.Sprintf("Suspicious signals:     %d", r.Summary.Suspicious),
		fmt.Sprintf("Mean suspicion level:   %s", r.Summary.MeanText()),
	}
}

// Render draws the report for the dashboard: a dated header, the signal
// table with coloured status labels, and the summary.
func (r Report) Render(width int) string {
	statuses := make([]Status, len(r.Signals))
	for i, s := range r.Signals {
		statuses[i] = Classify(s.SuspicionLevel, r.Threshold)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(r.rows(true)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == len(headers)-1 && row >= 0 && row < len(statuses):
				return statusStyle(statuses[row])
			default:
				return styleCell
			}
		})
	if width > 0 {
		t = t.Width(width)
	}

	var sb strings.Builder
	sb.WriteString(styleDim.Render("Signal analysis report - " + r.GeneratedAt.Format(dateLayout)))
	sb.WriteString("\n")
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	sb.WriteString(strings.Join(r.summaryLines(), "\n"))
	return sb.String()
}

// WriteText writes an unstyled version of the report, with absolute
// detection times, for export to a file.
func (r Report) WriteText(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(r.rows(false)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	lines := []string{
		"Signal analysis report",
		"Generated:      " + r.GeneratedAt.Format(dateLayout),
		"Base frequency: " + strconv.FormatFloat(r.BaseFrequency, 'f', -1, 64) + " MHz",
		"Threshold:      " + strconv.FormatFloat(r.Threshold, 'f', -1, 64) + "%",
		"",
		t.Render(),
		"",
	}
	lines = append(lines, r.summaryLines()...)

	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

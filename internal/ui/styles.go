package ui

import "github.com/charmbracelet/lipgloss"

// Dashboard palette: slate panels with the scan-green accent.
var (
	ColorAccent      = lipgloss.Color("#00FF41")
	ColorAccentMid   = lipgloss.Color("#00AA22")
	ColorText        = lipgloss.Color("#E2E8F0")
	ColorMuted       = lipgloss.Color("#94A3B8")
	ColorDim         = lipgloss.Color("#475569")
	ColorBarBg       = lipgloss.Color("#0F172A")
	ColorBorder      = lipgloss.Color("#334155")
	ColorBorderFocus = lipgloss.Color("#00AA22")
	ColorDanger      = lipgloss.Color("#EF4444")
	ColorWarning     = lipgloss.Color("#F97316")
	ColorInfo        = lipgloss.Color("#3B82F6")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleTabActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StyleTabInactive = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorMuted).
			Padding(0, 1)

	StyleStatusScanning = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	StyleStatusIdle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleOn = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	StyleOff = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleDisabled = lipgloss.NewStyle().
			Foreground(ColorDim).
			Strikethrough(true)

	StyleBanner = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorDanger).
			Foreground(ColorDanger).
			Padding(0, 1)

	StyleToast = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleToastDanger = StyleToast.
				BorderForeground(ColorDanger)
)

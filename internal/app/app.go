package app

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"miner-radar.klederson.com/internal/config"
	"miner-radar.klederson.com/internal/notify"
	"miner-radar.klederson.com/internal/report"
	"miner-radar.klederson.com/internal/session"
	"miner-radar.klederson.com/internal/signal"
	"miner-radar.klederson.com/internal/spectrum"
	"miner-radar.klederson.com/internal/ui"
	"miner-radar.klederson.com/internal/waveform"
)

const (
	tabWaveform = iota
	tabSpectrum
	tabReport
	tabAlerts
)

var tabNames = []string{"Waveform", "Spectrum", "Report", "Alerts"}

const reportHint = "No report yet. Start a scan to collect signals."

type editField int

const (
	editNone editField = iota
	editFrequency
	editEmail
	editPhone
)

// Config wires a dashboard model.
type Config struct {
	Initial       session.State
	Seed          int64
	FPS           int
	ToastDuration time.Duration
	Logger        *slog.Logger

	// SessionOptions are passed to the session controller after the
	// model's own logger option.
	SessionOptions []session.Option
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	controller *session.Controller
	scheduler  *cmdScheduler
	toasts     *toastStack
	animator   *waveform.Animator
	waveRand   *rand.Rand
	trend      *trendRing
	lastBatch  uuid.UUID
	spinning   bool
}

// AppModel is the root Bubble Tea model for the scanner dashboard.
type AppModel struct {
	width  int
	height int

	tab     int
	editing editField

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	fps    int
	logger *slog.Logger

	shared *shared
}

// New creates the dashboard model. The detection generator and the
// waveform interference term draw from separate sources derived from
// cfg.Seed, so a seed reproduces the same batches whatever is on screen.
func New(cfg Config) AppModel {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = config.TargetFPS
	}
	ttl := cfg.ToastDuration
	if ttl <= 0 {
		ttl = config.ToastDuration
	}

	sched := &cmdScheduler{}
	toasts := newToastStack(sched, ttl, config.MaxToasts)
	gen := signal.NewGenerator(rand.New(rand.NewSource(cfg.Seed)))

	options := append([]session.Option{session.WithLogger(logger)}, cfg.SessionOptions...)
	controller := session.NewController(cfg.Initial, gen, sched, toasts, options...)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorAccent)

	in := textinput.New()
	in.Prompt = "> "

	m := AppModel{
		input:   in,
		spinner: sp,
		help:    help.New(),
		keys:    newKeyMap(),
		fps:     fps,
		logger:  logger,
		shared: &shared{
			controller: controller,
			scheduler:  sched,
			toasts:     toasts,
			animator:   waveform.NewAnimator(nil),
			waveRand:   rand.New(rand.NewSource(cfg.Seed + 1)),
			trend:      newTrendRing(config.TrendCapacity),
		},
	}
	m.refreshKeys()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.syncAnimation()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.editing != editNone {
			m, cmd = m.handleEditKey(msg)
		} else {
			m, cmd = m.handleKey(msg)
		}
		cmds = append(cmds, cmd)

	case FrameMsg:
		if m.shared.animator.Accept(msg.Gen) {
			cmds = append(cmds, m.frameCmd(msg.Gen))
		}

	case runMsg:
		msg.fn()

	case spinner.TickMsg:
		if m.shared.controller.Pending() > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			m.shared.spinning = false
		}

	default:
		if m.editing != editNone {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.settle()...)
	m.refreshKeys()
	return m, tea.Batch(cmds...)
}

// settle brings the derived state in line with the session after any
// message: trend history, animation, spinner and queued callbacks.
func (m AppModel) settle() []tea.Cmd {
	ctrl := m.shared.controller

	if batch := ctrl.State().Batch; !batch.Empty() && batch.ID != m.shared.lastBatch {
		m.shared.lastBatch = batch.ID
		m.shared.trend.Push(signal.PeakSuspicion(batch.Signals))
	}

	cmds := []tea.Cmd{m.syncAnimation()}
	if ctrl.Pending() > 0 && !m.shared.spinning {
		m.shared.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return append(cmds, m.shared.scheduler.Drain())
}

// syncAnimation starts a frame chain when scanning begins and invalidates
// it when scanning ends.
func (m AppModel) syncAnimation() tea.Cmd {
	a := m.shared.animator
	if !m.shared.controller.State().Scanning {
		a.Stop()
		return nil
	}
	if gen, started := a.Start(); started {
		return m.frameCmd(gen)
	}
	return nil
}

func (m AppModel) frameCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(time.Time) tea.Msg {
		return FrameMsg{Gen: gen}
	})
}

// refreshKeys enables the bindings that make sense for the current tab
// and session.
func (m *AppModel) refreshKeys() {
	state := m.shared.controller.State()
	onAlerts := m.tab == tabAlerts
	channels := onAlerts && state.AlertsEnabled

	m.keys.Download.SetEnabled(!state.Batch.Empty())
	m.keys.Email.SetEnabled(channels)
	m.keys.SMS.SetEnabled(channels)
	m.keys.EditEmail.SetEnabled(channels)
	m.keys.EditPhone.SetEnabled(channels)
	m.keys.Save.SetEnabled(channels)
	m.keys.Test.SetEnabled(onAlerts)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	ctrl := m.shared.controller
	state := ctrl.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shared.animator.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		ctrl.StartScan()

	case key.Matches(msg, m.keys.Stop):
		ctrl.StopScan()

	case key.Matches(msg, m.keys.FreqUp):
		m.stepFrequency(config.FrequencyStep)

	case key.Matches(msg, m.keys.FreqDown):
		m.stepFrequency(-config.FrequencyStep)

	case key.Matches(msg, m.keys.FreqJump):
		m.stepFrequency(config.FrequencyJump)

	case key.Matches(msg, m.keys.FreqDrop):
		m.stepFrequency(-config.FrequencyJump)

	case key.Matches(msg, m.keys.FreqEdit):
		cmd := m.beginEdit(editFrequency, strconv.FormatFloat(state.Frequency, 'f', -1, 64))
		return m, cmd

	case key.Matches(msg, m.keys.ThreshUp):
		m.stepThreshold(config.ThresholdStep)

	case key.Matches(msg, m.keys.ThreshDn):
		m.stepThreshold(-config.ThresholdStep)

	case key.Matches(msg, m.keys.Alerts):
		ctrl.SetAlertsEnabled(!state.AlertsEnabled)

	case key.Matches(msg, m.keys.TabNext):
		m.tab = (m.tab + 1) % len(tabNames)

	case key.Matches(msg, m.keys.TabPrev):
		m.tab = (m.tab + len(tabNames) - 1) % len(tabNames)

	case key.Matches(msg, m.keys.Download):
		if paths, err := ctrl.DownloadReport(); err != nil {
			m.logger.Debug("download refused", slog.Any("error", err))
		} else if len(paths) > 0 {
			m.logger.Debug("report files written", slog.Any("files", paths))
		}

	case key.Matches(msg, m.keys.Email):
		s := state.Alerts
		s.EmailEnabled = !s.EmailEnabled
		ctrl.SetAlertSettings(s)

	case key.Matches(msg, m.keys.SMS):
		s := state.Alerts
		s.SMSEnabled = !s.SMSEnabled
		ctrl.SetAlertSettings(s)

	case key.Matches(msg, m.keys.EditEmail):
		cmd := m.beginEdit(editEmail, state.Alerts.Email)
		return m, cmd

	case key.Matches(msg, m.keys.EditPhone):
		cmd := m.beginEdit(editPhone, state.Alerts.Phone)
		return m, cmd

	case key.Matches(msg, m.keys.Save):
		// Refusals are already shown as notifications.
		_ = ctrl.SaveAlertSettings()

	case key.Matches(msg, m.keys.Test):
		_ = ctrl.TestAlert()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m AppModel) stepFrequency(delta float64) {
	ctrl := m.shared.controller
	v := ctrl.State().Frequency + delta
	ctrl.SetFrequency(math.Min(config.MaxFrequency, math.Max(config.MinFrequency, v)))
}

func (m AppModel) stepThreshold(delta float64) {
	ctrl := m.shared.controller
	v := ctrl.State().Threshold + delta
	ctrl.SetThreshold(math.Min(config.MaxThreshold, math.Max(config.MinThreshold, v)))
}

func (m *AppModel) beginEdit(field editField, value string) tea.Cmd {
	m.editing = field
	m.input.Reset()
	switch field {
	case editFrequency:
		m.input.Placeholder = "MHz"
		m.input.CharLimit = 12
	case editEmail:
		m.input.Placeholder = "you@example.com"
		m.input.CharLimit = 254
	case editPhone:
		m.input.Placeholder = "+1 555 0100"
		m.input.CharLimit = 20
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m AppModel) handleEditKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.shared.animator.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Apply):
		m.applyEdit(strings.TrimSpace(m.input.Value()))
		m.endEdit()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.endEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyEdit stores the typed value. A typed frequency is taken as is, out
// of range or not; only text that is not a finite number is rejected.
func (m AppModel) applyEdit(value string) {
	ctrl := m.shared.controller
	s := ctrl.State().Alerts

	switch m.editing {
	case editFrequency:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			m.shared.toasts.Notify(notify.Notification{
				Title:       "Invalid frequency",
				Description: fmt.Sprintf("%q is not a number.", value),
				Variant:     notify.VariantDestructive,
				At:          time.Now(),
			})
			return
		}
		ctrl.SetFrequency(v)

	case editEmail:
		s.Email = value
		ctrl.SetAlertSettings(s)

	case editPhone:
		s.Phone = value
		ctrl.SetAlertSettings(s)
	}
}

func (m *AppModel) endEdit() {
	m.editing = editNone
	m.input.Blur()
	m.input.Reset()
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}

	state := m.shared.controller.State()

	menuBar := ui.RenderMenuBar(m.width, tabNames, m.tab, state.Scanning)
	footer := m.renderHelp()
	statusBar := ui.RenderStatusBar(m.width, ui.Status{
		Scanning:   state.Scanning,
		Frequency:  state.Frequency,
		Threshold:  state.Threshold,
		Signals:    len(state.Batch.Signals),
		Suspicious: m.suspiciousCount(),
		LastBatch:  state.Batch.CapturedAt,
		Now:        time.Now(),
	})

	bodyH := m.height - lipgloss.Height(menuBar) - lipgloss.Height(footer) - lipgloss.Height(statusBar)
	if bodyH < 8 {
		bodyH = 8
	}

	leftW := m.width / 3
	if leftW < 34 {
		leftW = 34
	}
	rightW := m.width - leftW
	if rightW < 30 {
		rightW = 30
	}

	controls := m.renderControls(leftW-4, state)
	if toasts := ui.RenderToasts(leftW-4, m.shared.toasts.Visible()); toasts != "" {
		controls += "\n\n" + toasts
	}
	left := ui.RenderPanel(leftW, bodyH, "SCAN CONTROL", controls, m.editing == editFrequency)

	innerW := rightW - 4
	innerH := bodyH - 3
	right := ui.RenderPanel(rightW, bodyH, strings.ToUpper(tabNames[m.tab]), m.renderTab(innerW, innerH, state), m.tab == tabAlerts && m.editing != editNone)

	return ui.ComposeLayout(menuBar, left, right, footer, statusBar)
}

func (m AppModel) renderControls(width int, state session.State) string {
	c := ui.Controls{
		Scanning:      state.Scanning,
		Frequency:     state.Frequency,
		Threshold:     state.Threshold,
		AlertsEnabled: state.AlertsEnabled,
		Pending:       m.shared.controller.Pending(),
		Spinner:       m.spinner.View(),
		Signals:       len(state.Batch.Signals),
		Suspicious:    m.shared.controller.HasSuspicious(),
	}
	if m.shared.trend.Len() > 0 {
		c.Trend = m.shared.trend.Values()
		c.LatestPeak = m.shared.trend.Last()
	}
	if m.editing == editFrequency {
		c.FrequencyInput = m.input.View()
	}
	return ui.RenderControls(width, c)
}

func (m AppModel) renderTab(width, height int, state session.State) string {
	switch m.tab {
	case tabSpectrum:
		return spectrum.Render(width, height, state.Signals(), state.Frequency)

	case tabReport:
		if state.Batch.Empty() {
			return ui.Center(width, height, ui.StyleHelp.Render(reportHint))
		}
		return m.shared.controller.Report().Render(width)

	case tabAlerts:
		f := ui.AlertForm{Enabled: state.AlertsEnabled, Settings: state.Alerts}
		switch m.editing {
		case editEmail:
			f.EmailInput = m.input.View()
		case editPhone:
			f.PhoneInput = m.input.View()
		}
		return ui.RenderAlertForm(width, f)

	default:
		return waveform.Render(width, height, waveform.Frame{
			Active:       m.shared.animator.Active(),
			Elapsed:      m.shared.animator.Elapsed(),
			FrequencyMHz: state.Frequency,
			Rand:         m.shared.waveRand,
		})
	}
}

func (m AppModel) renderHelp() string {
	if m.editing != editNone {
		return m.help.View(editKeys{Apply: m.keys.Apply, Cancel: m.keys.Cancel})
	}
	return m.help.View(m.keys)
}

func (m AppModel) suspiciousCount() int {
	state := m.shared.controller.State()
	return report.Summarize(state.Batch.Signals, state.Threshold).Suspicious
}

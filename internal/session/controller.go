package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"miner-radar.klederson.com/internal/alert"
	"miner-radar.klederson.com/internal/config"
	"miner-radar.klederson.com/internal/metrics"
	"miner-radar.klederson.com/internal/notify"
	"miner-radar.klederson.com/internal/report"
	"miner-radar.klederson.com/internal/signal"
)

// ErrNoSignals is returned when a report is requested before any batch has
// been generated.
var ErrNoSignals = errors.New("no signals detected yet")

// Notification titles emitted by the controller.
const (
	TitleScanStarted      = "Scan started"
	TitleScanStopped      = "Scan stopped"
	TitleSuspicious       = "Warning! Suspicious signal detected"
	TitleReportDownloaded = "Report downloaded"
)

// State is the session's view state. Frequency and threshold are stored as
// given; range limits are a concern of the controls that produce them.
type State struct {
	Scanning      bool
	Frequency     float64 // MHz
	Threshold     float64 // Suspicion percent
	AlertsEnabled bool
	Alerts        alert.Settings
	Batch         signal.Batch
}

// DefaultState is the state of a fresh session.
func DefaultState() State {
	return State{
		Frequency:     config.DefaultFrequency,
		Threshold:     config.DefaultThreshold,
		AlertsEnabled: true,
		Alerts:        alert.DefaultSettings(),
	}
}

// Signals returns the current batch's records.
func (s State) Signals() []signal.Signal {
	return s.Batch.Signals
}

// Scheduler runs fn once after d. Callbacks must be delivered on the same
// goroutine that drives the controller.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Exporter writes a report to durable storage and returns what it wrote.
type Exporter interface {
	Export(r report.Report, batch signal.Batch) ([]string, error)
}

// Controller owns the session state and implements the dashboard's
// commands. It is not safe for concurrent use.
type Controller struct {
	state     State
	generator *signal.Generator
	scheduler Scheduler
	notifier  notify.Notifier

	logger   *slog.Logger
	metrics  *metrics.Metrics
	exporter Exporter
	delay    time.Duration
	now      func() time.Time

	pending int
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger for the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithMetrics records session activity into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithScanDelay overrides the simulated detection latency.
func WithScanDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.delay = d
	}
}

// WithExporter makes DownloadReport write files through e.
func WithExporter(e Exporter) Option {
	return func(c *Controller) {
		c.exporter = e
	}
}

// WithClock overrides the time source used for notifications and reports.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a controller starting from initial.
func NewController(initial State, gen *signal.Generator, sched Scheduler, n notify.Notifier, options ...Option) *Controller {
	if n == nil {
		n = notify.Discard
	}

	c := &Controller{
		state:     initial,
		generator: gen,
		scheduler: sched,
		notifier:  n,
		logger:    slog.New(slog.DiscardHandler),
		delay:     config.ScanDelay,
		now:       time.Now,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	return c.state
}

// Pending returns the number of detections scheduled but not yet run.
func (c *Controller) Pending() int {
	return c.pending
}

// HasSuspicious reports whether the current batch has a record above the
// current threshold.
func (c *Controller) HasSuspicious() bool {
	return signal.AnyAbove(c.state.Batch.Signals, c.state.Threshold)
}

// StartScan marks the session as scanning and schedules one detection
// after the scan delay. The detection uses the frequency, threshold and
// alert flag in effect now, even if they change before it runs.
func (c *Controller) StartScan() {
	c.state.Scanning = true

	freq := c.state.Frequency
	threshold := c.state.Threshold
	alerts := c.state.AlertsEnabled

	c.notify(notify.Notification{
		Title:       TitleScanStarted,
		Description: fmt.Sprintf("Scanning %s MHz...", formatMHz(freq)),
	})
	c.metrics.ScanStarted(freq)
	c.logger.Info("scan started",
		slog.Float64("frequency", freq),
		slog.Float64("threshold", threshold),
		slog.Bool("alerts", alerts),
		slog.Duration("delay", c.delay))

	c.pending++
	c.scheduler.After(c.delay, func() {
		c.detect(freq, threshold, alerts)
	})
}

// StopScan clears the scanning flag. A detection already scheduled still
// runs and replaces the batch.
func (c *Controller) StopScan() {
	c.state.Scanning = false

	c.notify(notify.Notification{
		Title:       TitleScanStopped,
		Description: "Radio signal scanning stopped.",
	})
	c.metrics.ScanStopped()
	c.logger.Info("scan stopped", slog.Int("pending", c.pending))
}

func (c *Controller) detect(freq, threshold float64, alerts bool) {
	c.pending--

	batch := c.generator.Generate(freq)
	c.state.Batch = batch

	summary := report.Summarize(batch.Signals, threshold)
	statuses := make([]string, len(batch.Signals))
	for i, s := range batch.Signals {
		statuses[i] = report.Classify(s.SuspicionLevel, threshold).String()
	}
	c.metrics.BatchGenerated(statuses, summary.MeanSuspicion, signal.PeakSuspicion(batch.Signals))

	c.logger.Info("batch generated",
		slog.String("batch", batch.ID.String()),
		slog.Float64("frequency", freq),
		slog.Int("suspicious", summary.Suspicious),
		slog.Float64("peak", signal.PeakSuspicion(batch.Signals)))

	if alerts && signal.AnyAbove(batch.Signals, threshold) {
		c.notify(notify.Notification{
			Title:       TitleSuspicious,
			Description: "Signals suspected to come from cryptocurrency miners were detected. Please review the report.",
			Variant:     notify.VariantDestructive,
		})
		c.metrics.SuspiciousAlert()
		c.logger.Warn("suspicious signals", slog.String("batch", batch.ID.String()))
	}
}

// SetFrequency stores v without validation.
func (c *Controller) SetFrequency(v float64) {
	c.state.Frequency = v
	c.logger.Debug("frequency changed", slog.Float64("frequency", v))
}

// SetThreshold stores v without validation.
func (c *Controller) SetThreshold(v float64) {
	c.state.Threshold = v
	c.logger.Debug("threshold changed", slog.Float64("threshold", v))
}

func (c *Controller) SetAlertsEnabled(b bool) {
	c.state.AlertsEnabled = b
	c.logger.Debug("alerts toggled", slog.Bool("enabled", b))
}

func (c *Controller) SetScanning(b bool) {
	c.state.Scanning = b
}

// SetAlertSettings replaces the alert channel preferences.
func (c *Controller) SetAlertSettings(s alert.Settings) {
	c.state.Alerts = s
}

// SaveAlertSettings acknowledges the alert preferences. It is refused
// while alerts are disabled.
func (c *Controller) SaveAlertSettings() error {
	n, err := c.state.Alerts.Save(c.state.AlertsEnabled)
	c.notify(n)
	if err != nil {
		return err
	}
	c.logger.Info("alert settings saved",
		slog.Bool("email", c.state.Alerts.EmailEnabled),
		slog.Bool("sms", c.state.Alerts.SMSEnabled))
	return nil
}

// TestAlert simulates a test alert. Guard failures are returned and also
// shown as destructive notifications. Nothing is sent anywhere.
func (c *Controller) TestAlert() error {
	n, err := c.state.Alerts.Test(c.state.AlertsEnabled)
	c.notify(n)

	result := "sent"
	switch {
	case errors.Is(err, alert.ErrAlertsDisabled):
		result = "disabled"
	case errors.Is(err, alert.ErrEmailMissing):
		result = "email_missing"
	case errors.Is(err, alert.ErrPhoneMissing):
		result = "phone_missing"
	}
	c.metrics.AlertTested(result)
	c.logger.Info("test alert", slog.String("result", result))
	return err
}

// Report builds a report of the current batch against the current
// threshold.
func (c *Controller) Report() report.Report {
	return report.New(c.state.Batch.Signals, c.state.Batch.BaseFrequency, c.state.Threshold, c.now())
}

// DownloadReport confirms a report download. Without an exporter nothing
// is written, as in a purely simulated session; with one, the files are
// written first and their paths returned. It fails with ErrNoSignals while
// the batch is empty.
func (c *Controller) DownloadReport() ([]string, error) {
	if c.state.Batch.Empty() {
		return nil, ErrNoSignals
	}

	var paths []string
	if c.exporter != nil {
		var err error
		paths, err = c.exporter.Export(c.Report(), c.state.Batch)
		if err != nil {
			c.logger.Error("report export failed", slog.Any("error", err))
			c.notify(notify.Notification{
				Title:       "Report export failed",
				Description: err.Error(),
				Variant:     notify.VariantDestructive,
			})
			return paths, fmt.Errorf("exporting report: %w", err)
		}
	}

	c.notify(notify.Notification{
		Title:       TitleReportDownloaded,
		Description: "Signal analysis report downloaded successfully.",
	})
	c.metrics.ReportDownloaded()
	c.logger.Info("report downloaded",
		slog.String("batch", c.state.Batch.ID.String()),
		slog.Any("files", paths))
	return paths, nil
}

func (c *Controller) notify(n notify.Notification) {
	if n.At.IsZero() {
		n.At = c.now()
	}
	c.notifier.Notify(n)
}

func formatMHz(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

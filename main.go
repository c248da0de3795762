package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"miner-radar.klederson.com/internal/alert"
	"miner-radar.klederson.com/internal/app"
	"miner-radar.klederson.com/internal/config"
	"miner-radar.klederson.com/internal/export"
	"miner-radar.klederson.com/internal/metrics"
	"miner-radar.klederson.com/internal/session"
)

var (
	flagConfig      string
	flagFrequency   float64
	flagThreshold   float64
	flagNoAlerts    bool
	flagSeed        int64
	flagExportDir   string
	flagLogFile     string
	flagLogLevel    string
	flagMetricsAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "miner-radar",
		Short: "MINER-RADAR - Simulated RF scanner dashboard for crypto-miner emissions",
		Long: `MINER-RADAR is a terminal dashboard that simulates scanning a radio band for
emissions typical of cryptocurrency miners. It draws a live waveform, a
spectrum of detected signals and an analysis report.

All detections are synthetic. No radio hardware is used and no alert is
ever delivered.`,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&flagConfig, "config", "", "YAML configuration file")
	flags.Float64Var(&flagFrequency, "frequency", config.DefaultFrequency, "Initial target frequency in MHz")
	flags.Float64Var(&flagThreshold, "threshold", config.DefaultThreshold, "Initial detection threshold (0-100)")
	flags.BoolVar(&flagNoAlerts, "no-alerts", false, "Start with alerts disabled")
	flags.Int64Var(&flagSeed, "seed", 0, "Random seed for reproducible detections (0 = time based)")
	flags.StringVar(&flagExportDir, "export-dir", "", "Write report files here on download")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9464")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, settings)

	logger, closeLog, err := newLogger(settings.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := settings.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	initial := session.DefaultState()
	initial.Frequency = settings.Session.Frequency
	initial.Threshold = settings.Session.Threshold
	initial.AlertsEnabled = settings.Session.AlertsEnabled
	initial.Alerts = alert.Settings(settings.Alerts)

	m := metrics.New()
	options := []session.Option{
		session.WithMetrics(m),
		session.WithScanDelay(settings.Session.ScanDelay),
	}
	if settings.Export.Dir != "" {
		options = append(options, session.WithExporter(
			export.New(settings.Export.Dir, settings.Export.Width, settings.Export.Height, logger)))
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if settings.Metrics.Addr != "" {
		go func() {
			if err := m.Serve(ctx, settings.Metrics.Addr, logger); err != nil {
				logger.Error("metrics server stopped", slog.Any("error", err))
			}
		}()
	}

	logger.Info("starting",
		slog.String("version", config.AppVersion),
		slog.Int64("seed", seed),
		slog.Float64("frequency", initial.Frequency),
		slog.Float64("threshold", initial.Threshold))

	model := app.New(app.Config{
		Initial:        initial,
		Seed:           seed,
		FPS:            settings.Display.FPS,
		ToastDuration:  settings.Display.ToastDuration,
		Logger:         logger,
		SessionOptions: options,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(settings.Display.FPS),
	)

	_, err = p.Run()
	return err
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("frequency") {
		s.Session.Frequency = flagFrequency
	}
	if flags.Changed("threshold") {
		s.Session.Threshold = flagThreshold
	}
	if flags.Changed("no-alerts") {
		s.Session.AlertsEnabled = !flagNoAlerts
	}
	if flags.Changed("seed") {
		s.Session.Seed = flagSeed
	}
	if flags.Changed("export-dir") {
		s.Export.Dir = flagExportDir
	}
	if flags.Changed("log-file") {
		s.Logging.File = flagLogFile
	}
	if flags.Changed("log-level") {
		s.Logging.Level = flagLogLevel
	}
	if flags.Changed("metrics-addr") {
		s.Metrics.Addr = flagMetricsAddr
	}
}

// newLogger builds the file logger. The dashboard owns the terminal, so
// without a log file everything is discarded.
func newLogger(s config.LogSettings) (*slog.Logger, func(), error) {
	parsed, err := config.ParseLevel(s.Level)
	if err != nil {
		return nil, nil, err
	}
	var level slog.LevelVar
	level.Set(parsed)

	if s.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: &level}))
	return logger, func() { _ = f.Close() }, nil
}

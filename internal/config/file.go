package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the optional YAML configuration file. Every field has a
// default, so an empty or missing file yields Default().
type Settings struct {
	Session SessionSettings `yaml:"session"`
	Display DisplaySettings `yaml:"display"`
	Alerts  AlertSettings   `yaml:"alerts"`
	Export  ExportSettings  `yaml:"export"`
	Logging LogSettings     `yaml:"logging"`
	Metrics MetricsSettings `yaml:"metrics"`
}

// SessionSettings seeds the initial session state.
type SessionSettings struct {
	Frequency     float64       `yaml:"frequency"`
	Threshold     float64       `yaml:"threshold"`
	AlertsEnabled bool          `yaml:"alertsEnabled"`
	ScanDelay     time.Duration `yaml:"scanDelay"`
	Seed          int64         `yaml:"seed"` // 0 picks a time based seed
}

// DisplaySettings tunes the terminal dashboard.
type DisplaySettings struct {
	FPS           int           `yaml:"fps"`
	ToastDuration time.Duration `yaml:"toastDuration"`
}

// AlertSettings holds the notification channel preferences.
type AlertSettings struct {
	EmailEnabled bool   `yaml:"emailEnabled"`
	SMSEnabled   bool   `yaml:"smsEnabled"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
}

// ExportSettings controls report files written on download.
// An empty Dir keeps downloads notification-only.
type ExportSettings struct {
	Dir    string `yaml:"dir"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LogSettings configures the slog handler. The terminal is owned by the
// dashboard, so logs go to a file or nowhere.
type LogSettings struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// MetricsSettings enables the Prometheus endpoint when Addr is set.
type MetricsSettings struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Session: SessionSettings{
			Frequency:     DefaultFrequency,
			Threshold:     DefaultThreshold,
			AlertsEnabled: true,
			ScanDelay:     ScanDelay,
		},
		Display: DisplaySettings{
			FPS:           TargetFPS,
			ToastDuration: ToastDuration,
		},
		Alerts: AlertSettings{
			EmailEnabled: true,
		},
		Export: ExportSettings{
			Width:  ExportWidth,
			Height: ExportHeight,
		},
		Logging: LogSettings{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of Default(). An empty path
// returns the defaults untouched.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err = yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing config file '%s': %w", path, err)
	}
	if err = s.normalize(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}
	return s, nil
}

func (s *Settings) normalize() error {
	if s.Session.ScanDelay < 0 {
		return errors.New("session.scanDelay must not be negative")
	}
	if s.Session.ScanDelay == 0 {
		s.Session.ScanDelay = ScanDelay
	}
	if s.Display.FPS <= 0 {
		s.Display.FPS = TargetFPS
	}
	if s.Display.ToastDuration <= 0 {
		s.Display.ToastDuration = ToastDuration
	}
	if s.Export.Width <= 0 {
		s.Export.Width = ExportWidth
	}
	if s.Export.Height <= 0 {
		s.Export.Height = ExportHeight
	}
	if _, err := ParseLevel(s.Logging.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to its slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level '%s'", name)
	}
}

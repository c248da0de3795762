package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Session.Frequency != DefaultFrequency {
		t.Errorf("expected frequency %.0f, got %.0f", DefaultFrequency, s.Session.Frequency)
	}
	if s.Session.Threshold != DefaultThreshold {
		t.Errorf("expected threshold %.0f, got %.0f", DefaultThreshold, s.Session.Threshold)
	}
	if !s.Session.AlertsEnabled {
		t.Error("alerts should be enabled by default")
	}
	if s.Session.ScanDelay != 3*time.Second {
		t.Errorf("expected scan delay 3s, got %s", s.Session.ScanDelay)
	}
	if !s.Alerts.EmailEnabled || s.Alerts.SMSEnabled {
		t.Error("expected email alerts on and SMS alerts off by default")
	}
	if s.Export.Dir != "" {
		t.Errorf("export should be disabled by default, got dir %q", s.Export.Dir)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.yaml")
	data := []byte(`
session:
  frequency: 1450.5
  threshold: 55
  alertsEnabled: false
  scanDelay: 500ms
  seed: 42
alerts:
  smsEnabled: true
  phone: "09123456789"
export:
  dir: /tmp/reports
logging:
  level: debug
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Session.Frequency != 1450.5 {
		t.Errorf("expected frequency 1450.5, got %f", s.Session.Frequency)
	}
	if s.Session.Threshold != 55 {
		t.Errorf("expected threshold 55, got %f", s.Session.Threshold)
	}
	if s.Session.AlertsEnabled {
		t.Error("alerts should be disabled")
	}
	if s.Session.ScanDelay != 500*time.Millisecond {
		t.Errorf("expected 500ms scan delay, got %s", s.Session.ScanDelay)
	}
	if s.Session.Seed != 42 {
		t.Errorf("expected seed 42, got %d", s.Session.Seed)
	}
	if !s.Alerts.EmailEnabled {
		t.Error("email alerts should keep their default")
	}
	if !s.Alerts.SMSEnabled || s.Alerts.Phone != "09123456789" {
		t.Errorf("unexpected SMS settings: %+v", s.Alerts)
	}
	if s.Export.Dir != "/tmp/reports" || s.Export.Width != ExportWidth {
		t.Errorf("unexpected export settings: %+v", s.Export)
	}
	if s.Display.FPS != TargetFPS {
		t.Errorf("expected default fps %d, got %d", TargetFPS, s.Display.FPS)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "session: [1, 2"},
		{"negative scan delay", "session:\n  scanDelay: -1s\n"},
		{"unknown log level", "logging:\n  level: loud\n"},
	}

	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("writing config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tc := range testCases {
		got, err := ParseLevel(tc.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

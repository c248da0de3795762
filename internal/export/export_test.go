package export

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"miner-radar.klederson.com/internal/report"
	"miner-radar.klederson.com/internal/signal"
)

func TestWriter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

	batch := signal.Batch{
		ID:            uuid.MustParse("7f1c1b7e-3c1a-4a43-9a55-1b6b0f0d2c11"),
		BaseFrequency: 900,
		CapturedAt:    now,
		Signals: []signal.Signal{
			{ID: 1, Frequency: 897.7, Amplitude: 50, Timestamp: now, SuspicionLevel: 72},
			{ID: 2, Frequency: 901.7, Amplitude: 75, Pattern: signal.PatternOscillating, Timestamp: now, SuspicionLevel: 88},
			{ID: 3, Frequency: 905.2, Amplitude: 35, Pattern: signal.PatternIntermittent, Timestamp: now, SuspicionLevel: 49},
		},
	}
	r := report.New(batch.Signals, batch.BaseFrequency, 70, now)

	paths, err := New(dir, 300, 150, nil).Export(r, batch)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %v", paths)
	}

	if want := filepath.Join(dir, "report-7f1c1b7e-3c1a-4a43-9a55-1b6b0f0d2c11.txt"); paths[0] != want {
		t.Errorf("report path = %s, want %s", paths[0], want)
	}
	text, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(text), "highly suspicious") {
		t.Error("report text should contain status labels")
	}

	f, err := os.Open(paths[1])
	if err != nil {
		t.Fatalf("opening image: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding image: %v", err)
	}
	if cfg.Width != 300 || cfg.Height != 150 {
		t.Errorf("image size = %dx%d, want 300x150", cfg.Width, cfg.Height)
	}
}

func TestWriter_ExportInvalidSize(t *testing.T) {
	batch := signal.Batch{ID: uuid.New(), BaseFrequency: 900}
	r := report.New(nil, 900, 70, time.Now())

	paths, err := New(t.TempDir(), 0, 0, nil).Export(r, batch)
	if err == nil {
		t.Fatal("expected error for an invalid image size")
	}
	if len(paths) != 1 {
		t.Errorf("the text report should still be written, got %v", paths)
	}
}

package report

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"miner-radar.klederson.com/internal/signal"
)

// HighlySuspiciousAbove is the fixed level beyond which a record is highly
// suspicious regardless of the user threshold.
const HighlySuspiciousAbove = 80.0

// Status is the report label of a single record.
type Status int

const (
	StatusNormal Status = iota
	StatusSuspicious
	StatusHighlySuspicious
)

func (s Status) String() string {
	switch s {
	case StatusHighlySuspicious:
		return "highly suspicious"
	case StatusSuspicious:
		return "suspicious"
	default:
		return "normal"
	}
}

// Classify labels a suspicion level. The fixed high bound wins over the
// threshold, so with a threshold above 80 the suspicious label is
// unreachable.
func Classify(level, threshold float64) Status {
	switch {
	case level > HighlySuspiciousAbove:
		return StatusHighlySuspicious
	case level > threshold:
		return StatusSuspicious
	default:
		return StatusNormal
	}
}

// Summary aggregates a batch.
type Summary struct {
	Total      int
	Suspicious int // Records strictly above the threshold

	// MeanSuspicion is NaN for an empty batch.
	MeanSuspicion float64
}

// Summarize computes the summary of signals against threshold.
func Summarize(signals []signal.Signal, threshold float64) Summary {
	s := Summary{Total: len(signals), MeanSuspicion: math.NaN()}
	if len(signals) == 0 {
		return s
	}

	levels := make([]float64, len(signals))
	for i, sig := range signals {
		levels[i] = sig.SuspicionLevel
		if sig.SuspicionLevel > threshold {
			s.Suspicious++
		}
	}
	s.MeanSuspicion = stat.Mean(levels, nil)
	return s
}

// HasMean reports whether MeanSuspicion is defined.
func (s Summary) HasMean() bool {
	return !math.IsNaN(s.MeanSuspicion)
}

// Report is a snapshot of the current batch ready for display or export.
type Report struct {
	GeneratedAt   time.Time
	BaseFrequency float64
	Threshold     float64
	Signals       []signal.Signal
	Summary       Summary
}

// New builds a report for the given batch.
func New(signals []signal.Signal, base, threshold float64, now time.Time) Report {
	return Report{
		GeneratedAt:   now,
		BaseFrequency: base,
		Threshold:     threshold,
		Signals:       signals,
		Summary:       Summarize(signals, threshold),
	}
}

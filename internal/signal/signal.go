package signal

import (
	"time"

	"github.com/google/uuid"
)

// Pattern labels the fabricated modulation behaviour of a signal.
type Pattern int

const (
	PatternConstant Pattern = iota
	PatternOscillating
	PatternIntermittent
)

func (p Pattern) String() string {
	switch p {
	case PatternOscillating:
		return "oscillating"
	case PatternIntermittent:
		return "intermittent"
	default:
		return "constant"
	}
}

// Signal is one synthetic detection record.
type Signal struct {
	ID             int       // 1..BatchSize within a batch
	Frequency      float64   // MHz
	Amplitude      float64   // Arbitrary units, roughly 30..90
	Pattern        Pattern   // Emission shape, cosmetic only
	Timestamp      time.Time // Capture instant, shared by the whole batch
	SuspicionLevel float64   // [0, 100]
}

// Batch is the set of signals produced by one scan cycle. A new batch
// always replaces the previous one.
type Batch struct {
	ID            uuid.UUID
	BaseFrequency float64 // MHz
	CapturedAt    time.Time
	Signals       []Signal
}

// Empty reports whether the batch carries no signals.
func (b Batch) Empty() bool {
	return len(b.Signals) == 0
}

// AnyAbove reports whether at least one signal is strictly more suspicious
// than threshold.
func AnyAbove(signals []Signal, threshold float64) bool {
	for _, s := range signals {
		if s.SuspicionLevel > threshold {
			return true
		}
	}
	return false
}

// PeakSuspicion returns the highest suspicion level, or 0 for no signals.
func PeakSuspicion(signals []Signal) float64 {
	peak := 0.0
	for _, s := range signals {
		if s.SuspicionLevel > peak {
			peak = s.SuspicionLevel
		}
	}
	return peak
}

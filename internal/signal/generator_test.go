package signal

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestGenerator_BatchShape(t *testing.T) {
	expectedOffsets := []float64{-2.3, 1.7, 5.2}
	expectedPatterns := []Pattern{PatternConstant, PatternOscillating, PatternIntermittent}

	for seed := int64(0); seed < 1000; seed++ {
		rng := rand.New(rand.NewSource(seed))
		base := rng.Float64()*4000 - 1000 // well outside the UI domain on purpose

		batch := NewGenerator(rng).Generate(base)
		if len(batch.Signals) != BatchSize {
			t.Fatalf("seed %d: expected %d signals, got %d", seed, BatchSize, len(batch.Signals))
		}

		for i, s := range batch.Signals {
			if s.ID != i+1 {
				t.Errorf("seed %d: signal %d has id %d", seed, i, s.ID)
			}
			if math.Abs(s.Frequency-(base+expectedOffsets[i])) > 1e-9 {
				t.Errorf("seed %d: signal %d frequency %f, want %f", seed, i, s.Frequency, base+expectedOffsets[i])
			}
			if s.Pattern != expectedPatterns[i] {
				t.Errorf("seed %d: signal %d pattern %s, want %s", seed, i, s.Pattern, expectedPatterns[i])
			}
			if s.SuspicionLevel < 45 || s.SuspicionLevel > 100 {
				t.Errorf("seed %d: signal %d suspicion %f out of [45, 100]", seed, i, s.SuspicionLevel)
			}
			if s.Amplitude < 30 || s.Amplitude > 90 {
				t.Errorf("seed %d: signal %d amplitude %f out of [30, 90]", seed, i, s.Amplitude)
			}
			if !s.Timestamp.Equal(batch.CapturedAt) {
				t.Errorf("seed %d: signal %d timestamp differs from batch capture time", seed, i)
			}
		}
	}
}

func TestGenerator_PerRecordRanges(t *testing.T) {
	ranges := []struct {
		ampMin, ampMax float64
		susMin, susMax float64
	}{
		{45, 65, 65, 85},
		{60, 90, 75, 100},
		{30, 45, 45, 75},
	}

	g := NewGenerator(rand.New(rand.NewSource(7)))
	for n := 0; n < 500; n++ {
		batch := g.Generate(900)
		for i, s := range batch.Signals {
			r := ranges[i]
			if s.Amplitude < r.ampMin || s.Amplitude > r.ampMax {
				t.Fatalf("signal %d amplitude %f outside [%v, %v]", i+1, s.Amplitude, r.ampMin, r.ampMax)
			}
			if s.SuspicionLevel < r.susMin || s.SuspicionLevel > r.susMax {
				t.Fatalf("signal %d suspicion %f outside [%v, %v]", i+1, s.SuspicionLevel, r.susMin, r.susMax)
			}
		}
	}
}

func TestGenerator_NotIdempotent(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	a := g.Generate(900)
	b := g.Generate(900)

	if a.ID == b.ID {
		t.Error("expected distinct batch ids")
	}

	same := true
	for i := range a.Signals {
		if a.Signals[i].Amplitude != b.Signals[i].Amplitude ||
			a.Signals[i].SuspicionLevel != b.Signals[i].SuspicionLevel {
			same = false
		}
	}
	if same {
		t.Error("two generations with the same frequency produced identical values")
	}
}

func TestGenerator_ClockOption(t *testing.T) {
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(rand.New(rand.NewSource(1)), WithClock(func() time.Time { return at }))

	batch := g.Generate(433.92)
	if !batch.CapturedAt.Equal(at) {
		t.Errorf("expected capture time %s, got %s", at, batch.CapturedAt)
	}
	if batch.BaseFrequency != 433.92 {
		t.Errorf("expected base frequency 433.92, got %f", batch.BaseFrequency)
	}
}

func TestAnyAboveAndPeak(t *testing.T) {
	signals := []Signal{{SuspicionLevel: 50}, {SuspicionLevel: 70}, {SuspicionLevel: 69.9}}

	if AnyAbove(signals, 70) {
		t.Error("70 is not strictly above 70")
	}
	if !AnyAbove(signals, 69.95) {
		t.Error("expected a signal above 69.95")
	}
	if AnyAbove(nil, 0) {
		t.Error("no signals can never be above")
	}
	if got := PeakSuspicion(signals); got != 70 {
		t.Errorf("expected peak 70, got %f", got)
	}
	if got := PeakSuspicion(nil); got != 0 {
		t.Errorf("expected peak 0 for no signals, got %f", got)
	}
}

package waveform

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestColumnTerms_MainIsZeroAtOrigin(t *testing.T) {
	terms := ColumnTerms(0, 0, 500, 200, true)

	if terms.Main != 0 {
		t.Errorf("expected main term sin(0)=0, got %f", terms.Main)
	}
	if terms.Noise != 0 {
		t.Errorf("expected noise term 0, got %f", terms.Noise)
	}
	if terms.Miner != 0 {
		t.Errorf("expected miner term 0, got %f", terms.Miner)
	}
}

func TestSynthesize_SingleColumnBoundary(t *testing.T) {
	points := Synthesize(0, 500, 1, 100, rand.New(rand.NewSource(3)))
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].X != 0 || points[0].Y != 50 {
		t.Errorf("expected point (0, 50), got (%d, %f)", points[0].X, points[0].Y)
	}
}

func TestColumnTerms_Amplitudes(t *testing.T) {
	height := 400

	// t=0.025, elapsed=0, factor=1 puts the main term at sin(π/2)
	terms := ColumnTerms(0.025, 0, ReferenceMHz, height, false)
	if math.Abs(terms.Main-float64(height)/4) > 1e-9 {
		t.Errorf("expected main peak %f, got %f", float64(height)/4, terms.Main)
	}
	if terms.Miner != 0 {
		t.Errorf("miner term must be absent, got %f", terms.Miner)
	}

	// t=0.005 puts the noise term at sin(π/2)
	terms = ColumnTerms(0.005, 0, ReferenceMHz, height, false)
	if math.Abs(terms.Noise-float64(height)/40) > 1e-9 {
		t.Errorf("expected noise peak %f, got %f", float64(height)/40, terms.Noise)
	}

	// t=1/120 puts the miner term at sin(π/2)
	terms = ColumnTerms(1.0/120, 0, ReferenceMHz, height, true)
	if math.Abs(terms.Miner-float64(height)/12) > 1e-9 {
		t.Errorf("expected miner peak %f, got %f", float64(height)/12, terms.Miner)
	}
}

func TestSynthesize_Bounds(t *testing.T) {
	width, height := 240, 120
	rng := rand.New(rand.NewSource(11))

	// |main|+|noise|+|miner| <= h/4 + h/40 + h/12
	limit := float64(height)/4 + float64(height)/40 + float64(height)/12
	mid := float64(height) / 2

	for frame := 0; frame < 50; frame++ {
		points := Synthesize(float64(frame)/30, 1337, width, height, rng)
		if len(points) != width {
			t.Fatalf("expected %d points, got %d", width, len(points))
		}
		for x, p := range points {
			if p.X != x {
				t.Fatalf("point %d has x %d", x, p.X)
			}
			if math.Abs(p.Y-mid) > limit+1e-9 {
				t.Fatalf("point %d deviates %f from baseline, limit %f", x, math.Abs(p.Y-mid), limit)
			}
		}
	}
}

func TestSynthesize_MinerTermIsRerolled(t *testing.T) {
	width, height := 1000, 120
	rng := rand.New(rand.NewSource(5))

	withMiner := 0
	frameA := Synthesize(0, 900, width, height, rng)
	frameB := Synthesize(0, 900, width, height, rng)

	differs := false
	for x := range frameA {
		tt := float64(x) / float64(width)
		plain := float64(height)/2 - ColumnTerms(tt, 0, 900, height, false).Sum()
		if math.Abs(frameA[x].Y-plain) > 1e-9 {
			withMiner++
		}
		if frameA[x].Y != frameB[x].Y {
			differs = true
		}
	}

	// Roughly 30% of columns carry the term; sin(2π·t·30) is zero at a few columns.
	if withMiner < 200 || withMiner > 400 {
		t.Errorf("expected about 300 columns with the miner term, got %d", withMiner)
	}
	if !differs {
		t.Error("expected two frames at the same instant to differ")
	}
}

func TestSynthesize_DegenerateSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if Synthesize(0, 900, 0, 10, rng) != nil {
		t.Error("expected nil for zero width")
	}
	if Synthesize(0, 900, 10, 0, rng) != nil {
		t.Error("expected nil for zero height")
	}
	if Baseline(0, 10) != nil {
		t.Error("expected nil baseline for zero width")
	}
}

func TestBaseline(t *testing.T) {
	points := Baseline(8, 20)
	for _, p := range points {
		if p.Y != 10 {
			t.Errorf("expected baseline at 10, got %f", p.Y)
		}
	}
}

func TestAnimator_Lifecycle(t *testing.T) {
	now := time.Unix(1000, 0)
	a := NewAnimator(func() time.Time { return now })

	if a.Active() {
		t.Fatal("new animator should be idle")
	}

	gen, started := a.Start()
	if !started {
		t.Fatal("first Start should start a chain")
	}
	if !a.Accept(gen) {
		t.Error("running chain should accept its own frames")
	}

	again, started := a.Start()
	if started || again != gen {
		t.Error("a second Start must not spawn another chain")
	}

	now = now.Add(1500 * time.Millisecond)
	if got := a.Elapsed(); got != 1.5 {
		t.Errorf("expected 1.5s elapsed, got %f", got)
	}

	a.Stop()
	if a.Accept(gen) {
		t.Error("stopped chain must reject in-flight frames")
	}

	next, started := a.Start()
	if !started || next == gen {
		t.Error("restart should yield a fresh generation")
	}
	if a.Accept(gen) {
		t.Error("old generation must stay rejected after restart")
	}
	if !a.Accept(next) {
		t.Error("new generation should be accepted")
	}
}

func TestRender_Dimensions(t *testing.T) {
	width, height := 40, 10

	for _, active := range []bool{false, true} {
		out := Render(width, height, Frame{
			Active:       active,
			Elapsed:      0.25,
			FrequencyMHz: 900,
			Rand:         rand.New(rand.NewSource(2)),
		})

		lines := strings.Split(out, "\n")
		if len(lines) != height {
			t.Fatalf("active=%v: expected %d lines, got %d", active, height, len(lines))
		}
		for i, l := range lines {
			if w := lipgloss.Width(l); w != width {
				t.Errorf("active=%v: line %d has width %d, want %d", active, i, w, width)
			}
		}
		if !strings.Contains(lines[0], "Frequency: 900 MHz") {
			t.Errorf("caption missing: %q", lines[0])
		}
		if hint := strings.Contains(out, idleHint); hint == active {
			t.Errorf("active=%v: idle hint shown=%v", active, hint)
		}
	}

	if Render(2, 2, Frame{}) != "" {
		t.Error("expected empty render for tiny panels")
	}
}

func TestCanvas_Plot(t *testing.T) {
	c := newCanvas(2, 1)
	c.plot([]Point{{X: 0, Y: 0}, {X: 1, Y: 3}})

	// both dot columns share cell 0: dot x=0 at y=0, dot x=1 over y=0..3
	if got := c.mask(0, 0); got != 0x01|0x08|0x10|0x20|0x80 {
		t.Errorf("unexpected mask %#x", got)
	}

	c.set(-1, 0)
	c.set(100, 100)
	if got := c.mask(1, 0); got != 0 {
		t.Errorf("out of range dots must be clipped, got %#x", got)
	}
}

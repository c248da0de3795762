package signal

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// BatchSize is the number of signals in every detection batch.
const BatchSize = 3

// span is a value drawn as Base + r*Scale with r uniform in [0, 1).
type span struct {
	Base, Scale float64
}

func (s span) draw(rng *rand.Rand) float64 {
	return s.Base + rng.Float64()*s.Scale
}

var signalTemplates = [BatchSize]struct {
	Offset    float64 // MHz from the base frequency
	Pattern   Pattern
	Amplitude span
	Suspicion span
}{
	{-2.3, PatternConstant, span{45, 20}, span{65, 20}},
	{+1.7, PatternOscillating, span{60, 30}, span{75, 25}},
	{+5.2, PatternIntermittent, span{30, 15}, span{45, 30}},
}

// Generator fabricates detection batches around a base frequency.
// It is not safe for concurrent use; the dashboard only calls it from
// its event loop.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// GeneratorOption customises a Generator.
type GeneratorOption func(*Generator)

// WithClock overrides the capture timestamp source.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a generator drawing from rng. A nil rng uses a
// time seeded source.
func NewGenerator(rng *rand.Rand, options ...GeneratorOption) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Generator{rng: rng, now: time.Now}
	for _, option := range options {
		option(g)
	}
	return g
}

// Generate returns a fresh batch of BatchSize signals around base (MHz).
// Every call draws new amplitudes and suspicion levels.
func (g *Generator) Generate(base float64) Batch {
	now := g.now()

	signals := make([]Signal, BatchSize)
	for i, t := range signalTemplates {
		signals[i] = Signal{
			ID:             i + 1,
			Frequency:      base + t.Offset,
			Amplitude:      t.Amplitude.draw(g.rng),
			Pattern:        t.Pattern,
			Timestamp:      now,
			SuspicionLevel: t.Suspicion.draw(g.rng),
		}
	}

	return Batch{
		ID:            uuid.New(),
		BaseFrequency: base,
		CapturedAt:    now,
		Signals:       signals,
	}
}

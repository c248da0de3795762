package waveform

import (
	"math"
	"math/rand"
)

// MinerProbability is the per-column chance that the interference term is
// mixed into a frame.
const MinerProbability = 0.3

// ReferenceMHz scales the main carrier: at this base frequency the main
// term completes ten cycles across the display.
const ReferenceMHz = 500.0

// Point is one plotted column. Y is measured from the top edge, so the
// baseline sits at height/2.
type Point struct {
	X int
	Y float64
}

// Terms are the three summed components of a column, before they are
// subtracted from the baseline.
type Terms struct {
	Main  float64
	Noise float64
	Miner float64
}

// Sum returns Main+Noise+Miner.
func (t Terms) Sum() float64 {
	return t.Main + t.Noise + t.Miner
}

// ColumnTerms evaluates the curve components at normalised position
// t in [0, 1). The miner term is only included when withMiner is set.
func ColumnTerms(t, elapsed, freqMHz float64, height int, withMiner bool) Terms {
	h := float64(height)
	factor := freqMHz / ReferenceMHz

	terms := Terms{
		Main:  math.Sin(2*math.Pi*(t*10+elapsed)*factor) * (h / 4),
		Noise: math.Sin(2*math.Pi*(t*50+elapsed*2)) * (h / 40),
	}
	if withMiner {
		terms.Miner = math.Sin(2*math.Pi*t*30) * (h / 12)
	}
	return terms
}

// Synthesize produces one frame of the decorative oscilloscope curve, one
// point per pixel column. The miner term is re-rolled for every column on
// every call.
func Synthesize(elapsed, freqMHz float64, width, height int, rng *rand.Rand) []Point {
	if width <= 0 || height <= 0 {
		return nil
	}

	mid := float64(height) / 2
	points := make([]Point, width)
	for x := 0; x < width; x++ {
		t := float64(x) / float64(width)
		withMiner := rng.Float64() < MinerProbability
		terms := ColumnTerms(t, elapsed, freqMHz, height, withMiner)
		points[x] = Point{X: x, Y: mid - terms.Sum()}
	}
	return points
}

// Baseline is the flat centre line shown when no scan is running.
func Baseline(width, height int) []Point {
	if width <= 0 || height <= 0 {
		return nil
	}

	mid := float64(height) / 2
	points := make([]Point, width)
	for x := range points {
		points[x] = Point{X: x, Y: mid}
	}
	return points
}

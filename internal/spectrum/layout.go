package spectrum

import (
	"math"

	"miner-radar.klederson.com/internal/config"
)

// Margins reserve room around the plot area for axis labels. Units are
// whatever the surface uses: cells for the terminal, pixels for images.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Tick is one gridline: its data value and its position on the surface.
type Tick struct {
	Value float64
	Pos   float64
}

// Layout maps frequency and amplitude onto a drawing surface. The
// frequency window is centred on the base frequency; amplitude always
// spans 0..config.SpectrumMaxAmp.
type Layout struct {
	Width, Height float64
	Margins       Margins
	MinFreq       float64
	MaxFreq       float64
}

// NewLayout builds the layout for a surface of the given size.
func NewLayout(base, width, height float64, m Margins) Layout {
	return Layout{
		Width:   width,
		Height:  height,
		Margins: m,
		MinFreq: base - config.SpectrumHalfSpan,
		MaxFreq: base + config.SpectrumHalfSpan,
	}
}

// Left, Right, Top and Bottom bound the plot area. Bottom is the frequency
// axis, Left the amplitude axis.
func (l Layout) Left() float64   { return l.Margins.Left }
func (l Layout) Right() float64  { return l.Width - l.Margins.Right }
func (l Layout) Top() float64    { return l.Margins.Top }
func (l Layout) Bottom() float64 { return l.Height - l.Margins.Bottom }

// X maps a frequency to a horizontal position. Values outside the window
// map outside the plot area. When the window collapses, which happens once
// the base frequency is too large for float64 to resolve the span, every
// frequency maps to the middle of the plot.
func (l Layout) X(freq float64) float64 {
	span := l.MaxFreq - l.MinFreq
	if !(span > 0) || math.IsInf(span, 0) {
		return (l.Left() + l.Right()) / 2
	}
	return l.Left() + (l.Right()-l.Left())*(freq-l.MinFreq)/span
}

// Y maps an amplitude to a vertical position, growing upward from the axis.
func (l Layout) Y(amp float64) float64 {
	return l.Bottom() - (l.Bottom()-l.Top())*amp/config.SpectrumMaxAmp
}

// FrequencyTicks returns the vertical gridlines, including both window
// edges.
func (l Layout) FrequencyTicks() []Tick {
	steps := config.SpectrumFreqSteps
	ticks := make([]Tick, 0, steps+1)
	for i := 0; i <= steps; i++ {
		f := l.MinFreq + (l.MaxFreq-l.MinFreq)*float64(i)/float64(steps)
		ticks = append(ticks, Tick{Value: f, Pos: l.X(f)})
	}
	return ticks
}

// AmplitudeTicks returns the horizontal gridlines from 0 up to the maximum.
func (l Layout) AmplitudeTicks() []Tick {
	steps := config.SpectrumAmpSteps
	ticks := make([]Tick, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := config.SpectrumMaxAmp * float64(i) / float64(steps)
		ticks = append(ticks, Tick{Value: a, Pos: l.Y(a)})
	}
	return ticks
}

package waveform

import "time"

// Animator tracks the recurring redraw task of the waveform display.
// At most one frame chain is live; each chain carries the generation it
// was started with, and Stop bumps the generation so a frame already in
// flight is rejected by Accept.
type Animator struct {
	origin     time.Time
	now        func() time.Time
	active     bool
	generation uint64
}

// NewAnimator creates an idle animator. Elapsed time is measured from
// creation, so the curve phase keeps advancing across stop/start cycles.
// A nil clock uses time.Now.
func NewAnimator(now func() time.Time) *Animator {
	if now == nil {
		now = time.Now
	}
	return &Animator{origin: now(), now: now}
}

// Start activates the animation. It returns the generation for the new
// frame chain and true, or the current generation and false if a chain is
// already running.
func (a *Animator) Start() (uint64, bool) {
	if a.active {
		return a.generation, false
	}
	a.active = true
	a.generation++
	return a.generation, true
}

// Stop deactivates the animation and invalidates the running chain.
func (a *Animator) Stop() {
	if !a.active {
		return
	}
	a.active = false
	a.generation++
}

// Accept reports whether a frame of the given generation should be drawn
// and rescheduled.
func (a *Animator) Accept(generation uint64) bool {
	return a.active && generation == a.generation
}

// Active reports whether frames are being produced.
func (a *Animator) Active() bool {
	return a.active
}

// Elapsed returns the animation clock in seconds.
func (a *Animator) Elapsed() float64 {
	return a.now().Sub(a.origin).Seconds()
}

package app

// FrameMsg triggers a waveform redraw. Frames from a stopped animation
// carry an outdated generation and are dropped.
type FrameMsg struct {
	Gen uint64
}

// runMsg delivers a scheduled callback to Update.
type runMsg struct {
	fn func()
}

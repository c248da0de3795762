package config

import "time"

const (
	// Session defaults
	DefaultFrequency = 900.0 // MHz
	DefaultThreshold = 70.0  // Suspicion percent
	MinFrequency     = 100.0 // Lower bound of the frequency control (MHz)
	MaxFrequency     = 2000.0
	MinThreshold     = 0.0
	MaxThreshold     = 100.0
	ThresholdStep    = 1.0
	FrequencyStep    = 1.0  // +/- keys
	FrequencyJump    = 10.0 // shift +/- keys

	// Simulated detection
	ScanDelay = 3 * time.Second // Latency between scan start and detection batch

	// Waveform display
	TargetFPS = 30 // Animation frames per second while scanning

	// Spectrum display
	SpectrumHalfSpan  = 10.0 // MHz shown either side of the base frequency
	SpectrumFreqSteps = 5
	SpectrumAmpSteps  = 4
	SpectrumMaxAmp    = 100.0

	// Notifications
	ToastDuration = 4 * time.Second
	MaxToasts     = 4

	// Scan trend sparkline
	TrendCapacity = 32

	// Report export
	ExportWidth  = 900 // PNG width in pixels
	ExportHeight = 360

	// App
	AppName    = "MINER-RADAR"
	AppVersion = "1.0"
)

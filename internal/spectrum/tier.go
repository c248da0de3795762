package spectrum

// Suspicion tiers used for colouring. They are fixed and do not follow the
// user's alert threshold.
const (
	HighAbove    = 80.0
	CautionAbove = 60.0
)

// Tier is the colour class of a detected signal.
type Tier int

const (
	TierNormal Tier = iota
	TierCaution
	TierHigh
)

// TierOf classifies a suspicion level. Bounds are exclusive, so exactly 80
// is caution and exactly 60 is normal.
func TierOf(suspicion float64) Tier {
	switch {
	case suspicion > HighAbove:
		return TierHigh
	case suspicion > CautionAbove:
		return TierCaution
	default:
		return TierNormal
	}
}

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierCaution:
		return "caution"
	default:
		return "normal"
	}
}

// Hex returns the tier colour as #rrggbb.
func (t Tier) Hex() string {
	switch t {
	case TierHigh:
		return "#ef4444"
	case TierCaution:
		return "#f97316"
	default:
		return "#3b82f6"
	}
}

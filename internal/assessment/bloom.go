package assessment

import "fmt"

// BloomLevel is the cognitive demand category of a problem, ordered from
// lowest (Remember) to highest (Create).
type BloomLevel int

const (
	BloomRemember BloomLevel = iota
	BloomUnderstand
	BloomApply
	BloomAnalyze
	BloomEvaluate
	BloomCreate
)

// AllBloomLevels returns the six levels in taxonomy order.
func AllBloomLevels() []BloomLevel {
	return []BloomLevel{
		BloomRemember,
		BloomUnderstand,
		BloomApply,
		BloomAnalyze,
		BloomEvaluate,
		BloomCreate,
	}
}

// String returns the canonical lowercase name used in input files.
func (b BloomLevel) String() string {
	switch b {
	case BloomRemember:
		return "remember"
	case BloomUnderstand:
		return "understand"
	case BloomApply:
		return "apply"
	case BloomAnalyze:
		return "analyze"
	case BloomEvaluate:
		return "evaluate"
	case BloomCreate:
		return "create"
	default:
		return fmt.Sprintf("bloom(%d)", int(b))
	}
}

// DisplayName returns a human-readable label for the level.
func (b BloomLevel) DisplayName() string {
	switch b {
	case BloomRemember:
		return "Remember"
	case BloomUnderstand:
		return "Understand"
	case BloomApply:
		return "Apply"
	case BloomAnalyze:
		return "Analyze"
	case BloomEvaluate:
		return "Evaluate"
	case BloomCreate:
		return "Create"
	default:
		return b.String()
	}
}

// Difficulty maps the level to its difficulty scalar on the same [0,1]
// scale as learner ability traits.
func (b BloomLevel) Difficulty() float64 {
	switch b {
	case BloomRemember:
		return 0.10
	case BloomUnderstand:
		return 0.25
	case BloomApply:
		return 0.45
	case BloomAnalyze:
		return 0.62
	case BloomEvaluate:
		return 0.80
	case BloomCreate:
		return 0.95
	default:
		return 0.45
	}
}

// ParseBloomLevel parses a canonical level name.
func ParseBloomLevel(s string) (BloomLevel, error) {
	for _, b := range AllBloomLevels() {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown bloom level %q", s)
}

// NearestLevel returns the level whose difficulty scalar is closest to the
// given ability value. Ties resolve to the lower level.
func NearestLevel(ability float64) BloomLevel {
	best := BloomRemember
	bestGap := ability - best.Difficulty()
	if bestGap < 0 {
		bestGap = -bestGap
	}
	for _, b := range AllBloomLevels()[1:] {
		gap := ability - b.Difficulty()
		if gap < 0 {
			gap = -gap
		}
		if gap < bestGap {
			best = b
			bestGap = gap
		}
	}
	return best
}

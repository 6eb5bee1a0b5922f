package assessment

// Problem is a single assessment item as produced by the upstream
// classifier. The engine treats problems as read-only.
type Problem struct {
	// ID is the stable problem identifier assigned upstream.
	ID string

	// Prompt is the problem text. Used only for evidence strings.
	Prompt string

	// Bloom is the classified cognitive demand level.
	Bloom BloomLevel

	// LinguisticComplexity scores the reading load of the prompt in [0,1].
	LinguisticComplexity float64

	// EstimatedMinutes is the author's estimated completion time.
	EstimatedMinutes float64

	// ReasoningSteps counts the distinct reasoning steps required.
	ReasoningSteps int
}

// GradeBand is a coarse grouping of grade levels used to center the
// synthetic population's ability traits.
type GradeBand string

const (
	GradeBandK2   GradeBand = "K-2"
	GradeBand35   GradeBand = "3-5"
	GradeBand68   GradeBand = "6-8"
	GradeBand910  GradeBand = "9-10"
	GradeBand1112 GradeBand = "11-12"
)

// AllGradeBands returns the known bands in ascending order.
func AllGradeBands() []GradeBand {
	return []GradeBand{GradeBandK2, GradeBand35, GradeBand68, GradeBand910, GradeBand1112}
}

// AbilityCenter returns the population ability center for the band.
// Unmapped bands fall back to 0.70.
func (g GradeBand) AbilityCenter() float64 {
	switch g {
	case GradeBandK2:
		return 0.50
	case GradeBand35:
		return 0.55
	case GradeBand68:
		return 0.65
	case GradeBand910:
		return 0.75
	case GradeBand1112:
		return 0.80
	default:
		return 0.70
	}
}

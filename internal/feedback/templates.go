// Package feedback converts detected clusters into a ranked list of
// actionable revision recommendations.
package feedback

import "github.com/abhisek/preflight/internal/clusters"

// Priority buckets a severity score.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Severity cutoffs for priority assignment.
const (
	highSeverity   = 0.75
	mediumSeverity = 0.45
)

// PriorityFor maps a severity to its priority bucket.
func PriorityFor(severity float64) Priority {
	switch {
	case severity >= highSeverity:
		return PriorityHigh
	case severity >= mediumSeverity:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// template is the fixed recommendation content for one cluster type.
type template struct {
	category       string
	recommendation string
	actions        []string
}

// templateFor returns the hardcoded template for a cluster type. One
// template exists per type in the taxonomy.
func templateFor(t clusters.Type) template {
	switch t {
	case clusters.TypeConfusion:
		return template{
			category:       "Clarity",
			recommendation: "A run of consecutive problems is confusing the population. Reword the prompts, shorten sentences, or break each problem into smaller parts.",
			actions: []string{
				"Simplify vocabulary in the flagged prompts",
				"Split multi-clause sentences",
				"Add a worked example before the run",
			},
		}
	case clusters.TypeFatigue:
		return template{
			category:       "Pacing",
			recommendation: "Fatigue accelerates sharply in this region. Insert a lighter problem or a natural break before the flagged stretch.",
			actions: []string{
				"Move a low-demand problem into the flagged region",
				"Reduce the reasoning-step count of adjacent problems",
			},
		}
	case clusters.TypeFailure:
		return template{
			category:       "Difficulty",
			recommendation: "These problems fail far more of the population than the rest of the assessment. Check them for missing prerequisites or an unintended difficulty spike.",
			actions: []string{
				"Verify the cognitive-level classification of each flagged problem",
				"Add scaffolding or an easier lead-in problem",
			},
		}
	case clusters.TypeMismatch:
		return template{
			category:       "Alignment",
			recommendation: "The cognitive demand of these problems does not match what this grade band can carry. Re-level them toward the population's capability.",
			actions: []string{
				"Lower (or raise) the Bloom level of the flagged problems",
				"Re-check the grade band assigned to the assessment",
			},
		}
	case clusters.TypeTime:
		return template{
			category:       "Timing",
			recommendation: "These problems consume far more time than the rest of the assessment and will crowd out later items. Trim them or adjust the time target.",
			actions: []string{
				"Reduce reasoning steps or prompt length on the flagged problems",
				"Increase the assessment time target",
			},
		}
	default:
		return template{
			category:       "Review",
			recommendation: "Review the flagged problems manually.",
		}
	}
}

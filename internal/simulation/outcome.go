package simulation

import (
	"github.com/abhisek/preflight/internal/assessment"
	"github.com/abhisek/preflight/internal/population"
)

// Confusion is a three-level confusion category.
type Confusion string

const (
	ConfusionLow    Confusion = "low"
	ConfusionMedium Confusion = "medium"
	ConfusionHigh   Confusion = "high"
)

// Engagement is a three-level engagement category.
type Engagement string

const (
	EngagementLow    Engagement = "low"
	EngagementMedium Engagement = "medium"
	EngagementHigh   Engagement = "high"
)

// MismatchSeverity grades the gap between learner capability and problem
// demand.
type MismatchSeverity string

const (
	MismatchNone   MismatchSeverity = "none"
	MismatchMild   MismatchSeverity = "mild"
	MismatchSevere MismatchSeverity = "severe"
)

// BloomMismatch describes a capability/demand gap for one outcome.
type BloomMismatch struct {
	LearnerLevel assessment.BloomLevel
	ProblemLevel assessment.BloomLevel
	Severity     MismatchSeverity
}

// Outcome is the simulated result of one (learner, problem) pair.
// Produced once, never mutated.
type Outcome struct {
	ProblemID       string
	Seconds         float64
	SuccessPct      float64 // 0-100
	ConfusionIndex  float64
	Confusion       Confusion
	EngagementScore float64 // 0-1
	Engagement      Engagement
	Feedback        string
	Mismatch        *BloomMismatch // nil when severity would be "none"
	Fatigue         float64        // cumulative fatigue when the problem was attempted
}

// Trajectory captures a metric sampled at the start, middle and end of
// the assessment, plus its direction.
type Trajectory struct {
	Initial  float64
	Midpoint float64
	Final    float64
	Trend    string // "rising", "steady" or "declining"
}

// FatigueTrajectory captures fatigue at the start, its peak, and the end.
type FatigueTrajectory struct {
	Initial float64
	Peak    float64
	Final   float64
}

// LearnerSummary is the per-learner rollup over the whole assessment.
type LearnerSummary struct {
	Learner          population.Learner
	TotalSeconds     float64
	Score            float64 // 0-100, mean of outcome success percentages
	Grade            string  // A-F
	Outcomes         []Outcome
	Engagement       Trajectory
	Fatigue          FatigueTrajectory
	HighConfusionIDs []string
	AtRisk           bool // Score < 60
}

// Grade maps an estimated score to a letter grade using fixed cutoffs.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// Category bucket boundaries shared by confusion and engagement.
const (
	bucketLow  = 0.33
	bucketHigh = 0.66
)

// ConfusionBucket buckets a confusion index into the three categories.
func ConfusionBucket(index float64) Confusion {
	switch {
	case index < bucketLow:
		return ConfusionLow
	case index < bucketHigh:
		return ConfusionMedium
	default:
		return ConfusionHigh
	}
}

// EngagementBucket buckets an engagement score into the three categories.
func EngagementBucket(score float64) Engagement {
	switch {
	case score < bucketLow:
		return EngagementLow
	case score < bucketHigh:
		return EngagementMedium
	default:
		return EngagementHigh
	}
}

// ConfusionValue maps a confusion category back to a numeric value for
// population averaging.
func ConfusionValue(c Confusion) float64 {
	switch c {
	case ConfusionLow:
		return 0.2
	case ConfusionMedium:
		return 0.5
	default:
		return 0.8
	}
}

// Package metrics collapses per-learner simulation results into
// per-problem population statistics.
package metrics

import (
	"github.com/abhisek/preflight/internal/assessment"
	"github.com/abhisek/preflight/internal/simulation"
)

// ProblemMetrics is the population aggregate for one problem.
type ProblemMetrics struct {
	ProblemID string
	Index     int // position in the input problem list

	MeanSuccess   float64 // fraction 0-1
	MeanSeconds   float64
	MeanConfusion float64 // categorical values averaged (0.2/0.5/0.8)
	MismatchRate  float64 // fraction of learners with a severe mismatch
	FatigueRate   float64 // fraction of learners with low engagement
}

// Aggregate computes one ProblemMetrics per input problem, in input
// order. A problem with no matching outcomes is skipped rather than
// reported as an error.
func Aggregate(problems []assessment.Problem, summaries []simulation.LearnerSummary) []ProblemMetrics {
	out := make([]ProblemMetrics, 0, len(problems))

	for i, p := range problems {
		var (
			n          int
			successSum float64
			secondsSum float64
			confSum    float64
			mismatches int
			lowEngaged int
		)

		for _, s := range summaries {
			for _, o := range s.Outcomes {
				if o.ProblemID != p.ID {
					continue
				}
				n++
				successSum += o.SuccessPct / 100
				secondsSum += o.Seconds
				confSum += simulation.ConfusionValue(o.Confusion)
				if o.Mismatch != nil && o.Mismatch.Severity == simulation.MismatchSevere {
					mismatches++
				}
				if o.Engagement == simulation.EngagementLow {
					lowEngaged++
				}
			}
		}

		if n == 0 {
			continue
		}

		fn := float64(n)
		out = append(out, ProblemMetrics{
			ProblemID:     p.ID,
			Index:         i,
			MeanSuccess:   successSum / fn,
			MeanSeconds:   secondsSum / fn,
			MeanConfusion: confSum / fn,
			MismatchRate:  float64(mismatches) / fn,
			FatigueRate:   float64(lowEngaged) / fn,
		})
	}

	return out
}

// SuccessSeries extracts the mean-success series in metric order.
func SuccessSeries(ms []ProblemMetrics) []float64 {
	return series(ms, func(m ProblemMetrics) float64 { return m.MeanSuccess })
}

// ConfusionSeries extracts the mean-confusion series in metric order.
func ConfusionSeries(ms []ProblemMetrics) []float64 {
	return series(ms, func(m ProblemMetrics) float64 { return m.MeanConfusion })
}

// SecondsSeries extracts the mean-time series in metric order.
func SecondsSeries(ms []ProblemMetrics) []float64 {
	return series(ms, func(m ProblemMetrics) float64 { return m.MeanSeconds })
}

// MismatchSeries extracts the mismatch-rate series in metric order.
func MismatchSeries(ms []ProblemMetrics) []float64 {
	return series(ms, func(m ProblemMetrics) float64 { return m.MismatchRate })
}

// FatigueSeries extracts the fatigue-contribution series in metric order.
func FatigueSeries(ms []ProblemMetrics) []float64 {
	return series(ms, func(m ProblemMetrics) float64 { return m.FatigueRate })
}

func series(ms []ProblemMetrics, f func(ProblemMetrics) float64) []float64 {
	vals := make([]float64, len(ms))
	for i, m := range ms {
		vals[i] = f(m)
	}
	return vals
}

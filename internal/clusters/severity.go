package clusters

import "github.com/abhisek/preflight/internal/metrics"

// Severity weights: a four-problem run carries full length weight, and
// both weights floor at 0.5 so a short, narrow cluster still surfaces if
// its magnitude is extreme.
const fullLengthRun = 4.0

// Score computes the normalized [0,1] severity of a cluster.
//
// Magnitude is the excess of the cluster's mean confusion over the whole
// population's mean confusion, normalized by the standard deviation
// re-derived over the cluster subset (not the detection-time global σ).
// A zero-variance subset scores zero rather than propagating NaN.
func Score(c Cluster, ms []metrics.ProblemMetrics, populationSize int) float64 {
	byID := make(map[string]metrics.ProblemMetrics, len(ms))
	for _, m := range ms {
		byID[m.ProblemID] = m
	}

	subset := make([]float64, 0, len(c.ProblemIDs))
	for _, id := range c.ProblemIDs {
		if m, ok := byID[id]; ok {
			subset = append(subset, m.MeanConfusion)
		}
	}
	if len(subset) == 0 {
		return 0
	}

	subsetTh := Derive(subset)
	if subsetTh.Std == 0 {
		return 0
	}
	fullMean := Derive(metrics.ConfusionSeries(ms)).Mean

	magnitude := clamp01((subsetTh.Mean - fullMean) / (2 * subsetTh.Std))

	lengthWeight := float64(len(subset)) / fullLengthRun
	if lengthWeight > 1 {
		lengthWeight = 1
	}

	var impactWeight float64
	if populationSize > 0 {
		impactWeight = float64(c.AffectedLearners) / float64(populationSize)
	}

	return clamp01(magnitude * (0.5 + 0.5*lengthWeight) * (0.5 + 0.5*impactWeight))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Package clusters derives data-driven anomaly thresholds from metric
// series and scans the problem sequence for failure-mode clusters.
package clusters

import "math"

// Threshold multipliers over the series standard deviation.
const (
	elevatedSigma = 0.75
	severeSigma   = 1.25
)

// Thresholds holds mean/σ-based cutoffs derived from one metric series.
// Derived per detection pass, never stored.
type Thresholds struct {
	Mean     float64
	Std      float64
	Elevated float64 // Mean + 0.75σ
	Severe   float64 // Mean + 1.25σ
}

// Derive computes thresholds for a series. A degenerate series (empty or
// zero variance) yields thresholds equal to the mean so callers never
// divide by zero or compare against NaN.
func Derive(series []float64) Thresholds {
	if len(series) == 0 {
		return Thresholds{}
	}

	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(len(series))

	var sqSum float64
	for _, v := range series {
		d := v - mean
		sqSum += d * d
	}
	std := math.Sqrt(sqSum / float64(len(series)))

	t := Thresholds{Mean: mean, Std: std}
	if std == 0 {
		t.Elevated = mean
		t.Severe = mean
		return t
	}
	t.Elevated = mean + elevatedSigma*std
	t.Severe = mean + severeSigma*std
	return t
}

// firstDifferences returns the slope series v[i+1]-v[i]. Length is one
// less than the input; empty for inputs shorter than two.
func firstDifferences(series []float64) []float64 {
	if len(series) < 2 {
		return nil
	}
	diffs := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		diffs[i-1] = series[i] - series[i-1]
	}
	return diffs
}

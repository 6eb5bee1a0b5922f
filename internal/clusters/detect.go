package clusters

import (
	"fmt"

	"github.com/abhisek/preflight/internal/metrics"
	"github.com/abhisek/preflight/internal/simulation"
)

// failureSigma is how far below the mean a success rate must fall to be
// flagged as a failure point.
const failureSigma = 1.0

// minConfusionRun is the shortest run of elevated-confusion problems
// reported as a cluster.
const minConfusionRun = 2

// Detect runs every detection rule against the aggregated metrics and
// returns the clusters found, in a fixed rule order: confusion runs,
// fatigue acceleration, high failure, bloom mismatch, pacing. Detection
// never fails; degenerate series simply produce no clusters.
func Detect(ms []metrics.ProblemMetrics, summaries []simulation.LearnerSummary) []Cluster {
	var out []Cluster
	out = append(out, detectConfusionRuns(ms, summaries)...)
	if c, ok := detectFatigueAcceleration(ms, summaries); ok {
		out = append(out, c)
	}
	if c, ok := detectHighFailure(ms, summaries); ok {
		out = append(out, c)
	}
	if c, ok := detectMismatch(ms, summaries); ok {
		out = append(out, c)
	}
	if c, ok := detectPacing(ms, summaries); ok {
		out = append(out, c)
	}

	for i := range out {
		out[i].Severity = Score(out[i], ms, len(summaries))
	}
	return out
}

// detectConfusionRuns emits one cluster per contiguous run (length >= 2)
// of problems whose mean confusion exceeds the elevated threshold.
func detectConfusionRuns(ms []metrics.ProblemMetrics, summaries []simulation.LearnerSummary) []Cluster {
	th := Derive(metrics.ConfusionSeries(ms))
	if th.Std == 0 {
		return nil
	}

	var (
		out      []Cluster
		runStart = -1
	)
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		length := end - runStart + 1
		if length >= minConfusionRun {
			out = append(out, buildRunCluster(TypeConfusion, ms, runStart, end, th, summaries))
		}
		runStart = -1
	}

	for i, m := range ms {
		if m.MeanConfusion > th.Elevated {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i - 1)
	}
	flush(len(ms) - 1)
	return out
}

func buildRunCluster(
	t Type,
	ms []metrics.ProblemMetrics,
	start, end int,
	th Thresholds,
	summaries []simulation.LearnerSummary,
) Cluster {
	ids := make([]string, 0, end-start+1)
	var confSum float64
	for i := start; i <= end; i++ {
		ids = append(ids, ms[i].ProblemID)
		confSum += ms[i].MeanConfusion
	}
	runMean := confSum / float64(end-start+1)

	return Cluster{
		Type:       t,
		ProblemIDs: ids,
		Start:      start,
		End:        end,
		AffectedLearners: countAffected(summaries, ids, func(s simulation.LearnerSummary, o simulation.Outcome) bool {
			return o.Confusion == simulation.ConfusionHigh
		}),
		Evidence: fmt.Sprintf(
			"problems %d-%d averaged %.2f confusion against a population mean of %.2f",
			start+1, end+1, runMean, th.Mean),
	}
}

// detectFatigueAcceleration looks for a severe jump in the
// fatigue-contribution slope. Thresholds are derived on the slope series,
// not the raw series.
func detectFatigueAcceleration(ms []metrics.ProblemMetrics, summaries []simulation.LearnerSummary) (Cluster, bool) {
	slopes := firstDifferences(metrics.FatigueSeries(ms))
	th := Derive(slopes)
	if th.Std == 0 {
		return Cluster{}, false
	}

	minIdx, maxIdx := -1, -1
	for i, s := range slopes {
		if s > th.Severe {
			if minIdx < 0 {
				minIdx = i
			}
			maxIdx = i
		}
	}
	if minIdx < 0 {
		return Cluster{}, false
	}

	// Slope i spans problems i and i+1.
	start, end := minIdx, maxIdx+1
	ids := idsBetween(ms, start, end)
	return Cluster{
		Type:       TypeFatigue,
		ProblemIDs: ids,
		Start:      start,
		End:        end,
		AffectedLearners: countAffected(summaries, ids, func(s simulation.LearnerSummary, o simulation.Outcome) bool {
			return o.Engagement == simulation.EngagementLow
		}),
		Evidence: fmt.Sprintf(
			"fatigue contribution accelerated sharply between problems %d and %d",
			start+1, end+1),
	}, true
}

// detectHighFailure flags problems whose success rate falls more than one
// standard deviation below the population mean, covered by one cluster.
func detectHighFailure(ms []metrics.ProblemMetrics, summaries []simulation.LearnerSummary) (Cluster, bool) {
	th := Derive(metrics.SuccessSeries(ms))
	if th.Std == 0 {
		return Cluster{}, false
	}

	cutoff := th.Mean - failureSigma*th.Std
	c, ok := collectFlagged(TypeFailure, ms, func(m metrics.ProblemMetrics) bool {
		return m.MeanSuccess < cutoff
	})
	if !ok {
		return Cluster{}, false
	}
	c.AffectedLearners = countAffected(summaries, c.ProblemIDs, func(s simulation.LearnerSummary, o simulation.Outcome) bool {
		return o.SuccessPct < simulation.AtRiskScore
	})
	c.Evidence = fmt.Sprintf(
		"%d problem(s) scored below %.0f%% success (population mean %.0f%%)",
		len(c.ProblemIDs), cutoff*100, th.Mean*100)
	return c, true
}

// detectMismatch flags problems whose severe-mismatch rate exceeds the
// elevated threshold, covered by one cluster.
func detectMismatch(ms []metrics.ProblemMetrics, summaries []simulation.LearnerSummary) (Cluster, bool) {
	th := Derive(metrics.MismatchSeries(ms))
	if th.Std == 0 {
		return Cluster{}, false
	}

	c, ok := collectFlagged(TypeMismatch, ms, func(m metrics.ProblemMetrics) bool {
		return m.MismatchRate > th.Elevated
	})
	if !ok {
		return Cluster{}, false
	}
	c.AffectedLearners = countAffected(summaries, c.ProblemIDs, func(s simulation.LearnerSummary, o simulation.Outcome) bool {
		return o.Mismatch != nil && o.Mismatch.Severity == simulation.MismatchSevere
	})
	c.Evidence = fmt.Sprintf(
		"%d problem(s) show severe cognitive-level mismatch above the %.0f%% elevated rate",
		len(c.ProblemIDs), th.Elevated*100)
	return c, true
}

// detectPacing flags problems whose mean completion time exceeds the
// elevated threshold of the time series, covered by one "time" cluster.
func detectPacing(ms []metrics.ProblemMetrics, summaries []simulation.LearnerSummary) (Cluster, bool) {
	th := Derive(metrics.SecondsSeries(ms))
	if th.Std == 0 {
		return Cluster{}, false
	}

	c, ok := collectFlagged(TypeTime, ms, func(m metrics.ProblemMetrics) bool {
		return m.MeanSeconds > th.Elevated
	})
	if !ok {
		return Cluster{}, false
	}
	c.AffectedLearners = countAffected(summaries, c.ProblemIDs, func(s simulation.LearnerSummary, o simulation.Outcome) bool {
		return o.Seconds > th.Elevated
	})
	c.Evidence = fmt.Sprintf(
		"%d problem(s) averaged over %.0fs each, well above the %.0fs population mean",
		len(c.ProblemIDs), th.Elevated, th.Mean)
	return c, true
}

// collectFlagged builds a single cluster covering every metric matched by
// flag, spanning min..max matched index.
func collectFlagged(t Type, ms []metrics.ProblemMetrics, flag func(metrics.ProblemMetrics) bool) (Cluster, bool) {
	var (
		ids        []string
		start, end = -1, -1
	)
	for i, m := range ms {
		if !flag(m) {
			continue
		}
		if start < 0 {
			start = i
		}
		end = i
		ids = append(ids, m.ProblemID)
	}
	if start < 0 {
		return Cluster{}, false
	}
	return Cluster{Type: t, ProblemIDs: ids, Start: start, End: end}, true
}

func idsBetween(ms []metrics.ProblemMetrics, start, end int) []string {
	if end >= len(ms) {
		end = len(ms) - 1
	}
	ids := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		ids = append(ids, ms[i].ProblemID)
	}
	return ids
}

// countAffected counts learners with at least one outcome on the given
// problems satisfying cond.
func countAffected(
	summaries []simulation.LearnerSummary,
	ids []string,
	cond func(simulation.LearnerSummary, simulation.Outcome) bool,
) int {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	var n int
	for _, s := range summaries {
		for _, o := range s.Outcomes {
			if idSet[o.ProblemID] && cond(s, o) {
				n++
				break
			}
		}
	}
	return n
}

// Package engine orchestrates the full diagnostic simulation pipeline:
// population generation, performance simulation, metric aggregation,
// cluster detection, feedback ranking and chart rendering.
package engine

import (
	"fmt"

	"github.com/abhisek/preflight/internal/assessment"
	"github.com/abhisek/preflight/internal/charts"
	"github.com/abhisek/preflight/internal/clusters"
	"github.com/abhisek/preflight/internal/feedback"
	"github.com/abhisek/preflight/internal/metrics"
	"github.com/abhisek/preflight/internal/population"
	"github.com/abhisek/preflight/internal/simulation"
)

// Context is the generation context supplied alongside the problem list.
type Context struct {
	Subject           string               `json:"subject"`
	GradeBand         assessment.GradeBand `json:"gradeBand"`
	TimeTargetMinutes float64              `json:"timeTargetMinutes"`
}

// Input is everything a simulation run needs. Problems are read-only.
type Input struct {
	Problems []assessment.Problem
	Context  Context

	// PopulationSize defaults to population.DefaultSize when zero.
	PopulationSize int

	// Seed drives every random draw in the run. Identical seeds and
	// inputs produce byte-identical output.
	Seed int64
}

// RiskLevel classifies the overall health of the simulated assessment.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Mean-score cutoffs for overall risk.
const (
	lowRiskScore    = 75.0
	mediumRiskScore = 60.0
)

// Metadata summarizes the run.
type Metadata struct {
	PredictedTotalMinutes  float64   `json:"predictedTotalTime"`
	TimeTargetDeltaMinutes float64   `json:"timeTargetDelta"`
	OverallRisk            RiskLevel `json:"overallRiskLevel"`
	ClusterCount           int       `json:"clusterCount"`
}

// Visualizations holds the six named chart artifacts.
type Visualizations struct {
	Pacing              charts.Artifact `json:"pacing"`
	ConfusionHeatmap    charts.Artifact `json:"confusionHeatmap"`
	EngagementTrend     charts.Artifact `json:"engagementTrend"`
	MismatchBars        charts.Artifact `json:"mismatchBars"`
	FatigueCurve        charts.Artifact `json:"fatigueCurve"`
	SuccessDistribution charts.Artifact `json:"successDistribution"`
}

// Output is the full result envelope. It is always fully populated:
// either with real results or, after an internal failure, with the
// fallback content from Fallback.
type Output struct {
	RankedFeedback []feedback.Item `json:"rankedFeedback"`
	Visualizations Visualizations  `json:"visualizations"`
	Metadata       Metadata        `json:"metadata"`
}

// Run executes the pipeline. Panics from any stage are recovered here,
// and only here, and converted into the fallback envelope; individual
// stages stay recover-free.
func Run(in Input) (out Output) {
	defer func() {
		if r := recover(); r != nil {
			out = Fallback(in, fmt.Sprintf("%v", r))
		}
	}()
	return run(in)
}

func run(in Input) Output {
	size := in.PopulationSize
	if size <= 0 {
		size = population.DefaultSize
	}

	learners := population.NewGenerator(in.Seed).
		Generate(size, in.Context.GradeBand.AbilityCenter())
	summaries := simulation.Simulate(in.Problems, learners)
	ms := metrics.Aggregate(in.Problems, summaries)
	found := clusters.Detect(ms, summaries)
	ranked := feedback.Rank(found, ms, in.Problems, len(summaries))
	if ranked == nil {
		ranked = []feedback.Item{}
	}

	return Output{
		RankedFeedback: ranked,
		Visualizations: render(ms, summaries),
		Metadata:       buildMetadata(in, ms, summaries, len(found)),
	}
}

func render(ms []metrics.ProblemMetrics, summaries []simulation.LearnerSummary) Visualizations {
	return Visualizations{
		Pacing:              charts.Pacing(ms),
		ConfusionHeatmap:    charts.ConfusionHeatmap(ms),
		EngagementTrend:     charts.EngagementTrend(summaries),
		MismatchBars:        charts.MismatchBars(ms),
		FatigueCurve:        charts.FatigueCurve(summaries),
		SuccessDistribution: charts.SuccessDistribution(ms),
	}
}

func buildMetadata(in Input, ms []metrics.ProblemMetrics, summaries []simulation.LearnerSummary, clusterCount int) Metadata {
	var totalSecs float64
	for _, m := range ms {
		totalSecs += m.MeanSeconds
	}
	totalMins := totalSecs / 60

	return Metadata{
		PredictedTotalMinutes:  totalMins,
		TimeTargetDeltaMinutes: totalMins - in.Context.TimeTargetMinutes,
		OverallRisk:            riskLevel(summaries),
		ClusterCount:           clusterCount,
	}
}

// riskLevel classifies overall risk from the population's mean score.
// An empty population carries no evidence of risk.
func riskLevel(summaries []simulation.LearnerSummary) RiskLevel {
	if len(summaries) == 0 {
		return RiskLow
	}
	var sum float64
	for _, s := range summaries {
		sum += s.Score
	}
	switch mean := sum / float64(len(summaries)); {
	case mean >= lowRiskScore:
		return RiskLow
	case mean >= mediumRiskScore:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// Fallback builds the degenerate-but-valid envelope substituted when the
// pipeline fails: one low-priority "analysis incomplete" item and six
// placeholder charts.
func Fallback(in Input, reason string) Output {
	return Output{
		RankedFeedback: []feedback.Item{{
			Priority:       feedback.PriorityLow,
			Category:       "Analysis",
			Recommendation: "Analysis incomplete. Re-run the simulation; if the failure persists, check the input file for malformed problems.",
			Evidence:       reason,
		}},
		Visualizations: render(nil, nil),
		Metadata: Metadata{
			TimeTargetDeltaMinutes: -in.Context.TimeTargetMinutes,
			OverallRisk:            RiskLow,
		},
	}
}

package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/preflight/internal/assessment"
	"github.com/abhisek/preflight/internal/charts"
	"github.com/abhisek/preflight/internal/clusters"
	"github.com/abhisek/preflight/internal/feedback"
)

// confusionRunInput builds 10 problems alternating Remember/Create with a
// run of four consecutive Create problems of linguistic complexity 0.9 in
// the middle.
func confusionRunInput() Input {
	mk := func(id string, b assessment.BloomLevel, ling float64) assessment.Problem {
		return assessment.Problem{
			ID:                   id,
			Bloom:                b,
			LinguisticComplexity: ling,
			EstimatedMinutes:     1.5,
			ReasoningSteps:       2,
		}
	}

	problems := []assessment.Problem{
		mk("p01", assessment.BloomRemember, 0.1),
		mk("p02", assessment.BloomCreate, 0.1),
		mk("p03", assessment.BloomRemember, 0.1),
		mk("p04", assessment.BloomCreate, 0.9),
		mk("p05", assessment.BloomCreate, 0.9),
		mk("p06", assessment.BloomCreate, 0.9),
		mk("p07", assessment.BloomCreate, 0.9),
		mk("p08", assessment.BloomRemember, 0.1),
		mk("p09", assessment.BloomCreate, 0.1),
		mk("p10", assessment.BloomRemember, 0.1),
	}

	return Input{
		Problems:       problems,
		Context:        Context{Subject: "math", GradeBand: assessment.GradeBandK2, TimeTargetMinutes: 30},
		PopulationSize: 20,
		Seed:           42,
	}
}

func TestRunDetectsConfusionRun(t *testing.T) {
	out := Run(confusionRunInput())

	runIDs := map[string]bool{"p04": true, "p05": true, "p06": true, "p07": true}

	var found *feedback.Item
	for i := range out.RankedFeedback {
		item := &out.RankedFeedback[i]
		if item.Category != "Clarity" {
			continue
		}
		hits := 0
		for _, idx := range item.ProblemIndices {
			if runIDs[confusionRunInput().Problems[idx].ID] {
				hits++
			}
		}
		if hits >= 2 {
			found = item
			break
		}
	}

	require.NotNil(t, found, "expected a confusion cluster covering at least 2 of the hard run")
	assert.NotEmpty(t, found.Evidence)
	assert.NotEmpty(t, found.Actions)
}

func TestRunEmptyProblemList(t *testing.T) {
	out := Run(Input{
		Context: Context{GradeBand: assessment.GradeBand35, TimeTargetMinutes: 20},
		Seed:    1,
	})

	assert.Empty(t, out.RankedFeedback)
	assert.Equal(t, 0, out.Metadata.ClusterCount)
	assert.Equal(t, RiskHigh, out.Metadata.OverallRisk) // every score is zero

	for _, a := range allArtifacts(out.Visualizations) {
		if a.Title == "" {
			t.Errorf("artifact missing title: %+v", a)
		}
	}
	// Metric-driven charts must degrade to placeholders, never panic.
	assert.True(t, out.Visualizations.Pacing.Placeholder)
	assert.True(t, out.Visualizations.ConfusionHeatmap.Placeholder)
}

func TestRunDeterministic(t *testing.T) {
	in := confusionRunInput()

	a, err := json.Marshal(Run(in))
	require.NoError(t, err)
	b, err := json.Marshal(Run(in))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b), "same seed must produce byte-identical output")

	in2 := in
	in2.Seed = 43
	c, err := json.Marshal(Run(in2))
	require.NoError(t, err)
	assert.NotEqual(t, string(a), string(c), "different seeds should diverge")
}

func TestRunMetadata(t *testing.T) {
	in := confusionRunInput()
	out := Run(in)

	assert.Greater(t, out.Metadata.PredictedTotalMinutes, 0.0)
	assert.InDelta(t,
		out.Metadata.PredictedTotalMinutes-in.Context.TimeTargetMinutes,
		out.Metadata.TimeTargetDeltaMinutes, 1e-9)
	assert.Contains(t, []RiskLevel{RiskLow, RiskMedium, RiskHigh}, out.Metadata.OverallRisk)
	assert.GreaterOrEqual(t, out.Metadata.ClusterCount, 1,
		"the hard run should produce at least one cluster")
}

func TestRunRankingNonIncreasing(t *testing.T) {
	out := Run(confusionRunInput())
	for i := 1; i < len(out.RankedFeedback); i++ {
		if out.RankedFeedback[i-1].Severity < out.RankedFeedback[i].Severity {
			t.Fatalf("feedback not sorted at %d", i)
		}
	}
	for _, item := range out.RankedFeedback {
		if item.Severity < 0 || item.Severity > 1 {
			t.Fatalf("severity %f out of [0,1]", item.Severity)
		}
	}
}

func TestFallbackEnvelope(t *testing.T) {
	in := Input{Context: Context{TimeTargetMinutes: 25}}
	out := Fallback(in, "boom")

	require.Len(t, out.RankedFeedback, 1)
	assert.Equal(t, feedback.PriorityLow, out.RankedFeedback[0].Priority)
	assert.Contains(t, out.RankedFeedback[0].Recommendation, "Analysis incomplete")

	for _, a := range allArtifacts(out.Visualizations) {
		assert.True(t, a.Placeholder, "fallback chart %q should be a placeholder", a.Title)
	}
	assert.Equal(t, -25.0, out.Metadata.TimeTargetDeltaMinutes)
}

func TestClusterTaxonomyHasFiveTypes(t *testing.T) {
	assert.Len(t, clusters.AllTypes(), 5)
}

func allArtifacts(v Visualizations) []charts.Artifact {
	return []charts.Artifact{
		v.Pacing,
		v.ConfusionHeatmap,
		v.EngagementTrend,
		v.MismatchBars,
		v.FatigueCurve,
		v.SuccessDistribution,
	}
}

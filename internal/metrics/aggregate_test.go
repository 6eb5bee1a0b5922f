package metrics

import (
	"testing"

	"github.com/abhisek/preflight/internal/assessment"
	"github.com/abhisek/preflight/internal/population"
	"github.com/abhisek/preflight/internal/simulation"
)

func TestAggregateCardinalityAndOrder(t *testing.T) {
	problems := []assessment.Problem{
		{ID: "p1", Bloom: assessment.BloomRemember, EstimatedMinutes: 1},
		{ID: "p2", Bloom: assessment.BloomApply, EstimatedMinutes: 2},
		{ID: "p3", Bloom: assessment.BloomCreate, EstimatedMinutes: 3},
	}
	learners := population.NewGenerator(1).Generate(12, 0.6)
	summaries := simulation.Simulate(problems, learners)

	ms := Aggregate(problems, summaries)
	if len(ms) != len(problems) {
		t.Fatalf("got %d metrics, want %d", len(ms), len(problems))
	}
	for i, m := range ms {
		if m.ProblemID != problems[i].ID {
			t.Errorf("metric %d is for %q, want %q", i, m.ProblemID, problems[i].ID)
		}
		if m.Index != i {
			t.Errorf("metric %d has index %d", i, m.Index)
		}
		if m.MeanSuccess < 0 || m.MeanSuccess > 1 {
			t.Errorf("mean success %f out of [0,1]", m.MeanSuccess)
		}
		if m.MismatchRate < 0 || m.MismatchRate > 1 {
			t.Errorf("mismatch rate %f out of [0,1]", m.MismatchRate)
		}
		if m.FatigueRate < 0 || m.FatigueRate > 1 {
			t.Errorf("fatigue rate %f out of [0,1]", m.FatigueRate)
		}
		if m.MeanSeconds <= 0 {
			t.Errorf("mean seconds %f should be positive", m.MeanSeconds)
		}
	}
}

func TestAggregateSkipsUnansweredProblems(t *testing.T) {
	// A problem that never appears in any outcome is skipped, not reported.
	problems := []assessment.Problem{
		{ID: "answered", Bloom: assessment.BloomApply, EstimatedMinutes: 1},
		{ID: "phantom", Bloom: assessment.BloomApply, EstimatedMinutes: 1},
	}
	learners := population.NewGenerator(2).Generate(3, 0.6)
	summaries := simulation.Simulate(problems[:1], learners)

	ms := Aggregate(problems, summaries)
	if len(ms) != 1 {
		t.Fatalf("got %d metrics, want 1", len(ms))
	}
	if ms[0].ProblemID != "answered" {
		t.Errorf("kept metric is %q", ms[0].ProblemID)
	}
}

func TestAggregateEmptyInputs(t *testing.T) {
	if got := Aggregate(nil, nil); len(got) != 0 {
		t.Errorf("Aggregate(nil, nil) = %v, want empty", got)
	}
}

func TestAggregateConfusionUsesCategoricalValues(t *testing.T) {
	// A matched learner produces low confusion -> mean confusion 0.2.
	problems := []assessment.Problem{{ID: "p", Bloom: assessment.BloomApply, EstimatedMinutes: 1}}
	l := population.Learner{
		ID:     "l",
		Traits: population.Traits{Reasoning: 0.45, Confidence: 0.45},
	}
	summaries := simulation.Simulate(problems, []population.Learner{l})

	ms := Aggregate(problems, summaries)
	if len(ms) != 1 {
		t.Fatalf("got %d metrics", len(ms))
	}
	if ms[0].MeanConfusion != 0.2 {
		t.Errorf("mean confusion = %f, want 0.2", ms[0].MeanConfusion)
	}
}

func TestSeriesExtractors(t *testing.T) {
	ms := []ProblemMetrics{
		{MeanSuccess: 0.9, MeanConfusion: 0.2, MeanSeconds: 60, MismatchRate: 0.1, FatigueRate: 0.0},
		{MeanSuccess: 0.4, MeanConfusion: 0.8, MeanSeconds: 120, MismatchRate: 0.6, FatigueRate: 0.5},
	}

	checks := []struct {
		name string
		got  []float64
		want []float64
	}{
		{"success", SuccessSeries(ms), []float64{0.9, 0.4}},
		{"confusion", ConfusionSeries(ms), []float64{0.2, 0.8}},
		{"seconds", SecondsSeries(ms), []float64{60, 120}},
		{"mismatch", MismatchSeries(ms), []float64{0.1, 0.6}},
		{"fatigue", FatigueSeries(ms), []float64{0.0, 0.5}},
	}
	for _, c := range checks {
		if len(c.got) != len(c.want) {
			t.Fatalf("%s series length %d", c.name, len(c.got))
		}
		for i := range c.want {
			if c.got[i] != c.want[i] {
				t.Errorf("%s[%d] = %f, want %f", c.name, i, c.got[i], c.want[i])
			}
		}
	}
}

package report

import (
	"strings"
	"testing"

	"github.com/abhisek/preflight/internal/engine"
	"github.com/abhisek/preflight/internal/feedback"
)

func TestRenderPopulated(t *testing.T) {
	out := engine.Output{
		RankedFeedback: []feedback.Item{
			{
				Priority:       feedback.PriorityHigh,
				Category:       "Clarity",
				Recommendation: "Reword the prompts.",
				ProblemIndices: []int{3, 4, 5},
				Evidence:       "problems 4-6 averaged 0.81 confusion",
				Actions:        []string{"Simplify vocabulary"},
				Severity:       0.82,
			},
			{
				Priority:       feedback.PriorityLow,
				Category:       "Timing",
				Recommendation: "Trim the long problems.",
				ProblemIndices: []int{1, 7},
				Severity:       0.2,
			},
		},
		Metadata: engine.Metadata{
			PredictedTotalMinutes:  38.5,
			TimeTargetDeltaMinutes: 8.5,
			OverallRisk:            engine.RiskMedium,
			ClusterCount:           2,
		},
	}

	got := Render(out)
	for _, want := range []string{
		"Clarity", "Timing", "Reword the prompts.",
		"Recommendations (2)", "4-6", "Simplify vocabulary",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderEmptyFeedback(t *testing.T) {
	got := Render(engine.Output{Metadata: engine.Metadata{OverallRisk: engine.RiskLow}})
	if !strings.Contains(got, "No structural weaknesses detected.") {
		t.Error("empty report missing all-clear line")
	}
}

func TestFormatIndices(t *testing.T) {
	tests := []struct {
		in   []int
		want string
	}{
		{nil, ""},
		{[]int{4}, "5"},
		{[]int{3, 4, 5, 6}, "4-7"},
		{[]int{1, 4, 8}, "2, 5, 9"},
	}

	for _, tt := range tests {
		if got := formatIndices(tt.in); got != tt.want {
			t.Errorf("formatIndices(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

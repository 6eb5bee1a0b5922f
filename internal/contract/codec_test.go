package contract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abhisek/preflight/internal/assessment"
	"github.com/abhisek/preflight/internal/engine"
)

const validInput = `{
  "problems": [
    {
      "id": "q1",
      "prompt": "What is 7 x 8?",
      "bloom_level": "remember",
      "linguistic_complexity": 0.2,
      "estimated_minutes": 1,
      "reasoning_steps": 1
    },
    {
      "id": "q2",
      "bloom_level": "create",
      "linguistic_complexity": 0.8,
      "estimated_minutes": 4,
      "reasoning_steps": 5
    }
  ],
  "context": {
    "subject": "math",
    "grade_band": "3-5",
    "time_target_minutes": 30
  }
}`

func TestDecodeInputValid(t *testing.T) {
	problems, ctx, err := DecodeInput(strings.NewReader(validInput))
	if err != nil {
		t.Fatalf("DecodeInput: %v", err)
	}

	if len(problems) != 2 {
		t.Fatalf("got %d problems", len(problems))
	}
	if problems[0].ID != "q1" || problems[0].Bloom != assessment.BloomRemember {
		t.Errorf("problem 0 = %+v", problems[0])
	}
	if problems[1].Bloom != assessment.BloomCreate || problems[1].ReasoningSteps != 5 {
		t.Errorf("problem 1 = %+v", problems[1])
	}
	if ctx.GradeBand != assessment.GradeBand35 || ctx.TimeTargetMinutes != 30 {
		t.Errorf("context = %+v", ctx)
	}
}

func TestDecodeInputRejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"problems": [`},
		{"missing context", `{"problems": []}`},
		{"bad bloom level", strings.Replace(validInput, `"remember"`, `"memorize"`, 1)},
		{"complexity out of range", strings.Replace(validInput, `"linguistic_complexity": 0.2`, `"linguistic_complexity": 1.5`, 1)},
		{"negative minutes", strings.Replace(validInput, `"estimated_minutes": 1`, `"estimated_minutes": -1`, 1)},
		{"unknown field", strings.Replace(validInput, `"subject": "math"`, `"subject": "math", "extra": 1`, 1)},
		{"duplicate id", strings.Replace(validInput, `"id": "q2"`, `"id": "q1"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeInput(strings.NewReader(tt.input)); err == nil {
				t.Error("expected rejection")
			}
		})
	}
}

func TestDecodeInputEmptyProblemList(t *testing.T) {
	// An empty problem list is a valid (degenerate) input, not an error.
	input := `{"problems": [], "context": {"subject": "s", "grade_band": "6-8", "time_target_minutes": 10}}`
	problems, _, err := DecodeInput(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeInput: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("got %d problems", len(problems))
	}
}

func TestEncodeOutputRoundTrip(t *testing.T) {
	problems, ctx, err := DecodeInput(strings.NewReader(validInput))
	if err != nil {
		t.Fatal(err)
	}
	out := engine.Run(engine.Input{Problems: problems, Context: ctx, PopulationSize: 5, Seed: 9})

	var buf bytes.Buffer
	if err := EncodeOutput(&buf, out); err != nil {
		t.Fatalf("EncodeOutput: %v", err)
	}
	for _, key := range []string{"rankedFeedback", "visualizations", "metadata", "overallRiskLevel"} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("envelope missing %q", key)
		}
	}
}

package contract

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/preflight/internal/assessment"
	"github.com/abhisek/preflight/internal/engine"
)

// problemDTO mirrors one problems[] entry on the wire.
type problemDTO struct {
	ID                   string  `json:"id"`
	Prompt               string  `json:"prompt,omitempty"`
	BloomLevel           string  `json:"bloom_level"`
	LinguisticComplexity float64 `json:"linguistic_complexity"`
	EstimatedMinutes     float64 `json:"estimated_minutes"`
	ReasoningSteps       int     `json:"reasoning_steps"`
}

// contextDTO mirrors the context object on the wire.
type contextDTO struct {
	Subject           string  `json:"subject"`
	GradeBand         string  `json:"grade_band"`
	TimeTargetMinutes float64 `json:"time_target_minutes"`
}

type inputDTO struct {
	Problems []problemDTO `json:"problems"`
	Context  contextDTO   `json:"context"`
}

// DecodeInput reads, schema-validates and converts a simulation input
// file into typed engine records.
func DecodeInput(r io.Reader) ([]assessment.Problem, engine.Context, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, engine.Context{}, fmt.Errorf("read input: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, engine.Context{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateInput(parsed); err != nil {
		return nil, engine.Context{}, err
	}

	var dto inputDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, engine.Context{}, fmt.Errorf("decode input: %w", err)
	}

	problems := make([]assessment.Problem, 0, len(dto.Problems))
	seen := make(map[string]bool, len(dto.Problems))
	for i, p := range dto.Problems {
		if seen[p.ID] {
			return nil, engine.Context{}, fmt.Errorf("problem %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true

		bloom, err := assessment.ParseBloomLevel(p.BloomLevel)
		if err != nil {
			return nil, engine.Context{}, fmt.Errorf("problem %q: %w", p.ID, err)
		}
		problems = append(problems, assessment.Problem{
			ID:                   p.ID,
			Prompt:               p.Prompt,
			Bloom:                bloom,
			LinguisticComplexity: p.LinguisticComplexity,
			EstimatedMinutes:     p.EstimatedMinutes,
			ReasoningSteps:       p.ReasoningSteps,
		})
	}

	ctx := engine.Context{
		Subject:           dto.Context.Subject,
		GradeBand:         assessment.GradeBand(dto.Context.GradeBand),
		TimeTargetMinutes: dto.Context.TimeTargetMinutes,
	}
	return problems, ctx, nil
}

// EncodeOutput writes the result envelope as indented JSON.
func EncodeOutput(w io.Writer, out engine.Output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

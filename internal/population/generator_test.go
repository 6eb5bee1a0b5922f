package population

import (
	"reflect"
	"testing"
)

func TestGenerateCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{20, 20},
		{100, 100},
		{-5, 0},
	}

	for _, tt := range tests {
		got := NewGenerator(7).Generate(tt.n, 0.6)
		if len(got) != tt.want {
			t.Errorf("Generate(%d) returned %d learners, want %d", tt.n, len(got), tt.want)
		}
	}
}

func TestGenerateTraitBounds(t *testing.T) {
	// Extreme centers still clamp every trait into [0,1].
	for _, center := range []float64{0.0, 0.5, 1.0} {
		learners := NewGenerator(42).Generate(200, center)
		for _, l := range learners {
			for name, v := range map[string]float64{
				"reading":    l.Traits.Reading,
				"reasoning":  l.Traits.Reasoning,
				"numeracy":   l.Traits.Numeracy,
				"attention":  l.Traits.Attention,
				"confidence": l.Traits.Confidence,
			} {
				if v < 0 || v > 1 {
					t.Fatalf("center %.1f: trait %s = %f out of [0,1]", center, name, v)
				}
			}
		}
	}
}

func TestGenerateOverlays(t *testing.T) {
	learners := NewGenerator(3).Generate(200, 0.6)
	for _, l := range learners {
		if len(l.Overlays) > 3 {
			t.Fatalf("learner %s has %d overlays, max is 3", l.Name, len(l.Overlays))
		}
		seen := make(map[Overlay]bool)
		for _, o := range l.Overlays {
			if seen[o] {
				t.Fatalf("learner %s has duplicate overlay %s", l.Name, o)
			}
			seen[o] = true
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(99).Generate(30, 0.65)
	b := NewGenerator(99).Generate(30, 0.65)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different populations")
	}

	c := NewGenerator(100).Generate(30, 0.65)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical populations")
	}
}

func TestGenerateUniqueIDs(t *testing.T) {
	learners := NewGenerator(11).Generate(100, 0.6)
	seen := make(map[string]bool, len(learners))
	for _, l := range learners {
		if seen[l.ID] {
			t.Fatalf("duplicate learner id %s", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestOverlayCatalog(t *testing.T) {
	catalog := AllOverlays()
	if len(catalog) != 8 {
		t.Fatalf("expected 8 overlays, got %d", len(catalog))
	}
	for _, o := range catalog {
		if o.DisplayName() == string(o) {
			t.Errorf("overlay %s missing display name", o)
		}
		if o.Description() == "" {
			t.Errorf("overlay %s missing description", o)
		}
	}
}

func TestSuccessModifierDifficultySensitivity(t *testing.T) {
	// Anxiety punishes hard problems harder than easy ones.
	if OverlayAnxietyProne.SuccessModifier(0.9) >= OverlayAnxietyProne.SuccessModifier(0.1) {
		t.Error("anxiety modifier should shrink as difficulty rises")
	}
	// Giftedness is always a boost.
	for _, d := range []float64{0.1, 0.5, 0.95} {
		if OverlayGifted.SuccessModifier(d) <= 1.0 {
			t.Errorf("gifted modifier at difficulty %.2f should exceed 1.0", d)
		}
	}
}

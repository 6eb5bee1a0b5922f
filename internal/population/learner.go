package population

// Traits holds the five bounded ability traits of a synthetic learner.
// All values are in [0,1].
type Traits struct {
	Reading    float64
	Reasoning  float64
	Numeracy   float64
	Attention  float64
	Confidence float64
}

// Ability is the learner's performance proxy: the average of reasoning
// and confidence, on the same scale as problem difficulty.
func (t Traits) Ability() float64 {
	return (t.Reasoning + t.Confidence) / 2
}

// Learner is one generated persona. Learners are generated once per
// simulation run and read-only thereafter.
type Learner struct {
	ID       string
	Name     string
	Traits   Traits
	Overlays []Overlay
}

// HasOverlay reports whether the learner carries the given overlay.
func (l Learner) HasOverlay(o Overlay) bool {
	for _, have := range l.Overlays {
		if have == o {
			return true
		}
	}
	return false
}

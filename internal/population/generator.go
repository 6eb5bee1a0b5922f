package population

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// DefaultSize is the population size used when the caller does not set one.
const DefaultSize = 20

// Trait spreads for Gaussian jitter around the population center.
const (
	spreadReading    = 0.18
	spreadReasoning  = 0.20
	spreadNumeracy   = 0.18
	spreadAttention  = 0.15
	spreadConfidence = 0.20
)

// maxOverlays is the most overlays a single learner can carry.
const maxOverlays = 3

// personaNames seeds learner display names. Cycled with a numeric suffix
// when the population outgrows the list.
var personaNames = []string{
	"Avery", "Bianca", "Caleb", "Dario", "Elena", "Farah", "Gustavo",
	"Hana", "Imani", "Jonas", "Keiko", "Liam", "Mireille", "Nadia",
	"Omar", "Priya", "Quentin", "Rosa", "Samir", "Tess", "Umut",
	"Valeria", "Wren", "Ximena", "Yusuf", "Zara",
}

// Generator produces synthetic learner populations from a seeded source.
// Identical seeds yield identical populations.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator with its own PRNG state.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns exactly n learners whose traits are sampled around
// center with per-trait Gaussian jitter, clamped into [0,1]. Each learner
// gets 0-3 distinct overlays from the catalog.
func (g *Generator) Generate(n int, center float64) []Learner {
	if n < 0 {
		n = 0
	}
	learners := make([]Learner, 0, n)
	for i := 0; i < n; i++ {
		learners = append(learners, Learner{
			ID:   g.newID(),
			Name: g.personaName(i),
			Traits: Traits{
				Reading:    g.sampleTrait(center, spreadReading),
				Reasoning:  g.sampleTrait(center, spreadReasoning),
				Numeracy:   g.sampleTrait(center, spreadNumeracy),
				Attention:  g.sampleTrait(center, spreadAttention),
				Confidence: g.sampleTrait(center, spreadConfidence),
			},
			Overlays: g.sampleOverlays(),
		})
	}
	return learners
}

func (g *Generator) sampleTrait(center, spread float64) float64 {
	return clamp01(center + g.rng.NormFloat64()*spread)
}

// sampleOverlays draws a random count of distinct overlays.
func (g *Generator) sampleOverlays() []Overlay {
	count := g.rng.Intn(maxOverlays + 1)
	if count == 0 {
		return nil
	}
	catalog := AllOverlays()
	g.rng.Shuffle(len(catalog), func(i, j int) {
		catalog[i], catalog[j] = catalog[j], catalog[i]
	})
	return catalog[:count]
}

// newID draws a UUID from the seeded source so populations stay
// reproducible across runs with the same seed.
func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand.Read never fails; keep a defined value anyway.
		return uuid.Nil.String()
	}
	return id.String()
}

func (g *Generator) personaName(i int) string {
	name := personaNames[g.rng.Intn(len(personaNames))]
	return fmt.Sprintf("%s #%d", name, i+1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

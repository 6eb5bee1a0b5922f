package feedback

import (
	"sort"

	"github.com/abhisek/preflight/internal/assessment"
	"github.com/abhisek/preflight/internal/clusters"
	"github.com/abhisek/preflight/internal/metrics"
)

// Item is one ranked, human-readable recommendation.
type Item struct {
	Priority       Priority `json:"priority"`
	Category       string   `json:"category"`
	Recommendation string   `json:"recommendation"`
	ProblemIndices []int    `json:"problemIndices"` // positions in the original problem list
	Evidence       string   `json:"evidence"`
	Actions        []string `json:"actions,omitempty"`
	Severity       float64  `json:"severity"`
}

// Rank orders clusters by descending severity and renders one Item per
// cluster. Severity is recomputed through the scorer so ranking and
// reported severity always agree; ties keep detection order (stable sort).
func Rank(
	cls []clusters.Cluster,
	ms []metrics.ProblemMetrics,
	problems []assessment.Problem,
	populationSize int,
) []Item {
	indexByID := make(map[string]int, len(problems))
	for i, p := range problems {
		indexByID[p.ID] = i
	}

	scored := make([]clusters.Cluster, len(cls))
	copy(scored, cls)
	for i := range scored {
		scored[i].Severity = clusters.Score(scored[i], ms, populationSize)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Severity > scored[j].Severity
	})

	items := make([]Item, 0, len(scored))
	for _, c := range scored {
		tpl := templateFor(c.Type)

		indices := make([]int, 0, len(c.ProblemIDs))
		for _, id := range c.ProblemIDs {
			if idx, ok := indexByID[id]; ok {
				indices = append(indices, idx)
			}
		}

		items = append(items, Item{
			Priority:       PriorityFor(c.Severity),
			Category:       tpl.category,
			Recommendation: tpl.recommendation,
			ProblemIndices: indices,
			Evidence:       c.Evidence,
			Actions:        tpl.actions,
			Severity:       c.Severity,
		})
	}
	return items
}

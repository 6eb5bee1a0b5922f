package charts

import (
	"fmt"
	"math"

	"github.com/abhisek/preflight/internal/metrics"
	"github.com/abhisek/preflight/internal/simulation"
)

// fatigueCurveLearners caps how many learner series the fatigue curve
// carries. Learners are sampled evenly across the population.
const fatigueCurveLearners = 5

// Pacing renders mean completion time per problem position.
func Pacing(ms []metrics.ProblemMetrics) Artifact {
	if len(ms) == 0 {
		return placeholder("line", "Pacing Over Sequence")
	}

	points := make([]Point, len(ms))
	for i, m := range ms {
		points[i] = Point{X: float64(m.Index + 1), Y: math.Round(m.MeanSeconds)}
	}
	return Artifact{
		Kind:   "line",
		Title:  "Pacing Over Sequence",
		XLabel: "Problem",
		YLabel: "Mean seconds",
		Series: []Series{{Label: "mean time", Points: points}},
	}
}

// ConfusionHeatmap renders one hue-interpolated cell per problem, green
// at zero confusion through red at full confusion.
func ConfusionHeatmap(ms []metrics.ProblemMetrics) Artifact {
	if len(ms) == 0 {
		return placeholder("heatmap", "Confusion Heatmap")
	}

	cells := make([]Cell, len(ms))
	for i, m := range ms {
		cells[i] = Cell{
			X:     m.Index,
			Y:     0,
			Value: m.MeanConfusion,
			Color: confusionColor(m.MeanConfusion),
		}
	}
	return Artifact{
		Kind:   "heatmap",
		Title:  "Confusion Heatmap",
		XLabel: "Problem",
		YLabel: "Confusion",
		Cells:  cells,
	}
}

// EngagementTrend renders the three-point engagement trajectory for each
// grade cohort (A/B, C/D, F).
func EngagementTrend(summaries []simulation.LearnerSummary) Artifact {
	if len(summaries) == 0 {
		return placeholder("line", "Engagement Trend")
	}

	cohorts := map[string][]simulation.Trajectory{}
	for _, s := range summaries {
		cohorts[cohortFor(s.Grade)] = append(cohorts[cohortFor(s.Grade)], s.Engagement)
	}

	var series []Series
	for _, name := range []string{"strong", "middle", "struggling"} {
		trs := cohorts[name]
		if len(trs) == 0 {
			continue
		}
		var initial, mid, final float64
		for _, tr := range trs {
			initial += tr.Initial
			mid += tr.Midpoint
			final += tr.Final
		}
		n := float64(len(trs))
		series = append(series, Series{
			Label: name,
			Points: []Point{
				{X: 0, Y: initial / n},
				{X: 1, Y: mid / n},
				{X: 2, Y: final / n},
			},
		})
	}
	return Artifact{
		Kind:   "line",
		Title:  "Engagement Trend",
		XLabel: "Assessment phase",
		YLabel: "Engagement",
		Series: series,
	}
}

func cohortFor(grade string) string {
	switch grade {
	case "A", "B":
		return "strong"
	case "C", "D":
		return "middle"
	default:
		return "struggling"
	}
}

// MismatchBars renders the severe-mismatch rate per problem.
func MismatchBars(ms []metrics.ProblemMetrics) Artifact {
	if len(ms) == 0 {
		return placeholder("bar", "Bloom Mismatch Rate")
	}

	bars := make([]Bar, len(ms))
	for i, m := range ms {
		bars[i] = Bar{
			Label: fmt.Sprintf("P%d", m.Index+1),
			Value: m.MismatchRate,
		}
	}
	return Artifact{
		Kind:   "bar",
		Title:  "Bloom Mismatch Rate",
		XLabel: "Problem",
		YLabel: "Severe mismatch fraction",
		Bars:   bars,
	}
}

// FatigueCurve renders the cumulative-fatigue polyline for a sample of
// learners, one series each.
func FatigueCurve(summaries []simulation.LearnerSummary) Artifact {
	if len(summaries) == 0 {
		return placeholder("line", "Fatigue Curve")
	}

	step := len(summaries) / fatigueCurveLearners
	if step < 1 {
		step = 1
	}

	var series []Series
	for i := 0; i < len(summaries) && len(series) < fatigueCurveLearners; i += step {
		s := summaries[i]
		points := make([]Point, len(s.Outcomes))
		for j, o := range s.Outcomes {
			points[j] = Point{X: float64(j + 1), Y: o.Fatigue}
		}
		series = append(series, Series{Label: s.Learner.Name, Points: points})
	}
	return Artifact{
		Kind:   "line",
		Title:  "Fatigue Curve",
		XLabel: "Problem",
		YLabel: "Cumulative fatigue",
		Series: series,
	}
}

// SuccessDistribution renders the mean success rate per problem, colored
// by how healthy the rate is.
func SuccessDistribution(ms []metrics.ProblemMetrics) Artifact {
	if len(ms) == 0 {
		return placeholder("bar", "Success Distribution")
	}

	bars := make([]Bar, len(ms))
	for i, m := range ms {
		bars[i] = Bar{
			Label: fmt.Sprintf("P%d", m.Index+1),
			Value: m.MeanSuccess,
			Color: confusionColor(1 - m.MeanSuccess),
		}
	}
	return Artifact{
		Kind:   "bar",
		Title:  "Success Distribution",
		XLabel: "Problem",
		YLabel: "Mean success rate",
		Bars:   bars,
	}
}

// confusionColor interpolates hue from green (120°) at 0 to red (0°) at
// 1 and returns a hex color.
func confusionColor(v float64) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	hue := 120 * (1 - v)
	r, g, b := hslToRGB(hue, 0.70, 0.45)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// hslToRGB converts an HSL color (h in degrees, s/l in [0,1]) to 8-bit RGB.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return uint8(math.Round((r + m) * 255)),
		uint8(math.Round((g + m) * 255)),
		uint8(math.Round((b + m) * 255))
}

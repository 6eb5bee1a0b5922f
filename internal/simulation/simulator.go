package simulation

import (
	"fmt"

	"github.com/abhisek/preflight/internal/assessment"
	"github.com/abhisek/preflight/internal/population"
)

// Fatigue model constants.
const (
	// fatigueStep is added to a learner's cumulative fatigue after each
	// problem, before overlay rate adjustment. Fatigue is capped at 1.
	fatigueStep = 0.08

	// fatigueSuccessPenalty scales how much full fatigue depresses success.
	fatigueSuccessPenalty = 0.30

	// fatigueTimeInflation scales how much full fatigue inflates time.
	fatigueTimeInflation = 0.40

	// fatigueConfusionInflation scales how much full fatigue inflates the
	// confusion index.
	fatigueConfusionInflation = 0.50
)

// Time model constants. Base time is the problem's estimated minutes in
// seconds plus linear terms for linguistic complexity and step count.
const (
	complexityTimeSecs = 45.0
	stepTimeSecs       = 15.0
	minProblemSecs     = 10.0
)

// linguisticConfusionWeight is the contribution of prompt complexity to
// the confusion index.
const linguisticConfusionWeight = 0.30

// Mismatch gap cutoffs between learner ability and problem difficulty.
const (
	mismatchMildGap   = 0.15
	mismatchSevereGap = 0.30
)

// AtRiskScore is the estimated-score cutoff below which a learner is
// flagged at risk.
const AtRiskScore = 60.0

// Simulate walks every learner through the problem list in input order
// and returns one summary per learner, in learner order. Each learner is
// independent; fatigue never leaks between them.
func Simulate(problems []assessment.Problem, learners []population.Learner) []LearnerSummary {
	summaries := make([]LearnerSummary, 0, len(learners))
	for _, l := range learners {
		summaries = append(summaries, simulateLearner(problems, l))
	}
	return summaries
}

// simulateLearner runs one learner through the assessment. Cumulative
// fatigue is local to this call: it starts at zero and only grows.
func simulateLearner(problems []assessment.Problem, l population.Learner) LearnerSummary {
	ability := l.Traits.Ability()
	learnerLevel := assessment.NearestLevel(ability)

	fatigue := 0.0
	step := fatigueStep
	for _, o := range l.Overlays {
		step *= o.FatigueRate()
	}

	var (
		outcomes      []Outcome
		totalSecs     float64
		successSum    float64
		engagements   []float64
		fatigues      []float64
		highConfusion []string
	)

	for _, p := range problems {
		out := simulateProblem(p, l, ability, learnerLevel, fatigue)
		outcomes = append(outcomes, out)

		totalSecs += out.Seconds
		successSum += out.SuccessPct
		engagements = append(engagements, out.EngagementScore)
		fatigues = append(fatigues, out.Fatigue)
		if out.Confusion == ConfusionHigh {
			highConfusion = append(highConfusion, p.ID)
		}

		fatigue = min1(fatigue + step)
	}

	var score float64
	if len(outcomes) > 0 {
		score = successSum / float64(len(outcomes))
	}

	return LearnerSummary{
		Learner:          l,
		TotalSeconds:     totalSecs,
		Score:            score,
		Grade:            Grade(score),
		Outcomes:         outcomes,
		Engagement:       trajectory(engagements),
		Fatigue:          fatigueTrajectory(fatigues),
		HighConfusionIDs: highConfusion,
		AtRisk:           score < AtRiskScore,
	}
}

// simulateProblem computes a single outcome. fatigue is the learner's
// accumulated fatigue entering this problem.
func simulateProblem(
	p assessment.Problem,
	l population.Learner,
	ability float64,
	learnerLevel assessment.BloomLevel,
	fatigue float64,
) Outcome {
	difficulty := p.Bloom.Difficulty()
	gap := abs(ability - difficulty)

	// Success: closeness of ability to demand, shaped by overlays and
	// depressed by fatigue.
	success := 1 - gap
	for _, o := range l.Overlays {
		success *= o.SuccessModifier(difficulty)
	}
	success *= 1 - fatigue*fatigueSuccessPenalty
	successPct := clamp01(success) * 100

	// Time: base estimate plus reading and reasoning load, inflated by
	// fatigue, deflated by ability.
	secs := p.EstimatedMinutes*60 +
		p.LinguisticComplexity*complexityTimeSecs +
		float64(p.ReasoningSteps)*stepTimeSecs
	secs *= 1 + fatigue*fatigueTimeInflation
	secs *= 1.25 - 0.5*ability
	for _, o := range l.Overlays {
		secs *= o.TimeFactor()
	}
	if secs < minProblemSecs {
		secs = minProblemSecs
	}

	// Confusion: capability gap plus reading load, inflated by fatigue.
	confusionIdx := (gap + linguisticConfusionWeight*p.LinguisticComplexity) *
		(1 + fatigue*fatigueConfusionInflation)
	confusion := ConfusionBucket(confusionIdx)

	// Engagement: whatever confusion and fatigue leave behind.
	engagement := 1 - confusionIdx - fatigue
	for _, o := range l.Overlays {
		engagement += o.EngagementShift()
	}
	engagement = clamp01(engagement)

	var mismatch *BloomMismatch
	if sev := mismatchSeverity(gap); sev != MismatchNone {
		mismatch = &BloomMismatch{
			LearnerLevel: learnerLevel,
			ProblemLevel: p.Bloom,
			Severity:     sev,
		}
	}

	return Outcome{
		ProblemID:       p.ID,
		Seconds:         secs,
		SuccessPct:      successPct,
		ConfusionIndex:  confusionIdx,
		Confusion:       confusion,
		EngagementScore: engagement,
		Engagement:      EngagementBucket(engagement),
		Feedback:        outcomeFeedback(confusion, successPct),
		Mismatch:        mismatch,
		Fatigue:         fatigue,
	}
}

func mismatchSeverity(gap float64) MismatchSeverity {
	switch {
	case gap > mismatchSevereGap:
		return MismatchSevere
	case gap > mismatchMildGap:
		return MismatchMild
	default:
		return MismatchNone
	}
}

// outcomeFeedback produces the short free-text note attached to each
// outcome. Deterministic so identical runs stay byte-identical.
func outcomeFeedback(c Confusion, successPct float64) string {
	switch {
	case c == ConfusionHigh && successPct < 50:
		return "Struggled significantly; likely needs the prompt reworded or split"
	case c == ConfusionHigh:
		return "Got through it but found the wording confusing"
	case c == ConfusionMedium:
		return "Hesitated on parts of the problem"
	case successPct >= 90:
		return "Completed confidently"
	default:
		return "Completed with minor friction"
	}
}

// trajectory samples the first, middle and last values of a series and
// labels the direction of travel.
func trajectory(series []float64) Trajectory {
	if len(series) == 0 {
		return Trajectory{Trend: "steady"}
	}
	tr := Trajectory{
		Initial:  series[0],
		Midpoint: series[len(series)/2],
		Final:    series[len(series)-1],
	}
	switch delta := tr.Final - tr.Initial; {
	case delta > 0.1:
		tr.Trend = "rising"
	case delta < -0.1:
		tr.Trend = "declining"
	default:
		tr.Trend = "steady"
	}
	return tr
}

func fatigueTrajectory(series []float64) FatigueTrajectory {
	if len(series) == 0 {
		return FatigueTrajectory{}
	}
	ft := FatigueTrajectory{
		Initial: series[0],
		Final:   series[len(series)-1],
	}
	for _, v := range series {
		if v > ft.Peak {
			ft.Peak = v
		}
	}
	return ft
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

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// DescribeMismatch renders a mismatch as "apply learner vs create problem".
func DescribeMismatch(m *BloomMismatch) string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s-capable learner vs %s-level problem (%s)",
		m.LearnerLevel, m.ProblemLevel, m.Severity)
}

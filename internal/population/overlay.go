package population

// Overlay is a behavioral or accessibility modifier assigned to a
// synthetic learner. Each overlay alters simulated performance via a
// fixed function of problem difficulty.
type Overlay string

const (
	OverlayAttentionDeficit  Overlay = "attention-deficit"
	OverlayFatigueSensitive  Overlay = "fatigue-sensitive"
	OverlayReadingDifficulty Overlay = "reading-difficulty"
	OverlayAnxietyProne      Overlay = "anxiety-prone"
	OverlayGifted            Overlay = "gifted"
	OverlayLowConfidence     Overlay = "low-confidence"
	OverlayDisengaged        Overlay = "disengaged"
	OverlayPerfectionist     Overlay = "perfectionist"
)

// AllOverlays returns the full overlay catalog in display order.
func AllOverlays() []Overlay {
	return []Overlay{
		OverlayAttentionDeficit,
		OverlayFatigueSensitive,
		OverlayReadingDifficulty,
		OverlayAnxietyProne,
		OverlayGifted,
		OverlayLowConfidence,
		OverlayDisengaged,
		OverlayPerfectionist,
	}
}

// DisplayName returns a human-readable label for the overlay.
func (o Overlay) DisplayName() string {
	switch o {
	case OverlayAttentionDeficit:
		return "Attention-Deficit Pattern"
	case OverlayFatigueSensitive:
		return "Fatigue Sensitivity"
	case OverlayReadingDifficulty:
		return "Reading Difficulty"
	case OverlayAnxietyProne:
		return "Anxiety Proneness"
	case OverlayGifted:
		return "Giftedness"
	case OverlayLowConfidence:
		return "Low Confidence"
	case OverlayDisengaged:
		return "Disengagement"
	case OverlayPerfectionist:
		return "Perfectionism"
	default:
		return string(o)
	}
}

// Description returns a one-line explanation shown in the overlay catalog.
func (o Overlay) Description() string {
	switch o {
	case OverlayAttentionDeficit:
		return "Loses accuracy on long multi-step problems"
	case OverlayFatigueSensitive:
		return "Accumulates fatigue faster than peers"
	case OverlayReadingDifficulty:
		return "Penalized by linguistically complex prompts"
	case OverlayAnxietyProne:
		return "Success drops sharply as difficulty rises"
	case OverlayGifted:
		return "Performs above trait baseline, more so on hard problems"
	case OverlayLowConfidence:
		return "Flat success penalty regardless of difficulty"
	case OverlayDisengaged:
		return "Reduced engagement across the whole assessment"
	case OverlayPerfectionist:
		return "Slower completion, slight accuracy gain"
	default:
		return ""
	}
}

// SuccessModifier returns the multiplicative success adjustment for a
// problem of the given difficulty. A return of 1.0 means no effect.
func (o Overlay) SuccessModifier(difficulty float64) float64 {
	switch o {
	case OverlayAttentionDeficit:
		// Hurts mostly on demanding problems.
		return 1.0 - 0.20*difficulty
	case OverlayFatigueSensitive:
		// Fatigue effect handled via FatigueRate; small base penalty.
		return 0.97
	case OverlayReadingDifficulty:
		return 0.90
	case OverlayAnxietyProne:
		// Reduces success more as difficulty rises.
		return 1.0 - 0.30*difficulty
	case OverlayGifted:
		// Increases success, more on hard problems.
		return 1.05 + 0.15*difficulty
	case OverlayLowConfidence:
		return 0.92
	case OverlayDisengaged:
		return 0.95
	case OverlayPerfectionist:
		return 1.03
	default:
		return 1.0
	}
}

// FatigueRate returns the multiplier applied to the per-problem fatigue
// increment for learners carrying this overlay.
func (o Overlay) FatigueRate() float64 {
	if o == OverlayFatigueSensitive {
		return 1.6
	}
	return 1.0
}

// TimeFactor returns the multiplier applied to simulated completion time.
func (o Overlay) TimeFactor() float64 {
	switch o {
	case OverlayPerfectionist:
		return 1.25
	case OverlayReadingDifficulty:
		return 1.15
	default:
		return 1.0
	}
}

// EngagementShift returns an additive engagement adjustment in [-1,0].
func (o Overlay) EngagementShift() float64 {
	if o == OverlayDisengaged {
		return -0.15
	}
	return 0
}

package analysis

import "math"

// Probability bounds: never report certainty, never report implausibility
// once a condition has any matched evidence.
const (
	probabilityFloor = 15
	probabilityCeil  = 95

	// Trigger-count confidence nudge.
	manyTriggers = 5
	fewTriggers  = 2
	triggerNudge = 10
)

// rankConditions converts raw scores into bounded percentage estimates. The
// mapping is monotonic by score, not linear: order is always preserved, but
// values compress into [15, 95] to signal "plausible candidate" rather than
// "measured likelihood".
func rankConditions(scored []scoredCondition, answers AnswerSet, age int, ageEstimated bool) []RankedCondition {
	if len(scored) == 0 {
		return nil
	}

	maxScore := scored[0].totalScore
	ranked := make([]RankedCondition, 0, len(scored))
	for _, sc := range scored {
		probability := int(math.Round(sc.totalScore / maxScore * 100))
		probability = clamp(probability, probabilityFloor, probabilityCeil)

		// More matched triggers mean higher confidence.
		if sc.triggerCount >= manyTriggers {
			probability = clamp(probability+triggerNudge, probabilityFloor, probabilityCeil)
		} else if sc.triggerCount <= fewTriggers {
			probability = clamp(probability-triggerNudge, probabilityFloor, probabilityCeil)
		}

		ranked = append(ranked, RankedCondition{
			Condition:   *sc.condition,
			Probability: probability,
			Explanation: buildExplanation(sc, answers, age, ageEstimated),
		})
	}
	return ranked
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package analysis

import (
	"fmt"
	"strings"
)

// buildExplanation assembles a short advisory text for one ranked condition.
// Never used for scoring or triage.
func buildExplanation(sc scoredCondition, answers AnswerSet, age int, ageEstimated bool) string {
	var parts []string

	if symptoms, ok := answers["pelvic_symptoms_current"]; ok && len(symptoms) > 0 {
		shown := symptoms
		if len(shown) > 3 {
			shown = shown[:3]
		}
		parts = append(parts, "Symptoms: "+strings.Join(shown, ", "))
	}

	if ageEstimated {
		parts = append(parts, fmt.Sprintf("Age: not provided (assumed %d)", age))
	} else {
		parts = append(parts, fmt.Sprintf("Age: %d", age))
	}

	if parity := answers.Scalar("number_of_births"); parity != "" {
		parts = append(parts, "Births: "+parity)
	}

	parts = append(parts, fmt.Sprintf("Matched %d clinical criteria", sc.triggerCount))

	return strings.Join(parts, " | ")
}

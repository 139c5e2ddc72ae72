package analysis

import (
	"fmt"
	"strings"
)

// buildSummary selects a synopsis template keyed by the final triage status
// and interpolates the leading conditions.
func buildSummary(ranked []RankedCondition, status TriageStatus) string {
	if len(ranked) == 0 {
		return "Based on your responses, no specific conditions were identified. Please consult with a healthcare provider if you have concerns."
	}

	top := ranked[0]

	switch status {
	case TriageEmergency:
		return fmt.Sprintf("EMERGENCY: Your symptoms are most consistent with %s. This requires immediate medical attention. Go to the emergency room or call 911 now. Do not wait.", top.Condition.Name)

	case TriageUrgent:
		return fmt.Sprintf("URGENT: Your symptoms suggest %s (%d%% match). You should seek medical care today - call your provider, go to urgent care, or visit the ER. Early treatment is important to prevent complications.", top.Condition.Name, top.Probability)

	case TriageSoon:
		var b strings.Builder
		fmt.Fprintf(&b, "Your symptoms are most consistent with %s (%d%% match). ", top.Condition.Name, top.Probability)
		if len(ranked) > 1 {
			fmt.Fprintf(&b, "Other possibilities include %s. ", ranked[1].Condition.Name)
		}
		b.WriteString("Schedule an appointment with your healthcare provider within the next 1-2 weeks for evaluation.")
		return b.String()

	case TriageRoutine:
		var b strings.Builder
		fmt.Fprintf(&b, "Your symptoms may be related to %s (%d%% match). ", top.Condition.Name, top.Probability)
		if len(ranked) > 1 {
			names := make([]string, 0, 2)
			for _, rc := range ranked[1:] {
				names = append(names, rc.Condition.Name)
				if len(names) == 2 {
					break
				}
			}
			fmt.Fprintf(&b, "Other considerations: %s. ", strings.Join(names, ", "))
		}
		b.WriteString("Discuss these findings with your healthcare provider at your next visit.")
		return b.String()
	}

	return fmt.Sprintf("Your symptoms may be managed with self-care measures for %s. However, if symptoms persist or worsen, consult a healthcare provider.", top.Condition.Name)
}

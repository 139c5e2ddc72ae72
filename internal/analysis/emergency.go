package analysis

import (
	"fmt"
	"strings"
)

// emergencyConditionIDs is the fixed allow-list scanned before normal scoring.
// Membership is deliberate: a catalog entry merely authored with Emergency
// severity does not enter the short-circuit path, and removing an id here is
// an explicit decision rather than a catalog edit.
var emergencyConditionIDs = []string{
	"ectopic_pregnancy",
	"ovarian_torsion",
	"pelvic_inflammatory_disease",
	"severe_hemorrhage",
}

// emergencyThreshold is the adjusted score above which the pipeline
// short-circuits to an Emergency result.
const emergencyThreshold = 100.0

// emergencyProbability is the synthetic confidence reported on the
// short-circuit path.
const emergencyProbability = 95

const genericEmergencyMessage = "EMERGENCY: Based on your symptoms, you need immediate medical attention. Go to the ER or call 911."

// checkEmergencies scores the allow-listed conditions and, if any crosses the
// threshold, returns a terminal Emergency result.
func (e *Engine) checkEmergencies(answers AnswerSet, age int, reportDate string, ageEstimated bool) (AnalysisResult, bool) {
	for _, id := range emergencyConditionIDs {
		cond, ok := e.catalog.ByID(id)
		if !ok {
			continue
		}
		scored := e.scoreCondition(cond, answers, age)
		if scored.totalScore <= emergencyThreshold {
			continue
		}

		messages := make([]string, 0, len(cond.RedFlags))
		for _, f := range matchedRedFlags(cond, answers) {
			messages = append(messages, f.Message)
		}
		if len(messages) == 0 {
			messages = []string{genericEmergencyMessage}
		}

		return AnalysisResult{
			TriageStatus: TriageEmergency,
			RankedConditions: []RankedCondition{{
				Condition:   *cond,
				Probability: emergencyProbability,
				Explanation: strings.Join(scored.matchedTriggers, "; "),
			}},
			RedFlagMessages: messages,
			Summary: fmt.Sprintf(
				"EMERGENCY ASSESSMENT: Your symptoms are concerning for %s. This is a medical emergency requiring immediate evaluation. Do not delay - seek emergency care now.",
				cond.Name),
			ReportDate:   reportDate,
			AgeEstimated: ageEstimated,
		}, true
	}
	return AnalysisResult{}, false
}

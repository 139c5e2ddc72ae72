package analysis

import "wise-backend/internal/catalog"

// classifyTriage resolves the triage status from the ranked differential and
// the collected red flags. The decision table is evaluated top to bottom and
// the first matching row wins.
func classifyTriage(ranked []RankedCondition, flags []flag) TriageStatus {
	if len(ranked) == 0 {
		return TriageRoutine
	}

	top := ranked[0].Condition

	if top.Severity == catalog.SeverityEmergency {
		return TriageEmergency
	}
	if top.Severity == catalog.SeverityUrgent {
		return TriageUrgent
	}

	// Red flags escalate independently of the ranking, keyed on their
	// declared level rather than on message wording.
	if len(flags) > 0 {
		if hasFlagLevel(flags, catalog.FlagEmergency) {
			return TriageEmergency
		}
		if hasFlagLevel(flags, catalog.FlagUrgent) {
			return TriageUrgent
		}
		return TriageSoon
	}

	// A co-occurring urgent differential escalates an otherwise-routine top
	// pick.
	if len(ranked) > 1 && ranked[1].Condition.Severity == catalog.SeverityUrgent {
		return TriageSoon
	}

	switch top.Severity {
	case catalog.SeveritySoon:
		return TriageSoon
	case catalog.SeverityRoutine:
		return TriageRoutine
	}
	return TriageSelfCare
}

func hasFlagLevel(flags []flag, level catalog.FlagLevel) bool {
	for _, f := range flags {
		if f.Level == level {
			return true
		}
	}
	return false
}

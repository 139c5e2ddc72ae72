package analysis

import "wise-backend/internal/catalog"

// TriageStatus is the routing priority of one assessment.
type TriageStatus string

const (
	TriageEmergency TriageStatus = "Emergency"
	TriageUrgent    TriageStatus = "Urgent"
	TriageSoon      TriageStatus = "Soon"
	TriageRoutine   TriageStatus = "Routine"
	TriageSelfCare  TriageStatus = "Self-care"
)

// RankedCondition is one candidate diagnosis with a bounded confidence
// percentage in [15, 95].
type RankedCondition struct {
	Condition   catalog.Condition `json:"condition"`
	Probability int               `json:"probability"`
	Explanation string            `json:"explanation"`
}

// AnalysisResult is the immutable output of one analysis call. Ownership
// passes entirely to the caller.
type AnalysisResult struct {
	TriageStatus     TriageStatus      `json:"triageStatus"`
	RankedConditions []RankedCondition `json:"rankedConditions"`
	RedFlagMessages  []string          `json:"redFlagMessages"`
	Summary          string            `json:"summary"`
	ReportDate       string            `json:"reportDate"`

	// AgeEstimated is true when neither the answers nor the profile supplied
	// an age and the default of 28 shaped the age adjustments.
	AgeEstimated bool `json:"ageEstimated,omitempty"`
}

// scoredCondition is the per-call scoring intermediate. Never persisted.
type scoredCondition struct {
	condition       *catalog.Condition
	totalScore      float64
	matchedTriggers []string
	triggerCount    int
}

// flag is one matched red flag before deduplication.
type flag struct {
	Message string
	Level   catalog.FlagLevel
}

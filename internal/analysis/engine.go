// Package analysis implements the clinical differential scoring and triage
// engine: a pure, deterministic function from survey answers and a user
// profile to a ranked shortlist of candidate conditions, safety red flags,
// and a triage status. It performs no I/O and is safe for concurrent use.
package analysis

import (
	"strconv"

	"wise-backend/internal/catalog"
	"wise-backend/internal/profile"
)

// maxRankedConditions caps the differential returned to callers.
const maxRankedConditions = 5

// defaultAge is assumed when neither the answers nor the profile carry an
// age. It materially shapes age adjustments, so results built on it are
// marked with AgeEstimated.
const defaultAge = 28

type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Analyze runs the full pipeline. reportDate is caller-supplied, opaque, and
// stamped on every result including the emergency short-circuit path.
func (e *Engine) Analyze(answers AnswerSet, prof *profile.Profile, reportDate string) AnalysisResult {
	age, estimated := resolveAge(answers, prof)

	// 1. Emergency check first; a hit bypasses every later stage.
	if result, ok := e.checkEmergencies(answers, age, reportDate, estimated); ok {
		return result
	}

	// 2. Red flags, independent of scoring.
	flags := e.scanRedFlags(answers)

	// 3. Score every condition; zero or negative totals are dropped.
	scored := e.scoreAll(answers, age)

	// 4. Normalize scores into bounded probabilities.
	ranked := rankConditions(scored, answers, age, estimated)

	// 5. Triage from severities and flag levels.
	status := classifyTriage(ranked, flags)

	// 6. Templated synopsis.
	summary := buildSummary(ranked, status)

	if len(ranked) > maxRankedConditions {
		ranked = ranked[:maxRankedConditions]
	}

	return AnalysisResult{
		TriageStatus:     status,
		RankedConditions: ranked,
		RedFlagMessages:  dedupeMessages(flags),
		Summary:          summary,
		ReportDate:       reportDate,
		AgeEstimated:     estimated,
	}
}

// resolveAge reads the age from the answers first, then the profile, then
// falls back to defaultAge with estimated=true.
func resolveAge(answers AnswerSet, prof *profile.Profile) (age int, estimated bool) {
	if raw := answers.Scalar("age_selection"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n, false
		}
	}
	if prof != nil && prof.Age > 0 {
		return prof.Age, false
	}
	return defaultAge, true
}

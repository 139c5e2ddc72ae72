package analysis

import (
	"testing"

	"wise-backend/internal/catalog"
)

func scoredFixture(id string, score float64, triggers int) scoredCondition {
	return scoredCondition{
		condition:    &catalog.Condition{ID: id, Severity: catalog.SeverityRoutine},
		totalScore:   score,
		triggerCount: triggers,
	}
}

func TestRankConditions_TopIsCeilinged(t *testing.T) {
	scored := []scoredCondition{
		scoredFixture("a", 120, 3),
		scoredFixture("b", 60, 3),
	}

	ranked := rankConditions(scored, AnswerSet{}, 28, false)
	if ranked[0].Probability != 95 {
		t.Errorf("top probability = %d, want 95", ranked[0].Probability)
	}
	if ranked[1].Probability != 50 {
		t.Errorf("second probability = %d, want 50", ranked[1].Probability)
	}
}

func TestRankConditions_FloorHolds(t *testing.T) {
	scored := []scoredCondition{
		scoredFixture("a", 200, 3),
		scoredFixture("b", 4, 3),
	}

	ranked := rankConditions(scored, AnswerSet{}, 28, false)
	if ranked[1].Probability != 15 {
		t.Errorf("weak-evidence probability = %d, want floor 15", ranked[1].Probability)
	}
}

func TestRankConditions_TriggerCountNudge(t *testing.T) {
	tests := []struct {
		name     string
		triggers int
		want     int
	}{
		{"many triggers add confidence", 5, 60},
		{"middle band unchanged", 3, 50},
		{"few triggers subtract confidence", 2, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := []scoredCondition{
				scoredFixture("top", 100, 3),
				scoredFixture("x", 50, tt.triggers),
			}
			ranked := rankConditions(scored, AnswerSet{}, 28, false)
			if ranked[1].Probability != tt.want {
				t.Errorf("probability = %d, want %d", ranked[1].Probability, tt.want)
			}
		})
	}
}

func TestRankConditions_NudgeRespectsBounds(t *testing.T) {
	// A ceilinged top score with many triggers must not exceed 95, and a
	// floored score with few triggers must not drop below 15.
	scored := []scoredCondition{
		scoredFixture("a", 100, 6),
		scoredFixture("b", 10, 1),
	}

	ranked := rankConditions(scored, AnswerSet{}, 28, false)
	if ranked[0].Probability != 95 {
		t.Errorf("top probability = %d, want 95", ranked[0].Probability)
	}
	if ranked[1].Probability != 15 {
		t.Errorf("bottom probability = %d, want 15", ranked[1].Probability)
	}
}

func TestRankConditions_HigherScoreNeverRanksLower(t *testing.T) {
	// Raising one score (holding everything else fixed) must never push the
	// condition down the ranking.
	base := []scoredCondition{
		scoredFixture("a", 90, 3),
		scoredFixture("b", 80, 3),
		scoredFixture("c", 70, 3),
	}
	bumped := []scoredCondition{
		scoredFixture("b", 95, 3),
		scoredFixture("a", 90, 3),
		scoredFixture("c", 70, 3),
	}

	before := rankConditions(base, AnswerSet{}, 28, false)
	after := rankConditions(bumped, AnswerSet{}, 28, false)

	posBefore, posAfter := -1, -1
	for i := range before {
		if before[i].Condition.ID == "b" {
			posBefore = i
		}
	}
	for i := range after {
		if after[i].Condition.ID == "b" {
			posAfter = i
		}
	}
	if posAfter > posBefore {
		t.Errorf("raising b's score moved it from position %d to %d", posBefore, posAfter)
	}
}

func TestRankConditions_Empty(t *testing.T) {
	if ranked := rankConditions(nil, AnswerSet{}, 28, false); ranked != nil {
		t.Errorf("rankConditions(nil) = %v, want nil", ranked)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{10, 15, 95, 15},
		{100, 15, 95, 95},
		{50, 15, 95, 50},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

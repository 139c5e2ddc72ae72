package analysis

import (
	"encoding/json"
	"fmt"

	"wise-backend/internal/catalog"
)

// Answer is one submitted survey answer. A single-choice answer holds one
// value; a multi-select answer holds several. Order is irrelevant.
type Answer []string

// UnmarshalJSON accepts either a bare string or an array of strings, matching
// the shape the survey client submits.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Answer{s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err == nil {
		*a = Answer(ss)
		return nil
	}
	return fmt.Errorf("answer must be a string or an array of strings")
}

// AnswerSet maps question ids to submitted answers. A missing key means
// "unanswered", which is treated as no evidence, never as a negative answer.
type AnswerSet map[string]Answer

// Scalar returns the first value of the answer at id, or "" when unanswered.
func (s AnswerSet) Scalar(id string) string {
	if a, ok := s[id]; ok && len(a) > 0 {
		return a[0]
	}
	return ""
}

// Matches reports whether the answer at questionID intersects the accepted
// values. Scalar equality, scalar-in-set containment, and set intersection all
// collapse to this one rule. Unanswered questions never match.
func (s AnswerSet) Matches(questionID string, accepted catalog.AnswerValue) bool {
	answer, ok := s[questionID]
	if !ok || len(answer) == 0 {
		return false
	}
	for _, got := range answer {
		for _, want := range accepted {
			if got == want {
				return true
			}
		}
	}
	return false
}

package analysis

import "wise-backend/internal/catalog"

// scanRedFlags evaluates every condition's red-flag rules against the
// answers. Duplicate messages from different conditions are preserved here;
// deduplication happens once, at the end of the pipeline.
func (e *Engine) scanRedFlags(answers AnswerSet) []flag {
	var flags []flag
	for i := range e.catalog.Conditions() {
		cond := &e.catalog.Conditions()[i]
		flags = append(flags, matchedRedFlags(cond, answers)...)
	}
	return flags
}

// matchedRedFlags returns the red flags of a single condition that match the
// answers, in declaration order.
func matchedRedFlags(cond *catalog.Condition, answers AnswerSet) []flag {
	var flags []flag
	for _, rf := range cond.RedFlags {
		if answers.Matches(rf.QuestionID, rf.AnswerValue) {
			flags = append(flags, flag{Message: rf.Message, Level: rf.Level})
		}
	}
	return flags
}

// dedupeMessages collapses flag messages into a set preserving first-seen
// order.
func dedupeMessages(flags []flag) []string {
	seen := make(map[string]bool, len(flags))
	messages := make([]string, 0, len(flags))
	for _, f := range flags {
		if seen[f.Message] {
			continue
		}
		seen[f.Message] = true
		messages = append(messages, f.Message)
	}
	return messages
}

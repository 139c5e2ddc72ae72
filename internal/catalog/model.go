package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity is the intrinsic urgency tier of a condition. It doubles as the
// triage vocabulary: the final triage status is always one of these values.
type Severity string

const (
	SeverityEmergency Severity = "Emergency"
	SeverityUrgent    Severity = "Urgent"
	SeveritySoon      Severity = "Soon"
	SeverityRoutine   Severity = "Routine"
	SeveritySelfCare  Severity = "Self-care"
)

// Valid reports whether s is one of the five known tiers.
func (s Severity) Valid() bool {
	switch s {
	case SeverityEmergency, SeverityUrgent, SeveritySoon, SeverityRoutine, SeveritySelfCare:
		return true
	}
	return false
}

// FlagLevel classifies a red flag for triage escalation. Escalation keys on
// this field, never on the message wording.
type FlagLevel string

const (
	FlagEmergency FlagLevel = "emergency"
	FlagUrgent    FlagLevel = "urgent"
	FlagAdvisory  FlagLevel = "advisory"
)

func (l FlagLevel) Valid() bool {
	switch l {
	case FlagEmergency, FlagUrgent, FlagAdvisory:
		return true
	}
	return false
}

// AnswerValue is the accepted answer(s) of a trigger or red flag. In YAML it
// may be written as a single scalar or as a sequence; both decode to a slice.
type AnswerValue []string

func (v *AnswerValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*v = AnswerValue{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}
		*v = AnswerValue(ss)
		return nil
	}
	return fmt.Errorf("answer value must be a scalar or a sequence, got %v", node.Kind)
}

// Trigger pairs one question's accepted answer(s) with a weight contributing
// to the condition's raw score.
type Trigger struct {
	QuestionID  string      `yaml:"question" json:"questionId"`
	AnswerValue AnswerValue `yaml:"answer" json:"answerValue"`
	Weight      float64     `yaml:"weight" json:"weight"`
}

// RedFlag is a named safety rule, independent of scoring, that can escalate
// triage regardless of which condition ranks highest.
type RedFlag struct {
	QuestionID  string      `yaml:"question" json:"questionId"`
	AnswerValue AnswerValue `yaml:"answer" json:"answerValue"`
	Message     string      `yaml:"message" json:"message"`
	Level       FlagLevel   `yaml:"level" json:"level"`
}

// Condition is one authored catalog entry. Immutable after load.
type Condition struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Severity    Severity `yaml:"severity" json:"severity"`

	Triggers []Trigger `yaml:"triggers" json:"triggers"`
	RedFlags []RedFlag `yaml:"red_flags,omitempty" json:"redFlags,omitempty"`

	// Advisory text, opaque to scoring.
	NextSteps         []string `yaml:"next_steps,omitempty" json:"nextSteps,omitempty"`
	ProviderQuestions []string `yaml:"provider_questions,omitempty" json:"providerQuestions,omitempty"`
	RelevantTests     []string `yaml:"relevant_tests,omitempty" json:"relevantTests,omitempty"`
}

// Question is one survey question. The engine never renders questions; the
// catalog carries them so trigger references can be validated against real ids
// and option values.
type Question struct {
	ID       string   `yaml:"id" json:"id"`
	Text     string   `yaml:"text" json:"text"`
	Type     string   `yaml:"type" json:"type"` // single, multiple, dropdown
	Section  string   `yaml:"section" json:"section"`
	Category string   `yaml:"category" json:"category"`
	Options  []string `yaml:"options,omitempty" json:"options,omitempty"`
}

package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed conditions.yaml
var conditionsYAML []byte

//go:embed questions.yaml
var questionsYAML []byte

// Catalog holds the authored condition and question data. It is loaded once at
// startup and never mutated afterwards, so concurrent readers need no locking.
type Catalog struct {
	conditions []Condition
	questions  []Question
	byID       map[string]*Condition
}

// Load parses the embedded catalog files.
func Load() (*Catalog, error) {
	var conds struct {
		Conditions []Condition `yaml:"conditions"`
	}
	if err := yaml.Unmarshal(conditionsYAML, &conds); err != nil {
		return nil, fmt.Errorf("parse conditions.yaml: %w", err)
	}

	var qs struct {
		Questions []Question `yaml:"questions"`
	}
	if err := yaml.Unmarshal(questionsYAML, &qs); err != nil {
		return nil, fmt.Errorf("parse questions.yaml: %w", err)
	}

	c := &Catalog{
		conditions: conds.Conditions,
		questions:  qs.Questions,
		byID:       make(map[string]*Condition, len(conds.Conditions)),
	}
	for i := range c.conditions {
		cond := &c.conditions[i]
		if cond.ID == "" {
			return nil, fmt.Errorf("condition %d has no id", i)
		}
		if !cond.Severity.Valid() {
			return nil, fmt.Errorf("condition %q: unknown severity %q", cond.ID, cond.Severity)
		}
		for _, rf := range cond.RedFlags {
			if !rf.Level.Valid() {
				return nil, fmt.Errorf("condition %q: unknown red flag level %q", cond.ID, rf.Level)
			}
		}
		if _, dup := c.byID[cond.ID]; dup {
			return nil, fmt.Errorf("duplicate condition id %q", cond.ID)
		}
		c.byID[cond.ID] = cond
	}
	return c, nil
}

// Conditions returns all entries in declaration order. Callers must treat the
// returned slice as read-only.
func (c *Catalog) Conditions() []Condition {
	return c.conditions
}

// Questions returns the survey question catalog in declaration order.
func (c *Catalog) Questions() []Question {
	return c.questions
}

// ByID looks up a condition by its id.
func (c *Catalog) ByID(id string) (*Condition, bool) {
	cond, ok := c.byID[id]
	return cond, ok
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Conditions())
	assert.NotEmpty(t, cat.Questions())
}

func TestLoad_ReferentialIntegrity(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	// Every trigger and red flag must reference a real question, and every
	// accepted answer must be one of that question's authored options. A typo
	// here silently disables a rule, so the whole catalog is checked.
	questions := make(map[string]*Question, len(cat.Questions()))
	qs := cat.Questions()
	for i := range qs {
		q := &qs[i]
		require.NotEmpty(t, q.ID, "question %d has no id", i)
		require.Nil(t, questions[q.ID], "duplicate question id %q", q.ID)
		questions[q.ID] = q
	}

	checkRef := func(t *testing.T, condID, questionID string, accepted AnswerValue) {
		t.Helper()
		q, ok := questions[questionID]
		if !ok {
			t.Errorf("condition %q references unknown question %q", condID, questionID)
			return
		}
		if len(q.Options) == 0 {
			// Free-form questions (e.g. age dropdowns generated client-side)
			// have no authored options to validate against.
			return
		}
		options := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			options[o] = true
		}
		for _, v := range accepted {
			if !options[v] {
				t.Errorf("condition %q, question %q: answer %q is not an authored option", condID, questionID, v)
			}
		}
	}

	for _, cond := range cat.Conditions() {
		require.NotEmpty(t, cond.Triggers, "condition %q has no triggers", cond.ID)
		for _, trig := range cond.Triggers {
			assert.Greater(t, trig.Weight, 0.0, "condition %q: non-positive trigger weight", cond.ID)
			checkRef(t, cond.ID, trig.QuestionID, trig.AnswerValue)
		}
		for _, rf := range cond.RedFlags {
			assert.NotEmpty(t, rf.Message, "condition %q has a red flag without a message", cond.ID)
			checkRef(t, cond.ID, rf.QuestionID, rf.AnswerValue)
		}
	}
}

func TestLoad_EmergencyEntriesPresent(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	// The analysis layer short-circuits on these four ids; renaming one in the
	// catalog without updating the allow-list would silently drop the check.
	for _, id := range []string{
		"ectopic_pregnancy",
		"ovarian_torsion",
		"pelvic_inflammatory_disease",
		"severe_hemorrhage",
	} {
		_, ok := cat.ByID(id)
		assert.True(t, ok, "catalog is missing %q", id)
	}
}

func TestByID_Unknown(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	_, ok := cat.ByID("no_such_condition")
	assert.False(t, ok)
}

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityEmergency, SeverityUrgent, SeveritySoon, SeverityRoutine, SeveritySelfCare} {
		assert.True(t, s.Valid(), "severity %q", s)
	}
	assert.False(t, Severity("Critical").Valid())
	assert.False(t, Severity("").Valid())
}

func TestFlagLevelValid(t *testing.T) {
	for _, l := range []FlagLevel{FlagEmergency, FlagUrgent, FlagAdvisory} {
		assert.True(t, l.Valid(), "level %q", l)
	}
	assert.False(t, FlagLevel("warning").Valid())
	assert.False(t, FlagLevel("").Valid())
}

func TestAnswerValueUnmarshalYAML(t *testing.T) {
	type doc struct {
		Value AnswerValue `yaml:"value"`
	}

	tests := []struct {
		name  string
		yaml  string
		want  AnswerValue
		isErr bool
	}{
		{"scalar", `value: Positive`, AnswerValue{"Positive"}, false},
		{"sequence", "value: [Itching, Burning]", AnswerValue{"Itching", "Burning"}, false},
		{"quoted boolean-like scalar", `value: "Yes"`, AnswerValue{"Yes"}, false},
		{"mapping rejected", `value: {a: 1}`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d doc
			err := yaml.Unmarshal([]byte(tt.yaml), &d)
			if tt.isErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Value)
		})
	}
}

package tracker

import (
	"time"

	"github.com/google/uuid"
)

// SymptomLog is one daily tracking entry. Logs feed the clinical PDF report
// and the provider-facing timeline; they are never inputs to the analysis
// engine.
type SymptomLog struct {
	ID          uuid.UUID `json:"id" db:"id"`
	AnonymousID string    `json:"anonymous_id" db:"anonymous_id"`
	LogDate     string    `json:"log_date" db:"log_date"` // YYYY-MM-DD

	PainLevel    int      `json:"pain_level" db:"pain_level"` // 0-10
	PainLocation []string `json:"pain_location" db:"pain_location"`

	FlowLevel string `json:"flow_level" db:"flow_level"`
	ClotSize  string `json:"clot_size" db:"clot_size"`

	Symptoms    []string `json:"symptoms" db:"symptoms"`
	Mood        []string `json:"mood" db:"mood"`
	EnergyLevel int      `json:"energy_level" db:"energy_level"` // 1-5

	MedicationsTaken []string `json:"medications_taken" db:"medications_taken"`
	MissedWorkSchool bool     `json:"missed_work_school" db:"missed_work_school"`
	Notes            string   `json:"notes" db:"notes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

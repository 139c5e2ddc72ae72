package assessment

import (
	"time"

	"github.com/google/uuid"

	"wise-backend/internal/analysis"
)

// Assessment is the aggregate root: one survey submission together with the
// analysis result computed from it.
type Assessment struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	ProfileID   uuid.NullUUID `json:"profile_id" db:"profile_id"`
	AnonymousID string        `json:"anonymous_id" db:"anonymous_id"`

	// The submitted answers, kept verbatim for auditability.
	Answers analysis.AnswerSet `json:"answers" db:"answers"`

	// The engine output. Immutable once stored.
	Result analysis.AnalysisResult `json:"result" db:"result"`

	// Caller-selected report date, pass-through for display.
	SelectedDate string `json:"selected_date" db:"selected_date"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

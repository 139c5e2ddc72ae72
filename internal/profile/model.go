package profile

import (
	"time"

	"github.com/google/uuid"
)

// Persona distinguishes who is answering the survey.
type Persona string

const (
	PersonaSelf   Persona = "Self"
	PersonaParent Persona = "Parent"
)

// Profile is the user profile owned by the calling application. The analysis
// engine only reads a subset of it (age in particular).
type Profile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	AnonymousID string    `json:"anonymous_id" db:"anonymous_id"`

	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Phone string `json:"phone" db:"phone"`
	Age   int    `json:"age" db:"age"`

	Persona       Persona `json:"user_persona" db:"user_persona"`
	IsPregnant    bool    `json:"is_pregnant" db:"is_pregnant"`
	IsPostpartum  bool    `json:"is_postpartum" db:"is_postpartum"`
	Contraception string  `json:"contraception" db:"contraception"`

	KnownConditions []string `json:"known_conditions" db:"known_conditions"`
	Medications     []string `json:"medications" db:"medications"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

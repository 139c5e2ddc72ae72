package tracker

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	Save(ctx context.Context, l *SymptomLog) error
	ListByAnonymousID(ctx context.Context, anonymousID string, limit int) ([]SymptomLog, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Save(ctx context.Context, l *SymptomLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO symptom_logs (id, anonymous_id, log_date, pain_level, pain_location, flow_level,
			clot_size, symptoms, mood, energy_level, medications_taken, missed_work_school, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			pain_level = $4,
			pain_location = $5,
			flow_level = $6,
			clot_size = $7,
			symptoms = $8,
			mood = $9,
			energy_level = $10,
			medications_taken = $11,
			missed_work_school = $12,
			notes = $13
	`
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.AnonymousID, l.LogDate, l.PainLevel, pq.Array(l.PainLocation), l.FlowLevel,
		l.ClotSize, pq.Array(l.Symptoms), pq.Array(l.Mood), l.EnergyLevel,
		pq.Array(l.MedicationsTaken), l.MissedWorkSchool, l.Notes, l.CreatedAt)
	return err
}

func (r *postgresRepo) ListByAnonymousID(ctx context.Context, anonymousID string, limit int) ([]SymptomLog, error) {
	if limit <= 0 {
		limit = 90
	}
	query := `SELECT id, anonymous_id, log_date, pain_level, pain_location, flow_level, clot_size,
		symptoms, mood, energy_level, medications_taken, missed_work_school, notes, created_at
		FROM symptom_logs WHERE anonymous_id = $1 ORDER BY log_date DESC LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, anonymousID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SymptomLog
	for rows.Next() {
		var l SymptomLog
		if err := rows.Scan(
			&l.ID, &l.AnonymousID, &l.LogDate, &l.PainLevel, pq.Array(&l.PainLocation), &l.FlowLevel,
			&l.ClotSize, pq.Array(&l.Symptoms), pq.Array(&l.Mood), &l.EnergyLevel,
			pq.Array(&l.MedicationsTaken), &l.MissedWorkSchool, &l.Notes, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	ListByAnonymousID(ctx context.Context, anonymousID string, limit int) ([]Assessment, error)
	Save(ctx context.Context, a *Assessment) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	query := `SELECT id, profile_id, anonymous_id, answers, result, selected_date, created_at
		FROM assessments WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	var a Assessment
	var answersJSON, resultJSON []byte

	err := row.Scan(
		&a.ID,
		&a.ProfileID,
		&a.AnonymousID,
		&answersJSON,
		&resultJSON,
		&a.SelectedDate,
		&a.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment not found")
		}
		return nil, err
	}

	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &a.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}
	if len(resultJSON) > 0 {
		if err := json.Unmarshal(resultJSON, &a.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
	}

	return &a, nil
}

func (r *postgresRepo) ListByAnonymousID(ctx context.Context, anonymousID string, limit int) ([]Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, profile_id, anonymous_id, answers, result, selected_date, created_at
		FROM assessments WHERE anonymous_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, anonymousID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		var a Assessment
		var answersJSON, resultJSON []byte
		if err := rows.Scan(&a.ID, &a.ProfileID, &a.AnonymousID, &answersJSON, &resultJSON, &a.SelectedDate, &a.CreatedAt); err != nil {
			return nil, err
		}
		if len(answersJSON) > 0 {
			if err := json.Unmarshal(answersJSON, &a.Answers); err != nil {
				return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
			}
		}
		if len(resultJSON) > 0 {
			if err := json.Unmarshal(resultJSON, &a.Result); err != nil {
				return nil, fmt.Errorf("failed to unmarshal result: %w", err)
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Save(ctx context.Context, a *Assessment) error {
	answersJSON, err := json.Marshal(a.Answers)
	if err != nil {
		return err
	}
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		return err
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO assessments (id, profile_id, anonymous_id, answers, result, selected_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			answers = $4,
			result = $5,
			selected_date = $6
	`
	_, err = r.db.ExecContext(ctx, query,
		a.ID, a.ProfileID, a.AnonymousID, answersJSON, resultJSON, a.SelectedDate, a.CreatedAt)
	return err
}

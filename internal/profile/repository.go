package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	GetByAnonymousID(ctx context.Context, anonymousID string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetByAnonymousID(ctx context.Context, anonymousID string) (*Profile, error) {
	query := `SELECT id, anonymous_id, name, email, phone, age, user_persona, is_pregnant, is_postpartum,
		contraception, known_conditions, medications, created_at, updated_at
		FROM profiles WHERE anonymous_id = $1 ORDER BY updated_at DESC LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, anonymousID)

	var p Profile
	err := row.Scan(
		&p.ID,
		&p.AnonymousID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Age,
		&p.Persona,
		&p.IsPregnant,
		&p.IsPostpartum,
		&p.Contraception,
		pq.Array(&p.KnownConditions),
		pq.Array(&p.Medications),
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Save(ctx context.Context, p *Profile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Persona == "" {
		p.Persona = PersonaSelf
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = time.Now()

	query := `
		INSERT INTO profiles (id, anonymous_id, name, email, phone, age, user_persona, is_pregnant,
			is_postpartum, contraception, known_conditions, medications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			name = $3,
			email = $4,
			phone = $5,
			age = $6,
			user_persona = $7,
			is_pregnant = $8,
			is_postpartum = $9,
			contraception = $10,
			known_conditions = $11,
			medications = $12,
			updated_at = $14
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.AnonymousID, p.Name, p.Email, p.Phone, p.Age, p.Persona, p.IsPregnant,
		p.IsPostpartum, p.Contraception, pq.Array(p.KnownConditions), pq.Array(p.Medications),
		p.CreatedAt, p.UpdatedAt)
	return err
}

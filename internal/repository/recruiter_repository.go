package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-rank/internal/database"
	"talent-rank/internal/domain/recruiter"
)

type PostgresRecruiterRepository struct {
	db database.DB
}

func NewPostgresRecruiterRepository(db database.DB) *PostgresRecruiterRepository {
	return &PostgresRecruiterRepository{db: db}
}

func (r *PostgresRecruiterRepository) Create(ctx context.Context, rec recruiter.Recruiter) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO recruiters (id, email, password_hash) VALUES ($1, $2, $3)`,
		rec.ID, rec.Email, rec.PasswordHash,
	)
	return err
}

func (r *PostgresRecruiterRepository) GetByID(ctx context.Context, id uuid.UUID) (recruiter.Recruiter, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM recruiters WHERE id = $1`,
		id,
	)
	return scanRecruiter(row)
}

func (r *PostgresRecruiterRepository) GetByEmail(ctx context.Context, email string) (recruiter.Recruiter, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM recruiters WHERE email = $1`,
		email,
	)
	return scanRecruiter(row)
}

func (r *PostgresRecruiterRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	row := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM recruiters WHERE email = $1)`, email)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanRecruiter(row database.Row) (recruiter.Recruiter, error) {
	var rec recruiter.Recruiter
	if err := row.Scan(&rec.ID, &rec.Email, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruiter.Recruiter{}, recruiter.ErrNotFound
		}
		return recruiter.Recruiter{}, err
	}
	return rec, nil
}

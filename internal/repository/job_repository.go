package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-rank/internal/database"
	"talent-rank/internal/domain/job"
)

const (
	skillKindRequired  = "required"
	skillKindPreferred = "preferred"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Requirement) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO jobs (id, title, company, description, job_level, years_of_experience_required, source_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		j.ID, j.Title, j.Company, j.Description, j.JobLevel, j.YearsOfExperienceRequired, j.SourceURL,
	)
	if err != nil {
		return err
	}

	insertSkills := func(kind string, skills []job.SkillRequirement) error {
		for _, s := range skills {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO job_skills (job_id, skill, kind, minimum_proficiency) VALUES ($1, $2, $3, $4)
				 ON CONFLICT (job_id, skill, kind) DO NOTHING`,
				j.ID, s.SkillName, kind, s.MinimumProficiency,
			)
			if err != nil {
				return err
			}
		}
		return nil
	}

	if err := insertSkills(skillKindRequired, j.RequiredSkills); err != nil {
		return err
	}
	if err := insertSkills(skillKindPreferred, j.PreferredSkills); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Requirement, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, title, company, description, job_level, years_of_experience_required, source_url, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	)

	j, err := scanJob(row)
	if err != nil {
		return job.Requirement{}, err
	}

	if err := r.attachSkills(ctx, []uuid.UUID{j.ID}, map[uuid.UUID]*job.Requirement{j.ID: &j}); err != nil {
		return job.Requirement{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Requirement, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, company, description, job_level, years_of_experience_required, source_url, created_at, updated_at
		 FROM jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Requirement, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(out))
	byID := make(map[uuid.UUID]*job.Requirement, len(out))
	for i := range out {
		ids = append(ids, out[i].ID)
		byID[out[i].ID] = &out[i]
	}
	if err := r.attachSkills(ctx, ids, byID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) attachSkills(ctx context.Context, ids []uuid.UUID, byID map[uuid.UUID]*job.Requirement) error {
	rows, err := r.db.Query(
		ctx,
		`SELECT job_id, skill, kind, minimum_proficiency
		 FROM job_skills WHERE job_id = ANY($1) ORDER BY job_id, skill ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var kind string
		var s job.SkillRequirement
		if err := rows.Scan(&id, &s.SkillName, &kind, &s.MinimumProficiency); err != nil {
			return err
		}
		j, ok := byID[id]
		if !ok {
			continue
		}
		switch kind {
		case skillKindRequired:
			j.RequiredSkills = append(j.RequiredSkills, s)
		case skillKindPreferred:
			j.PreferredSkills = append(j.PreferredSkills, s)
		}
	}
	return rows.Err()
}

func scanJob(row database.Row) (job.Requirement, error) {
	var j job.Requirement
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Description, &j.JobLevel,
		&j.YearsOfExperienceRequired, &j.SourceURL, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Requirement{}, job.ErrNotFound
		}
		return job.Requirement{}, err
	}
	return j, nil
}

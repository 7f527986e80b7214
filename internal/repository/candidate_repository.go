package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-rank/internal/database"
	"talent-rank/internal/domain/candidate"
)

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

// Create stores the profile and its skill mentions in one transaction.
func (r *PostgresCandidateRepository) Create(ctx context.Context, p candidate.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO candidates
			(id, name, email, phone, years_of_experience, inferred_seniority, seniority_confidence, resume_text, extraction_confidence)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Name, p.Email, p.Phone, p.YearsOfExperience,
		p.InferredSeniority, p.SeniorityConfidence, p.ResumeText, p.ExtractionConfidence,
	)
	if err != nil {
		return err
	}

	for _, s := range p.Skills {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO candidate_skills (candidate_id, skill, confidence, is_explicit, source, proficiency, inferred_from)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (candidate_id, skill) DO UPDATE SET
				confidence = GREATEST(candidate_skills.confidence, EXCLUDED.confidence),
				is_explicit = candidate_skills.is_explicit OR EXCLUDED.is_explicit`,
			p.ID, s.Skill, s.Confidence, s.IsExplicit, s.Source, s.Proficiency, s.InferredFrom,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, email, phone, years_of_experience, inferred_seniority, seniority_confidence, resume_text, extraction_confidence, created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	)

	p, err := scanCandidate(row)
	if err != nil {
		return candidate.Profile{}, err
	}

	skills, err := r.skillsFor(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return candidate.Profile{}, err
	}
	p.Skills = skills[p.ID]
	return p, nil
}

func (r *PostgresCandidateRepository) List(ctx context.Context) ([]candidate.Profile, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, email, phone, years_of_experience, inferred_seniority, seniority_confidence, resume_text, extraction_confidence, created_at, updated_at
		 FROM candidates ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(ctx, rows)
}

func (r *PostgresCandidateRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]candidate.Profile, error) {
	if len(ids) == 0 {
		return []candidate.Profile{}, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, email, phone, years_of_experience, inferred_seniority, seniority_confidence, resume_text, extraction_confidence, created_at, updated_at
		 FROM candidates WHERE id = ANY($1) ORDER BY created_at ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(ctx, rows)
}

func (r *PostgresCandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) collect(ctx context.Context, rows database.Rows) ([]candidate.Profile, error) {
	out := make([]candidate.Profile, 0)
	for rows.Next() {
		p, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	skills, err := r.skillsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = skills[out[i].ID]
	}
	return out, nil
}

func (r *PostgresCandidateRepository) skillsFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]candidate.SkillMention, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT candidate_id, skill, confidence, is_explicit, source, proficiency, inferred_from
		 FROM candidate_skills WHERE candidate_id = ANY($1) ORDER BY candidate_id, confidence DESC, skill ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]candidate.SkillMention, len(ids))
	for rows.Next() {
		var id uuid.UUID
		var m candidate.SkillMention
		if err := rows.Scan(&id, &m.Skill, &m.Confidence, &m.IsExplicit, &m.Source, &m.Proficiency, &m.InferredFrom); err != nil {
			return nil, err
		}
		out[id] = append(out[id], m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCandidate(row database.Row) (candidate.Profile, error) {
	var p candidate.Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.YearsOfExperience,
		&p.InferredSeniority, &p.SeniorityConfidence, &p.ResumeText, &p.ExtractionConfidence,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, candidate.ErrNotFound
		}
		return candidate.Profile{}, err
	}
	return p, nil
}

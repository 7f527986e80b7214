package repository

import (
	"context"

	"github.com/google/uuid"

	"talent-rank/internal/database"
	"talent-rank/internal/domain/ranking"
)

type RankingRepository interface {
	ReplaceForJob(ctx context.Context, jobID uuid.UUID, records []ranking.Record) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]ranking.Record, error)
}

type PostgresRankingRepository struct {
	db database.DB
}

func NewPostgresRankingRepository(db database.DB) *PostgresRankingRepository {
	return &PostgresRankingRepository{db: db}
}

// ReplaceForJob atomically swaps a job's ranking with a fresh run. Readers
// never observe a half-written ranking.
func (r *PostgresRankingRepository) ReplaceForJob(ctx context.Context, jobID uuid.UUID, records []ranking.Record) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM rankings WHERE job_id = $1`, jobID); err != nil {
		return err
	}

	for _, rec := range records {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO rankings
				(id, job_id, candidate_id, overall_score, skill_score, experience_score, seniority_score,
				 rank_position, percentile, matched_skills, missing_skills)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			uuid.New(), jobID, rec.CandidateID,
			rec.OverallScore, rec.SkillScore, rec.ExperienceScore, rec.SeniorityScore,
			rec.RankPosition, rec.Percentile, rec.MatchedSkills, rec.MissingSkills,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRankingRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]ranking.Record, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT r.candidate_id, c.name, c.years_of_experience, c.inferred_seniority,
			r.overall_score, r.skill_score, r.experience_score, r.seniority_score,
			r.rank_position, r.percentile, r.matched_skills, r.missing_skills
		 FROM rankings r
		 JOIN candidates c ON c.id = r.candidate_id
		 WHERE r.job_id = $1
		 ORDER BY r.rank_position ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ranking.Record, 0)
	for rows.Next() {
		var rec ranking.Record
		err := rows.Scan(
			&rec.CandidateID, &rec.CandidateName, &rec.YearsOfExperience, &rec.CandidateSeniority,
			&rec.OverallScore, &rec.SkillScore, &rec.ExperienceScore, &rec.SeniorityScore,
			&rec.RankPosition, &rec.Percentile, &rec.MatchedSkills, &rec.MissingSkills,
		)
		if err != nil {
			return nil, err
		}
		rec.MatchedSkillCount = len(rec.MatchedSkills)
		rec.MissingSkillCount = len(rec.MissingSkills)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

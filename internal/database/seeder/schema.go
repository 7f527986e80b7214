package seeder

import (
	"context"
	"fmt"

	"talent-rank/internal/database"
)

// schemaDDL is idempotent; SchemaSeeder runs it on every startup so a fresh
// database and an existing one converge on the same shape.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS recruiters (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		years_of_experience DOUBLE PRECISION NOT NULL DEFAULT 0,
		inferred_seniority TEXT NOT NULL DEFAULT 'mid_level',
		seniority_confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
		resume_text TEXT NOT NULL DEFAULT '',
		extraction_confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS candidate_skills (
		candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		skill TEXT NOT NULL,
		confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_explicit BOOLEAN NOT NULL DEFAULT FALSE,
		source TEXT NOT NULL DEFAULT '',
		proficiency TEXT NOT NULL DEFAULT '',
		inferred_from TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (candidate_id, skill)
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		job_level TEXT NOT NULL DEFAULT '',
		years_of_experience_required DOUBLE PRECISION,
		source_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_skills (
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		skill TEXT NOT NULL,
		kind TEXT NOT NULL CHECK (kind IN ('required', 'preferred')),
		minimum_proficiency TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (job_id, skill, kind)
	)`,
	`CREATE TABLE IF NOT EXISTS rankings (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		overall_score DOUBLE PRECISION NOT NULL,
		skill_score DOUBLE PRECISION NOT NULL,
		experience_score DOUBLE PRECISION NOT NULL,
		seniority_score DOUBLE PRECISION NOT NULL,
		rank_position INTEGER NOT NULL,
		percentile DOUBLE PRECISION NOT NULL,
		matched_skills TEXT[] NOT NULL DEFAULT '{}',
		missing_skills TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (job_id, candidate_id)
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS skill_relationships (
		source TEXT NOT NULL,
		target TEXT NOT NULL,
		rel_type TEXT NOT NULL,
		strength DOUBLE PRECISION NOT NULL DEFAULT 0,
		PRIMARY KEY (source, target, rel_type)
	)`,
	`CREATE TABLE IF NOT EXISTS pipeline_runs (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		status TEXT NOT NULL,
		total_candidates INTEGER NOT NULL DEFAULT 0,
		error TEXT NOT NULL DEFAULT '',
		started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		finished_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rankings_job_position ON rankings (job_id, rank_position)`,
	`CREATE INDEX IF NOT EXISTS idx_pipeline_runs_job ON pipeline_runs (job_id, started_at DESC)`,
}

type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}

// EnsureTableColumns guards seeders against drifting schemas: it fails fast
// when an expected column is missing instead of erroring mid-insert.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}

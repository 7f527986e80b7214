package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-rank/internal/database"
)

const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

var ErrRunNotFound = errors.New("pipeline run not found")

type PipelineRun struct {
	ID              uuid.UUID
	JobID           uuid.UUID
	Status          string
	TotalCandidates int
	Error           string
	StartedAt       time.Time
	FinishedAt      *time.Time
}

type PipelineRunRepository interface {
	Create(ctx context.Context, run PipelineRun) error
	MarkCompleted(ctx context.Context, id uuid.UUID, totalCandidates int) error
	MarkFailed(ctx context.Context, id uuid.UUID, cause string) error
	GetByID(ctx context.Context, id uuid.UUID) (PipelineRun, error)
	LatestByJob(ctx context.Context, jobID uuid.UUID) (PipelineRun, error)
}

type PostgresPipelineRunRepository struct {
	db database.DB
}

func NewPostgresPipelineRunRepository(db database.DB) *PostgresPipelineRunRepository {
	return &PostgresPipelineRunRepository{db: db}
}

func (r *PostgresPipelineRunRepository) Create(ctx context.Context, run PipelineRun) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO pipeline_runs (id, job_id, status, total_candidates) VALUES ($1, $2, $3, $4)`,
		run.ID, run.JobID, run.Status, run.TotalCandidates,
	)
	return err
}

func (r *PostgresPipelineRunRepository) MarkCompleted(ctx context.Context, id uuid.UUID, totalCandidates int) error {
	affected, err := r.db.Exec(
		ctx,
		`UPDATE pipeline_runs SET status = $2, total_candidates = $3, finished_at = now() WHERE id = $1`,
		id, RunStatusCompleted, totalCandidates,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRunNotFound
	}
	return nil
}

func (r *PostgresPipelineRunRepository) MarkFailed(ctx context.Context, id uuid.UUID, cause string) error {
	affected, err := r.db.Exec(
		ctx,
		`UPDATE pipeline_runs SET status = $2, error = $3, finished_at = now() WHERE id = $1`,
		id, RunStatusFailed, cause,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRunNotFound
	}
	return nil
}

func (r *PostgresPipelineRunRepository) GetByID(ctx context.Context, id uuid.UUID) (PipelineRun, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, job_id, status, total_candidates, error, started_at, finished_at
		 FROM pipeline_runs WHERE id = $1`,
		id,
	)
	return scanRun(row)
}

func (r *PostgresPipelineRunRepository) LatestByJob(ctx context.Context, jobID uuid.UUID) (PipelineRun, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, job_id, status, total_candidates, error, started_at, finished_at
		 FROM pipeline_runs WHERE job_id = $1 ORDER BY started_at DESC LIMIT 1`,
		jobID,
	)
	return scanRun(row)
}

func scanRun(row database.Row) (PipelineRun, error) {
	var run PipelineRun
	err := row.Scan(&run.ID, &run.JobID, &run.Status, &run.TotalCandidates, &run.Error, &run.StartedAt, &run.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PipelineRun{}, ErrRunNotFound
		}
		return PipelineRun{}, err
	}
	return run, nil
}

package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"talent-rank/internal/domain/job"
	"talent-rank/internal/repository"
	"talent-rank/internal/usecase"
	"talent-rank/internal/ws"
)

// RankingPipeline re-scores jobs against the candidate pool in the
// background. Each run is recorded in pipeline_runs, and a finished run is
// announced over the websocket hub.
type RankingPipeline struct {
	jobs   job.Repository
	ranker usecase.RankingUsecase
	runs   repository.PipelineRunRepository
	hub    *ws.Hub

	workers int
	log     *log.Logger
}

func NewRankingPipeline(
	jobs job.Repository,
	ranker usecase.RankingUsecase,
	runs repository.PipelineRunRepository,
	hub *ws.Hub,
	workers int,
	logger *log.Logger,
) *RankingPipeline {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = log.Default()
	}
	return &RankingPipeline{
		jobs:    jobs,
		ranker:  ranker,
		runs:    runs,
		hub:     hub,
		workers: workers,
		log:     logger,
	}
}

// RunJob ranks a single job synchronously and records the run.
func (p *RankingPipeline) RunJob(ctx context.Context, jobID uuid.UUID) (repository.PipelineRun, error) {
	run := repository.PipelineRun{
		ID:     uuid.New(),
		JobID:  jobID,
		Status: repository.RunStatusRunning,
	}
	if err := p.runs.Create(ctx, run); err != nil {
		return repository.PipelineRun{}, err
	}

	if err := p.execute(ctx, run); err != nil {
		return repository.PipelineRun{}, err
	}
	return p.runs.GetByID(ctx, run.ID)
}

// StartJob records a running pipeline entry and ranks in the background.
// The returned run is what the status endpoint polls until it settles.
func (p *RankingPipeline) StartJob(ctx context.Context, jobID uuid.UUID) (repository.PipelineRun, error) {
	if _, err := p.jobs.GetByID(ctx, jobID); err != nil {
		return repository.PipelineRun{}, err
	}

	run := repository.PipelineRun{
		ID:     uuid.New(),
		JobID:  jobID,
		Status: repository.RunStatusRunning,
	}
	if err := p.runs.Create(ctx, run); err != nil {
		return repository.PipelineRun{}, err
	}

	go func() {
		if err := p.execute(context.Background(), run); err != nil {
			p.log.Printf("pipeline=ranking job=%s run=%s status=background_error err=%v", jobID, run.ID, err)
		}
	}()

	return run, nil
}

func (p *RankingPipeline) execute(ctx context.Context, run repository.PipelineRun) error {
	res, err := p.ranker.RankJob(ctx, run.JobID)
	if err != nil {
		p.log.Printf("pipeline=ranking job=%s status=error err=%v", run.JobID, err)
		if mErr := p.runs.MarkFailed(ctx, run.ID, err.Error()); mErr != nil {
			p.log.Printf("pipeline=ranking job=%s status=mark_failed_error err=%v", run.JobID, mErr)
		}
		return err
	}

	total := len(res.Rankings)
	if err := p.runs.MarkCompleted(ctx, run.ID, total); err != nil {
		p.log.Printf("pipeline=ranking job=%s status=mark_completed_error err=%v", run.JobID, err)
	}

	p.hub.NotifyRankingsUpdated(run.JobID, run.ID, total)
	return nil
}

// RunAll re-ranks every stored job across the worker pool. Individual job
// failures are logged, not fatal; the first error is returned so callers can
// flag a partial run.
func (p *RankingPipeline) RunAll(ctx context.Context) error {
	jobsList, err := p.jobs.List(ctx)
	if err != nil {
		return err
	}
	return p.runPool(ctx, jobsList)
}

// StartAll kicks off a full re-rank in the background and reports how many
// jobs were queued. Per-job progress lands in pipeline_runs.
func (p *RankingPipeline) StartAll(ctx context.Context) (int, error) {
	jobsList, err := p.jobs.List(ctx)
	if err != nil {
		return 0, err
	}

	go func() {
		if err := p.runPool(context.Background(), jobsList); err != nil {
			p.log.Printf("pipeline=ranking status=background_error err=%v", err)
		}
	}()

	return len(jobsList), nil
}

func (p *RankingPipeline) runPool(ctx context.Context, jobsList []job.Requirement) error {
	if len(jobsList) == 0 {
		return nil
	}

	start := time.Now()
	p.log.Printf("pipeline=ranking status=started jobs=%d", len(jobsList))
	defer func() {
		p.log.Printf("pipeline=ranking status=finished duration=%s", time.Since(start))
	}()

	pool := NewWorkerPool(p.workers, len(jobsList))
	results := pool.Run(ctx)

	for _, j := range jobsList {
		jobID := j.ID
		pool.Submit(func(ctx context.Context) error {
			_, err := p.RunJob(ctx, jobID)
			return err
		})
	}
	pool.Close()

	var firstErr error
	for res := range results {
		if res.Err != nil && firstErr == nil {
			firstErr = res.Err
		}
	}
	return firstErr
}

// Status reports the latest run for a job.
func (p *RankingPipeline) Status(ctx context.Context, jobID uuid.UUID) (repository.PipelineRun, error) {
	return p.runs.LatestByJob(ctx, jobID)
}

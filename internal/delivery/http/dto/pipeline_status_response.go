package dto

import (
	"time"

	"github.com/google/uuid"

	"talent-rank/internal/repository"
)

type PipelineRunResponse struct {
	RunID           uuid.UUID  `json:"run_id"`
	JobID           uuid.UUID  `json:"job_id"`
	Status          string     `json:"status"`
	TotalCandidates int        `json:"total_candidates"`
	Error           string     `json:"error,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
}

func NewPipelineRunResponse(run repository.PipelineRun) PipelineRunResponse {
	return PipelineRunResponse{
		RunID:           run.ID,
		JobID:           run.JobID,
		Status:          run.Status,
		TotalCandidates: run.TotalCandidates,
		Error:           run.Error,
		StartedAt:       run.StartedAt,
		FinishedAt:      run.FinishedAt,
	}
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-rank/internal/delivery/http/dto"
	"talent-rank/internal/delivery/http/middleware"
	"talent-rank/internal/domain/job"
	"talent-rank/internal/pipeline"
	"talent-rank/internal/pkg/response"
	"talent-rank/internal/repository"
	"talent-rank/internal/usecase"
)

type RankingHandler struct {
	uc   usecase.RankingUsecase
	pipe *pipeline.RankingPipeline
}

func NewRankingHandler(uc usecase.RankingUsecase, pipe *pipeline.RankingPipeline) *RankingHandler {
	return &RankingHandler{uc: uc, pipe: pipe}
}

type rankJobRequest struct {
	CandidateIDs []string `json:"candidate_ids"`
}

func (h *RankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	// Literal route before the :id routes so "rank-all" is not parsed as
	// a job id.
	r.Post("/rank-all", h.RankAll)
	r.Post("/:id/rank", h.Rank)
	r.Get("/:id/ranking", h.GetRanking)
	r.Get("/:id/ranking/:candidateID/explanation", h.Explain)
	r.Get("/:id/pipeline", h.PipelineStatus)
}

// Rank kicks off a background pipeline run and returns 202 with the run id.
// Clients either poll the pipeline endpoint or subscribe to the websocket.
// When the body names candidate ids, only that subset is ranked, synchronously
// and without touching the stored ranking.
func (h *RankingHandler) Rank(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req rankJobRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	if len(req.CandidateIDs) > 0 {
		ids := make([]uuid.UUID, 0, len(req.CandidateIDs))
		for _, raw := range req.CandidateIDs {
			cid, err := uuid.Parse(raw)
			if err != nil {
				return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
			}
			ids = append(ids, cid)
		}

		res, err := h.uc.RankPool(c.Context(), id, ids)
		if err != nil {
			return mapRankingError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRankingResponse(res))
	}

	run, err := h.pipe.StartJob(c.Context(), id)
	if err != nil {
		return mapRankingError(err)
	}
	return response.Success(c, fiber.StatusAccepted, "ranking started", dto.NewPipelineRunResponse(run))
}

// RankAll queues a background re-rank of every stored job.
func (h *RankingHandler) RankAll(c fiber.Ctx) error {
	queued, err := h.pipe.StartAll(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusAccepted, "batch ranking started", fiber.Map{"jobs_queued": queued})
}

func (h *RankingHandler) GetRanking(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	res, err := h.uc.GetRanking(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRankingNotFound) {
			// No persisted run yet; rank on demand.
			res, err = h.uc.RankJob(c.Context(), id)
		}
		if err != nil {
			return mapRankingError(err)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRankingResponse(res))
}

func (h *RankingHandler) Explain(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}
	candidateID, err := uuid.Parse(c.Params("candidateID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	exp, err := h.uc.ExplainCandidate(c.Context(), jobID, candidateID)
	if err != nil {
		if errors.Is(err, usecase.ErrRankingNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Candidate is not in this job's ranking", nil, err)
		}
		return mapRankingError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, exp)
}

func (h *RankingHandler) PipelineStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	run, err := h.pipe.Status(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "No pipeline run for this job", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPipelineRunResponse(run))
}

func mapRankingError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound), errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrRankingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Ranking not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-rank/internal/delivery/http/dto"
	"talent-rank/internal/delivery/http/middleware"
	"talent-rank/internal/domain/job"
	"talent-rank/internal/pkg/response"
	"talent-rank/internal/usecase"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type jobSkillRequest struct {
	SkillName          string `json:"skill_name"`
	MinimumProficiency string `json:"minimum_proficiency"`
}

type createJobRequest struct {
	Title                     string            `json:"title"`
	Company                   string            `json:"company"`
	Description               string            `json:"description"`
	JobLevel                  string            `json:"job_level"`
	YearsOfExperienceRequired *float64          `json:"years_of_experience_required"`
	RequiredSkills            []jobSkillRequest `json:"required_skills"`
	PreferredSkills           []jobSkillRequest `json:"preferred_skills"`
}

type importJobRequest struct {
	URL string `json:"url"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Post("/import", h.Import)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Delete("/:id", h.Delete)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), usecase.CreateJobInput{
		Title:                     req.Title,
		Company:                   req.Company,
		Description:               req.Description,
		JobLevel:                  req.JobLevel,
		YearsOfExperienceRequired: req.YearsOfExperienceRequired,
		RequiredSkills:            toSkillRequirements(req.RequiredSkills),
		PreferredSkills:           toSkillRequirements(req.PreferredSkills),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Job title is required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusCreated, "job created", dto.NewJobResponse(created))
}

func (h *JobHandler) Import(c fiber.Ctx) error {
	var req importJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	imported, err := h.uc.ImportFromURL(c.Context(), req.URL)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "URL is required", nil, err)
		}
		if errors.Is(err, usecase.ErrImportFailed) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Could not import job posting", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusCreated, "job imported", dto.NewJobResponse(imported))
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	req, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(req))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, "job deleted", nil)
}

func toSkillRequirements(in []jobSkillRequest) []job.SkillRequirement {
	out := make([]job.SkillRequirement, 0, len(in))
	for _, s := range in {
		out = append(out, job.SkillRequirement{SkillName: s.SkillName, MinimumProficiency: s.MinimumProficiency})
	}
	return out
}

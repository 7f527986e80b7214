package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"talent-rank/internal/domain/candidate"
	"talent-rank/internal/domain/extraction"
	"talent-rank/internal/domain/seniority"
	"talent-rank/internal/parsing"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type IngestCandidateInput struct {
	Name       string
	ResumeText string
}

// IngestResult carries the stored profile plus the per-stage analysis so
// callers can surface how the profile was derived.
type IngestResult struct {
	Profile    candidate.Profile
	Extraction extraction.Result
	Seniority  seniority.Inference
}

type CandidateUsecase interface {
	Ingest(ctx context.Context, in IngestCandidateInput) (IngestResult, error)
	Get(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
	List(ctx context.Context) ([]candidate.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Candidate struct {
	candidates candidate.Repository
	parser     *parsing.Parser
	extractor  *extraction.Extractor
	cache      RankingCache
	logger     *log.Logger
}

func NewCandidateUsecase(
	candidates candidate.Repository,
	parser *parsing.Parser,
	extractor *extraction.Extractor,
	cache RankingCache,
	logger *log.Logger,
) *Candidate {
	return &Candidate{
		candidates: candidates,
		parser:     parser,
		extractor:  extractor,
		cache:      cache,
		logger:     logger,
	}
}

// Ingest runs the full enrichment chain over raw resume text: parse into a
// structured resume, extract skills, infer seniority, then persist. Any
// cached rankings are stale once a new candidate exists, so the ranking
// cache is flushed.
func (u *Candidate) Ingest(ctx context.Context, in IngestCandidateInput) (IngestResult, error) {
	text := strings.TrimSpace(in.ResumeText)
	if text == "" {
		return IngestResult{}, ErrInvalidInput
	}

	resume, err := u.parser.Parse(text, in.Name)
	if err != nil {
		if errors.Is(err, parsing.ErrEmptyResume) {
			return IngestResult{}, ErrInvalidInput
		}
		return IngestResult{}, ErrInternal
	}

	extracted := u.extractor.ExtractAll(resume)
	inferred := seniority.Infer(resume.YearsOfExperience, resume.Experience, extracted.AllSkills)

	now := time.Now().UTC()
	profile := candidate.Profile{
		ID:                   uuid.New(),
		Name:                 resume.Name,
		Email:                resume.Email,
		Phone:                resume.Phone,
		YearsOfExperience:    resume.YearsOfExperience,
		Experience:           resume.Experience,
		Skills:               extracted.AllSkills,
		InferredSeniority:    inferred.PredictedSeniority.String(),
		SeniorityConfidence:  inferred.ConfidenceScore,
		ResumeText:           resume.ResumeText,
		ExtractionConfidence: resume.ExtractionConfidence,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := u.candidates.Create(ctx, profile); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Candidate] persist failed id=%s err=%v", profile.ID, err)
		}
		return IngestResult{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "ranking:*"); err != nil && u.logger != nil {
			u.logger.Printf("[Candidate] ranking cache flush failed: %v", err)
		}
	}

	return IngestResult{Profile: profile, Extraction: extracted, Seniority: inferred}, nil
}

func (u *Candidate) Get(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	p, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Candidate) List(ctx context.Context) ([]candidate.Profile, error) {
	out, err := u.candidates.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Candidate) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.candidates.Delete(ctx, id); err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return ErrCandidateNotFound
		}
		return ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "ranking:*"); err != nil && u.logger != nil {
			u.logger.Printf("[Candidate] ranking cache flush failed: %v", err)
		}
	}
	return nil
}

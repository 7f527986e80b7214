package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"talent-rank/internal/domain/job"
	"talent-rank/internal/domain/skillgraph"
)

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrImportFailed = errors.New("job import failed")
)

// JobImporter fetches a posting from an external URL and turns it into a
// job requirement. Implemented by the importer package.
type JobImporter interface {
	Import(ctx context.Context, url string) (job.Requirement, error)
}

type CreateJobInput struct {
	Title                     string
	Company                   string
	Description               string
	JobLevel                  string
	YearsOfExperienceRequired *float64
	RequiredSkills            []job.SkillRequirement
	PreferredSkills           []job.SkillRequirement
}

type JobUsecase interface {
	Create(ctx context.Context, in CreateJobInput) (job.Requirement, error)
	Get(ctx context.Context, id uuid.UUID) (job.Requirement, error)
	List(ctx context.Context) ([]job.Requirement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ImportFromURL(ctx context.Context, url string) (job.Requirement, error)
}

type Job struct {
	jobs     job.Repository
	graph    *skillgraph.Graph
	importer JobImporter
	cache    RankingCache
	logger   *log.Logger
}

func NewJobUsecase(jobs job.Repository, graph *skillgraph.Graph, importer JobImporter, cache RankingCache, logger *log.Logger) *Job {
	return &Job{jobs: jobs, graph: graph, importer: importer, cache: cache, logger: logger}
}

func (u *Job) Create(ctx context.Context, in CreateJobInput) (job.Requirement, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Requirement{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	req := job.Requirement{
		ID:                        uuid.New(),
		Title:                     title,
		Company:                   strings.TrimSpace(in.Company),
		Description:               strings.TrimSpace(in.Description),
		JobLevel:                  strings.ToLower(strings.TrimSpace(in.JobLevel)),
		YearsOfExperienceRequired: in.YearsOfExperienceRequired,
		RequiredSkills:            u.normalizeSkills(in.RequiredSkills),
		PreferredSkills:           u.normalizeSkills(in.PreferredSkills),
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if err := u.jobs.Create(ctx, req); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Job] persist failed id=%s err=%v", req.ID, err)
		}
		return job.Requirement{}, ErrInternal
	}
	return req, nil
}

func (u *Job) Get(ctx context.Context, id uuid.UUID) (job.Requirement, error) {
	req, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Requirement{}, ErrJobNotFound
		}
		return job.Requirement{}, ErrInternal
	}
	return req, nil
}

func (u *Job) List(ctx context.Context) ([]job.Requirement, error) {
	out, err := u.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Job) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "ranking:"+id.String()+":*"); err != nil && u.logger != nil {
			u.logger.Printf("[Job] ranking cache flush failed job=%s err=%v", id, err)
		}
	}
	return nil
}

// ImportFromURL scrapes a posting, canonicalizes its skills against the
// ontology, and stores the resulting requirement.
func (u *Job) ImportFromURL(ctx context.Context, url string) (job.Requirement, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return job.Requirement{}, ErrInvalidInput
	}
	if u.importer == nil {
		return job.Requirement{}, ErrImportFailed
	}

	req, err := u.importer.Import(ctx, url)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Job] import failed url=%s err=%v", url, err)
		}
		return job.Requirement{}, ErrImportFailed
	}

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	now := time.Now().UTC()
	req.SourceURL = url
	req.CreatedAt = now
	req.UpdatedAt = now
	req.RequiredSkills = u.normalizeSkills(req.RequiredSkills)
	req.PreferredSkills = u.normalizeSkills(req.PreferredSkills)

	if err := u.jobs.Create(ctx, req); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Job] persist failed id=%s err=%v", req.ID, err)
		}
		return job.Requirement{}, ErrInternal
	}
	return req, nil
}

func (u *Job) normalizeSkills(in []job.SkillRequirement) []job.SkillRequirement {
	out := make([]job.SkillRequirement, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		name := strings.TrimSpace(s.SkillName)
		if name == "" {
			continue
		}
		if u.graph != nil {
			name = u.graph.Normalize(name)
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, job.SkillRequirement{SkillName: name, MinimumProficiency: s.MinimumProficiency})
	}
	return out
}

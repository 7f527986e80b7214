package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"talent-rank/internal/domain/candidate"
	"talent-rank/internal/domain/explain"
	"talent-rank/internal/domain/job"
	"talent-rank/internal/domain/ranking"
	"talent-rank/internal/repository"
)

var ErrRankingNotFound = errors.New("ranking not found")

type RankedCandidate struct {
	Record      ranking.Record      `json:"record"`
	Explanation explain.Explanation `json:"explanation"`
}

type RankingResult struct {
	JobID       uuid.UUID           `json:"job_id"`
	JobTitle    string              `json:"job_title"`
	Weights     ranking.Weights     `json:"weights"`
	Rankings    []RankedCandidate   `json:"rankings"`
	BiasReport  *explain.BiasReport `json:"bias_report,omitempty"`
	FromCache   bool                `json:"from_cache"`
	GeneratedAt time.Time           `json:"generated_at"`
}

type RankingUsecase interface {
	RankJob(ctx context.Context, jobID uuid.UUID) (RankingResult, error)
	RankPool(ctx context.Context, jobID uuid.UUID, candidateIDs []uuid.UUID) (RankingResult, error)
	GetRanking(ctx context.Context, jobID uuid.UUID) (RankingResult, error)
	ExplainCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (explain.Explanation, error)
}

type Ranking struct {
	jobs           job.Repository
	candidates     candidate.Repository
	rankings       repository.RankingRepository
	cache          RankingCache
	weights        ranking.Weights
	biasMitigation bool
	logger         *log.Logger
}

func NewRankingUsecase(
	jobs job.Repository,
	candidates candidate.Repository,
	rankings repository.RankingRepository,
	cache RankingCache,
	weights ranking.Weights,
	biasMitigation bool,
	logger *log.Logger,
) *Ranking {
	return &Ranking{
		jobs:           jobs,
		candidates:     candidates,
		rankings:       rankings,
		cache:          cache,
		weights:        weights,
		biasMitigation: biasMitigation,
		logger:         logger,
	}
}

// RankJob scores every stored candidate against the job, explains each
// placement, and persists the run. Results are cached per candidate set, so
// repeat requests with an unchanged pool are served from Redis.
func (u *Ranking) RankJob(ctx context.Context, jobID uuid.UUID) (RankingResult, error) {
	return u.RankPool(ctx, jobID, nil)
}

// RankPool ranks a caller-specified candidate subset, or the whole pool when
// candidateIDs is empty. Subset runs are not persisted; the stored ranking
// always reflects the full pool.
func (u *Ranking) RankPool(ctx context.Context, jobID uuid.UUID, candidateIDs []uuid.UUID) (RankingResult, error) {
	req, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return RankingResult{}, ErrJobNotFound
		}
		return RankingResult{}, ErrInternal
	}

	subset := len(candidateIDs) > 0

	var profiles []candidate.Profile
	if subset {
		profiles, err = u.candidates.ListByIDs(ctx, candidateIDs)
	} else {
		profiles, err = u.candidates.List(ctx)
	}
	if err != nil {
		return RankingResult{}, ErrInternal
	}

	key := RankingCacheKey(jobID, profileIDs(profiles))
	if u.cache != nil {
		var cached RankingResult
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			cached.FromCache = true
			return cached, nil
		}
	}

	records := ranking.Rank(profiles, req, u.weights)

	result := RankingResult{
		JobID:       req.ID,
		JobTitle:    req.Title,
		Weights:     u.weights,
		Rankings:    make([]RankedCandidate, 0, len(records)),
		GeneratedAt: time.Now().UTC(),
	}
	for _, rec := range records {
		result.Rankings = append(result.Rankings, RankedCandidate{
			Record:      rec,
			Explanation: explain.Explain(rec, req),
		})
	}

	if u.biasMitigation && len(records) > 0 {
		report := u.biasReport(profiles, req, records)
		result.BiasReport = &report
	}

	if !subset {
		if err := u.rankings.ReplaceForJob(ctx, jobID, records); err != nil {
			if u.logger != nil {
				u.logger.Printf("[Ranking] persist failed job=%s err=%v", jobID, err)
			}
			return RankingResult{}, ErrInternal
		}
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Ranking] cache store failed key=%s err=%v", key, err)
		}
	}

	return result, nil
}

// GetRanking returns the most recently persisted run without rescoring.
func (u *Ranking) GetRanking(ctx context.Context, jobID uuid.UUID) (RankingResult, error) {
	req, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return RankingResult{}, ErrJobNotFound
		}
		return RankingResult{}, ErrInternal
	}

	records, err := u.rankings.ListByJob(ctx, jobID)
	if err != nil {
		return RankingResult{}, ErrInternal
	}
	if len(records) == 0 {
		return RankingResult{}, ErrRankingNotFound
	}

	result := RankingResult{
		JobID:    req.ID,
		JobTitle: req.Title,
		Weights:  u.weights,
		Rankings: make([]RankedCandidate, 0, len(records)),
	}
	for _, rec := range records {
		result.Rankings = append(result.Rankings, RankedCandidate{
			Record:      rec,
			Explanation: explain.Explain(rec, req),
		})
	}
	return result, nil
}

func (u *Ranking) ExplainCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (explain.Explanation, error) {
	req, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return explain.Explanation{}, ErrJobNotFound
		}
		return explain.Explanation{}, ErrInternal
	}

	records, err := u.rankings.ListByJob(ctx, jobID)
	if err != nil {
		return explain.Explanation{}, ErrInternal
	}
	for _, rec := range records {
		if rec.CandidateID == candidateID {
			return explain.Explain(rec, req), nil
		}
	}
	return explain.Explanation{}, ErrRankingNotFound
}

// biasReport reruns the ranking with identifying attributes masked and
// compares positions. The scorer never reads names, so a stable result here
// is the expected outcome; the report makes that verifiable per run.
func (u *Ranking) biasReport(profiles []candidate.Profile, req job.Requirement, original []ranking.Record) explain.BiasReport {
	masked := make([]candidate.Profile, len(profiles))
	for i, p := range profiles {
		m := p
		m.Name = fmt.Sprintf("Candidate %d", i+1)
		m.Email = ""
		m.Phone = ""
		masked[i] = m
	}

	mitigated := ranking.Rank(masked, req, u.weights)
	return explain.BiasMitigationReport(original, mitigated)
}

func profileIDs(profiles []candidate.Profile) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids
}

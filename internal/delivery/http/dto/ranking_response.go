package dto

import (
	"time"

	"github.com/google/uuid"

	"talent-rank/internal/domain/explain"
	"talent-rank/internal/domain/ranking"
	"talent-rank/internal/usecase"
)

type RankedCandidateResponse struct {
	CandidateID        uuid.UUID `json:"candidate_id"`
	CandidateName      string    `json:"candidate_name"`
	RankPosition       int       `json:"rank_position"`
	Percentile         float64   `json:"percentile"`
	OverallScore       float64   `json:"overall_score"`
	SkillScore         float64   `json:"skill_score"`
	ExperienceScore    float64   `json:"experience_score"`
	SeniorityScore     float64   `json:"seniority_score"`
	MatchedSkills      []string  `json:"matched_skills"`
	MissingSkills      []string  `json:"missing_skills"`
	CandidateSeniority string    `json:"candidate_seniority"`
	YearsOfExperience  float64   `json:"years_of_experience"`

	Explanation explain.Explanation `json:"explanation"`
}

type RankingResponse struct {
	JobID       uuid.UUID                 `json:"job_id"`
	JobTitle    string                    `json:"job_title"`
	Weights     ranking.Weights           `json:"weights"`
	Rankings    []RankedCandidateResponse `json:"rankings"`
	BiasReport  *explain.BiasReport       `json:"bias_report,omitempty"`
	FromCache   bool                      `json:"from_cache"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

func NewRankingResponse(res usecase.RankingResult) RankingResponse {
	rankings := make([]RankedCandidateResponse, 0, len(res.Rankings))
	for _, rc := range res.Rankings {
		rec := rc.Record
		rankings = append(rankings, RankedCandidateResponse{
			CandidateID:        rec.CandidateID,
			CandidateName:      rec.CandidateName,
			RankPosition:       rec.RankPosition,
			Percentile:         rec.Percentile,
			OverallScore:       rec.OverallScore,
			SkillScore:         rec.SkillScore,
			ExperienceScore:    rec.ExperienceScore,
			SeniorityScore:     rec.SeniorityScore,
			MatchedSkills:      rec.MatchedSkills,
			MissingSkills:      rec.MissingSkills,
			CandidateSeniority: rec.CandidateSeniority,
			YearsOfExperience:  rec.YearsOfExperience,
			Explanation:        rc.Explanation,
		})
	}

	return RankingResponse{
		JobID:       res.JobID,
		JobTitle:    res.JobTitle,
		Weights:     res.Weights,
		Rankings:    rankings,
		BiasReport:  res.BiasReport,
		FromCache:   res.FromCache,
		GeneratedAt: res.GeneratedAt,
	}
}

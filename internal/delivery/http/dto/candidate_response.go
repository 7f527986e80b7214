package dto

import (
	"time"

	"github.com/google/uuid"

	"talent-rank/internal/domain/candidate"
)

type CandidateSkill struct {
	Skill        string  `json:"skill"`
	Confidence   float64 `json:"confidence"`
	IsExplicit   bool    `json:"is_explicit"`
	Source       string  `json:"source,omitempty"`
	Proficiency  string  `json:"proficiency,omitempty"`
	InferredFrom string  `json:"inferred_from,omitempty"`
}

type CandidateResponse struct {
	ID                   uuid.UUID        `json:"id"`
	Name                 string           `json:"name"`
	Email                string           `json:"email,omitempty"`
	Phone                string           `json:"phone,omitempty"`
	YearsOfExperience    float64          `json:"years_of_experience"`
	InferredSeniority    string           `json:"inferred_seniority"`
	SeniorityConfidence  float64          `json:"seniority_confidence"`
	ExtractionConfidence float64          `json:"extraction_confidence"`
	Skills               []CandidateSkill `json:"skills"`
	CreatedAt            time.Time        `json:"created_at"`
}

func NewCandidateResponse(p candidate.Profile) CandidateResponse {
	skills := make([]CandidateSkill, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, CandidateSkill{
			Skill:        s.Skill,
			Confidence:   s.Confidence,
			IsExplicit:   s.IsExplicit,
			Source:       s.Source,
			Proficiency:  s.Proficiency,
			InferredFrom: s.InferredFrom,
		})
	}

	return CandidateResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Email:                p.Email,
		Phone:                p.Phone,
		YearsOfExperience:    p.YearsOfExperience,
		InferredSeniority:    p.InferredSeniority,
		SeniorityConfidence:  p.SeniorityConfidence,
		ExtractionConfidence: p.ExtractionConfidence,
		Skills:               skills,
		CreatedAt:            p.CreatedAt,
	}
}

func NewCandidateListResponse(profiles []candidate.Profile) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewCandidateResponse(p))
	}
	return out
}

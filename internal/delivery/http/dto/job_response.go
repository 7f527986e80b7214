package dto

import (
	"time"

	"github.com/google/uuid"

	"talent-rank/internal/domain/job"
)

type JobSkill struct {
	SkillName          string `json:"skill_name"`
	MinimumProficiency string `json:"minimum_proficiency,omitempty"`
}

type JobResponse struct {
	ID                        uuid.UUID  `json:"id"`
	Title                     string     `json:"title"`
	Company                   string     `json:"company,omitempty"`
	Description               string     `json:"description,omitempty"`
	JobLevel                  string     `json:"job_level,omitempty"`
	YearsOfExperienceRequired *float64   `json:"years_of_experience_required,omitempty"`
	RequiredSkills            []JobSkill `json:"required_skills"`
	PreferredSkills           []JobSkill `json:"preferred_skills"`
	SourceURL                 string     `json:"source_url,omitempty"`
	CreatedAt                 time.Time  `json:"created_at"`
}

func NewJobResponse(r job.Requirement) JobResponse {
	return JobResponse{
		ID:                        r.ID,
		Title:                     r.Title,
		Company:                   r.Company,
		Description:               r.Description,
		JobLevel:                  r.JobLevel,
		YearsOfExperienceRequired: r.YearsOfExperienceRequired,
		RequiredSkills:            newJobSkills(r.RequiredSkills),
		PreferredSkills:           newJobSkills(r.PreferredSkills),
		SourceURL:                 r.SourceURL,
		CreatedAt:                 r.CreatedAt,
	}
}

func NewJobListResponse(reqs []job.Requirement) []JobResponse {
	out := make([]JobResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, NewJobResponse(r))
	}
	return out
}

func newJobSkills(in []job.SkillRequirement) []JobSkill {
	out := make([]JobSkill, 0, len(in))
	for _, s := range in {
		out = append(out, JobSkill{SkillName: s.SkillName, MinimumProficiency: s.MinimumProficiency})
	}
	return out
}

package candidate

import (
	"time"

	"github.com/google/uuid"
)

// SkillMention is one observation of a skill for a candidate. Mentions are
// deduplicated by canonical skill name, keeping the highest confidence.
type SkillMention struct {
	Skill        string
	Confidence   float64
	IsExplicit   bool
	Source       string
	Proficiency  string
	Pattern      string
	InferredFrom string
}

type ExperienceEntry struct {
	Role          string
	Company       string
	DurationYears float64
	Description   string
	SkillsUsed    []string
}

type EducationEntry struct {
	Institution  string
	Degree       string
	FieldOfStudy string
	GPA          float64
}

type Project struct {
	Name         string
	Description  string
	Technologies []string
}

// Resume is the structured output of resume text parsing, before skill
// extraction and seniority inference run over it.
type Resume struct {
	Name                 string
	Email                string
	Phone                string
	YearsOfExperience    float64
	Experience           []ExperienceEntry
	Education            []EducationEntry
	Projects             []Project
	ResumeText           string
	ExtractionConfidence float64
}

// Profile is a fully enriched candidate as the ranking engine consumes it.
// InferredSeniority holds a seniority level label ("intern".."lead").
type Profile struct {
	ID                   uuid.UUID
	Name                 string
	Email                string
	Phone                string
	YearsOfExperience    float64
	Experience           []ExperienceEntry
	Skills               []SkillMention
	InferredSeniority    string
	SeniorityConfidence  float64
	ResumeText           string
	ExtractionConfidence float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

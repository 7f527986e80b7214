package job

import (
	"time"

	"github.com/google/uuid"
)

type SkillRequirement struct {
	SkillName          string
	MinimumProficiency string
}

// Requirement is a job posting as the ranking engine consumes it. JobLevel
// and YearsOfExperienceRequired are optional; absent values resolve to
// neutral scores instead of errors.
type Requirement struct {
	ID                        uuid.UUID
	Title                     string
	Company                   string
	Description               string
	JobLevel                  string
	YearsOfExperienceRequired *float64
	RequiredSkills            []SkillRequirement
	PreferredSkills           []SkillRequirement
	SourceURL                 string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

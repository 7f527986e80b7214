package seniority

import (
	"fmt"
	"strings"

	"talent-rank/internal/domain/candidate"
)

// Role-title keyword tables, checked most senior first so an ambiguous title
// like "senior engineer / team lead" classifies at its highest plausible
// level.
var (
	leadRoleKeywords   = []string{"director", "head", "vp", "cto", "ceo", "founder", "lead engineer"}
	seniorRoleKeywords = []string{"senior", "principal", "architect", "tech lead", "manager"}
	midRoleKeywords    = []string{"mid", "senior", "specialist", "expert", "lead technical"}
	juniorRoleKeywords = []string{"junior", "intern", "entry", "associate", "graduate"}

	leadershipKeywords = []string{"lead", "manager", "head", "director", "architect"}
)

// Skills that signal architectural or advanced technical depth.
var advancedTechSkills = []string{
	"system design", "architecture", "microservices", "distributed systems",
	"machine learning", "deep learning", "kubernetes", "terraform",
	"ddd", "cqrs", "event sourcing",
}

// Keyword buckets for the diversity signal. A candidate spanning 4+ buckets
// reads as high diversity, 2+ as medium.
var categoryKeywords = map[string][]string{
	"backend":  {"java", "python", "node", "spring", "django", "flask"},
	"frontend": {"react", "angular", "vue", "javascript", "html", "css"},
	"database": {"sql", "mongodb", "postgres", "mysql", "redis"},
	"cloud":    {"aws", "azure", "gcp", "docker", "kubernetes"},
	"devops":   {"docker", "kubernetes", "jenkins", "terraform", "ci/cd"},
	"data":     {"machine learning", "tensorflow", "pytorch", "pandas", "spark"},
}

var proficiencyScores = map[string]float64{
	"beginner":     0.2,
	"intermediate": 0.5,
	"advanced":     0.8,
	"expert":       1.0,
}

const defaultProficiency = 0.5

type RoleProgression struct {
	AdvancementDetected bool
	RolesHeld           []string
	Companies           []string
	AvgTenurePerRole    float64
	Indicators          []string
}

type SkillDepth struct {
	TotalSkills        int
	ExplicitCount      int
	ImplicitCount      int
	AdvancedSkillCount int
	Diversity          string
	AvgProficiency     float64
	Indicators         []string
}

type ExperienceSummary struct {
	YearsOfExperience   float64
	NumberOfRoles       int
	AvgTenurePerRole    float64
	DetectedAdvancement bool
}

type Signals struct {
	YearsLevel         Level
	YearsConfidence    float64
	RoleProgression    RoleProgression
	SkillDepth         SkillDepth
	LeadershipDetected bool
}

// Inference is the aggregated seniority verdict with itemized reasoning.
type Inference struct {
	PredictedSeniority Level
	ConfidenceScore    float64
	ConfidenceReasons  []string
	ExperienceAnalysis ExperienceSummary
	SkillAnalysis      SkillDepth
	DetailedSignals    Signals
}

// FromYears maps raw years of experience onto a level with a fixed
// per-band confidence. These are fixed breakpoints, not learned.
func FromYears(years float64) (Level, float64) {
	switch {
	case years < 1:
		return Intern, 0.9
	case years < 2:
		return Junior, 0.85
	case years < 5:
		return MidLevel, 0.75
	case years < 10:
		return Senior, 0.8
	default:
		return Lead, 0.8
	}
}

func classifyRoleLevel(role string) int {
	role = strings.ToLower(role)

	for _, kw := range leadRoleKeywords {
		if strings.Contains(role, kw) {
			return 4
		}
	}
	for _, kw := range seniorRoleKeywords {
		if strings.Contains(role, kw) {
			return 3
		}
	}
	for _, kw := range midRoleKeywords {
		if strings.Contains(role, kw) {
			return 2
		}
	}
	for _, kw := range juniorRoleKeywords {
		if strings.Contains(role, kw) {
			return 1
		}
	}
	return 1
}

// AnalyzeRoleProgression compares the first and last chronological entries;
// advancement is flagged only when the last role classifies strictly higher
// than the first. Leadership detection scans every title independently.
func AnalyzeRoleProgression(entries []candidate.ExperienceEntry) RoleProgression {
	out := RoleProgression{}
	if len(entries) == 0 {
		return out
	}

	var totalDuration float64
	seenCompany := make(map[string]struct{})
	for _, e := range entries {
		out.RolesHeld = append(out.RolesHeld, strings.ToLower(e.Role))
		if _, ok := seenCompany[e.Company]; !ok {
			seenCompany[e.Company] = struct{}{}
			out.Companies = append(out.Companies, e.Company)
		}
		totalDuration += e.DurationYears
	}
	out.AvgTenurePerRole = totalDuration / float64(len(entries))

	if len(entries) > 1 {
		first := classifyRoleLevel(entries[0].Role)
		last := classifyRoleLevel(entries[len(entries)-1].Role)
		if last > first {
			out.AdvancementDetected = true
			out.Indicators = append(out.Indicators, "Clear role progression observed")
		}
	}

	for _, role := range out.RolesHeld {
		if containsAny(role, leadershipKeywords) {
			out.Indicators = append(out.Indicators, "Leadership experience detected")
			break
		}
	}

	return out
}

// AnalyzeSkillDepth profiles a skill set: advanced-skill count, category
// diversity, and the average mapped proficiency.
func AnalyzeSkillDepth(skills []candidate.SkillMention) SkillDepth {
	out := SkillDepth{TotalSkills: len(skills), Diversity: "low"}
	if len(skills) == 0 {
		return out
	}

	categories := make(map[string]struct{})
	var totalProficiency float64
	for _, s := range skills {
		if s.IsExplicit {
			out.ExplicitCount++
		} else {
			out.ImplicitCount++
		}

		name := strings.ToLower(s.Skill)
		if containsAny(name, advancedTechSkills) {
			out.AdvancedSkillCount++
		}
		for category, keywords := range categoryKeywords {
			if containsAny(name, keywords) {
				categories[category] = struct{}{}
			}
		}

		score, ok := proficiencyScores[strings.ToLower(s.Proficiency)]
		if !ok {
			score = defaultProficiency
		}
		totalProficiency += score
	}

	switch {
	case len(categories) >= 4:
		out.Diversity = "high"
		out.Indicators = append(out.Indicators, "High skill diversity (full-stack capability)")
	case len(categories) >= 2:
		out.Diversity = "medium"
		out.Indicators = append(out.Indicators, "Medium skill diversity")
	}

	out.AvgProficiency = totalProficiency / float64(len(skills))

	if out.AdvancedSkillCount > 0 {
		out.Indicators = append(out.Indicators, fmt.Sprintf("%d advanced/architectural skills", out.AdvancedSkillCount))
	}

	return out
}

// Infer aggregates the three signals into a final level and confidence.
// Pure function of its inputs.
func Infer(years float64, entries []candidate.ExperienceEntry, skills []candidate.SkillMention) Inference {
	yearsLevel, yearsConfidence := FromYears(years)
	roles := AnalyzeRoleProgression(entries)
	depth := AnalyzeSkillDepth(skills)

	reasons := []string{
		fmt.Sprintf("Years of experience: %.1f years -> %s (%.0f%%)", years, yearsLevel, yearsConfidence*100),
	}
	if roles.AdvancementDetected {
		reasons = append(reasons, "Career progression detected (role advancement)")
	}

	leadership := false
	for _, ind := range roles.Indicators {
		if ind == "Leadership experience detected" {
			leadership = true
			reasons = append(reasons, "Leadership/management experience detected")
			break
		}
	}
	reasons = append(reasons, depth.Indicators...)

	score := float64(yearsLevel.Ordinal())
	if roles.AdvancementDetected {
		score += 0.5
	}
	switch {
	case depth.AdvancedSkillCount > 3 && depth.Diversity == "high":
		score += 0.5
	case depth.Diversity == "high":
		score += 0.3
	case depth.Diversity == "medium":
		score += 0.1
	}
	if depth.AvgProficiency > 0.75 {
		score += 0.3
	}
	if score > 4 {
		score = 4
	}

	advancementConfidence := 0.5
	if roles.AdvancementDetected {
		advancementConfidence = 0.8
	}
	confidence := yearsConfidence*0.4 + advancementConfidence*0.3 + depth.AvgProficiency*0.3
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Inference{
		PredictedSeniority: bandToLevel(score),
		ConfidenceScore:    confidence,
		ConfidenceReasons:  reasons,
		ExperienceAnalysis: ExperienceSummary{
			YearsOfExperience:   years,
			NumberOfRoles:       len(entries),
			AvgTenurePerRole:    roles.AvgTenurePerRole,
			DetectedAdvancement: roles.AdvancementDetected,
		},
		SkillAnalysis: depth,
		DetailedSignals: Signals{
			YearsLevel:         yearsLevel,
			YearsConfidence:    yearsConfidence,
			RoleProgression:    roles,
			SkillDepth:         depth,
			LeadershipDetected: leadership,
		},
	}
}

func bandToLevel(score float64) Level {
	switch {
	case score < 0.5:
		return Intern
	case score < 1.5:
		return Junior
	case score < 2.5:
		return MidLevel
	case score < 3.5:
		return Senior
	default:
		return Lead
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

package extraction

import "regexp"

// Section headers that introduce a skills list in resume text.
var skillsSectionRe = regexp.MustCompile(`(?i)(?:SKILLS?|TECHNICAL SKILLS?|CORE COMPETENCIES?|EXPERTISE)`)

// Delimiters between individual skills inside a skills section.
var skillDelimiterRe = regexp.MustCompile(`[,;•·\n]`)

// Explicit skill tokens outside these length bounds are discarded as noise.
const (
	minSkillLen = 3
	maxSkillLen = 49
)

type implicitPattern struct {
	re     *regexp.Regexp
	skills []string
}

// Action phrases that imply skills without naming them. Matches yield
// mentions at implicitConfidence with source "inferred".
var implicitPatterns = []implicitPattern{
	{regexp.MustCompile(`(?i)Built (?:REST )?(?:APIs?|services?)`), []string{"REST API", "Backend Development"}},
	{regexp.MustCompile(`(?i)Developed (?:web )?(?:applications?|apps?)`), []string{"Full Stack Development"}},
	{regexp.MustCompile(`(?i)Led (?:team|project)`), []string{"Leadership", "Project Management"}},
	{regexp.MustCompile(`(?i)Designed (?:database|schema|architecture)`), []string{"Database Design", "System Design"}},
	{regexp.MustCompile(`(?i)Optimized (?:performance|queries|database)`), []string{"Performance Optimization"}},
	{regexp.MustCompile(`(?i)Deployed (?:application|service)`), []string{"DevOps", "CI/CD"}},
	{regexp.MustCompile(`(?i)Containerized.*(?:Docker|container)`), []string{"Docker", "DevOps"}},
	{regexp.MustCompile(`(?i)Orchestrated.*(?:Kubernetes|K8s)`), []string{"Kubernetes", "DevOps"}},
}

const (
	explicitConfidence = 0.9
	implicitConfidence = 0.7
	graphConfidence    = 0.6

	SourceSkillsSection  = "skills_section"
	SourceInferred       = "inferred"
	SourceGraphInference = "skill_graph_inference"
)

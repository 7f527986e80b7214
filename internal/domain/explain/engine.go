package explain

import (
	"fmt"
	"strings"

	"talent-rank/internal/domain/job"
	"talent-rank/internal/domain/ranking"
	"talent-rank/internal/domain/seniority"
)

// Detail is one category block inside the skill-match breakdown.
type Detail struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
	Summary  string   `json:"summary"`
}

// Explanation is the recruiter-facing rationale for one ranked candidate.
type Explanation struct {
	Reason               string   `json:"reason"`
	MatchedSkills        []string `json:"matched_skills"`
	MissingSkills        []string `json:"missing_skills"`
	SkillMatchDetails    []Detail `json:"skill_match_details"`
	ExperienceAnalysis   string   `json:"experience_analysis"`
	SeniorityReasoning   string   `json:"seniority_reasoning"`
	OverallSummary       string   `json:"overall_summary"`
	HighlightedStrengths []string `json:"highlighted_strengths"`
	AreasForGrowth       []string `json:"areas_for_growth"`
}

// Explain builds the full explanation for a ranked candidate against the job
// it was ranked for. Pure function over the record.
func Explain(rec ranking.Record, req job.Requirement) Explanation {
	out := Explanation{
		MatchedSkills: rec.MatchedSkills,
		MissingSkills: rec.MissingSkills,
	}

	switch {
	case rec.OverallScore >= 85:
		out.Reason = fmt.Sprintf("Excellent candidate (#%d) with strong alignment across skills, experience, and seniority.", rec.RankPosition)
	case rec.OverallScore >= 70:
		out.Reason = fmt.Sprintf("Good candidate (#%d) with solid match on key requirements. Some gaps to address.", rec.RankPosition)
	case rec.OverallScore >= 50:
		out.Reason = fmt.Sprintf("Moderate candidate (#%d). Has potential but lacks some key qualifications.", rec.RankPosition)
	default:
		out.Reason = fmt.Sprintf("Candidate ranked #%d. Significant gaps in required skills or experience.", rec.RankPosition)
	}

	details, strengths, gaps := skillNarrative(rec.MatchedSkills, rec.MissingSkills, rec.SkillScore)
	out.SkillMatchDetails = details
	out.HighlightedStrengths = append(out.HighlightedStrengths, strengths...)
	out.AreasForGrowth = append(out.AreasForGrowth, gaps...)

	expAnalysis, expStrength, expGap := experienceNarrative(rec.YearsOfExperience, req.YearsOfExperienceRequired)
	out.ExperienceAnalysis = expAnalysis
	if expStrength != "" {
		out.HighlightedStrengths = append(out.HighlightedStrengths, expStrength)
	}
	if expGap != "" {
		out.AreasForGrowth = append(out.AreasForGrowth, expGap)
	}

	senReasoning, senStrength, senGap := seniorityNarrative(rec.CandidateSeniority, req.JobLevel)
	out.SeniorityReasoning = senReasoning
	if senStrength != "" {
		out.HighlightedStrengths = append(out.HighlightedStrengths, senStrength)
	}
	if senGap != "" {
		out.AreasForGrowth = append(out.AreasForGrowth, senGap)
	}

	out.OverallSummary = overallSummary(out, rec, req)
	return out
}

func skillNarrative(matched, missing []string, skillScore float64) ([]Detail, []string, []string) {
	var details []Detail
	var strengths, gaps []string

	if len(matched) > 0 {
		matchedStr := strings.Join(head(matched, 5), ", ")
		if len(matched) > 5 {
			matchedStr += fmt.Sprintf(", and %d more", len(matched)-5)
		}
		details = append(details, Detail{
			Category: "Matched Skills",
			Items:    matched,
			Summary:  fmt.Sprintf("Matched %d required/preferred skills: %s", len(matched), matchedStr),
		})
		strengths = append(strengths, fmt.Sprintf("Strong technical foundation with %d relevant skills", len(matched)))
	}

	if len(missing) > 0 {
		missingStr := strings.Join(head(missing, 3), ", ")
		if len(missing) > 3 {
			missingStr += fmt.Sprintf(" and %d others", len(missing)-3)
		}
		details = append(details, Detail{
			Category: "Missing Skills",
			Items:    missing,
			Summary:  fmt.Sprintf("Missing %d skills: %s", len(missing), missingStr),
		})
		gaps = append(gaps, fmt.Sprintf("Could develop %d additional skills mentioned in job posting", len(missing)))
	}

	switch {
	case skillScore >= 80:
		strengths = append(strengths, "Excellent skill match (80%+ coverage)")
	case skillScore >= 60:
		strengths = append(strengths, "Good skill match (60%+ coverage)")
	case skillScore >= 40:
		gaps = append(gaps, "Moderate skill coverage (40%+) - would benefit from upskilling")
	}

	return details, strengths, gaps
}

func experienceNarrative(years float64, required *float64) (analysis, strength, gap string) {
	if required == nil {
		return fmt.Sprintf("Candidate has %.1f years of experience (no specific requirement for this role).", years), "", ""
	}

	diff := years - *required
	if diff >= 0 {
		analysis = fmt.Sprintf("Candidate has %.1f years of experience, meeting the requirement of %g years.", years, *required)
		if diff > 2 {
			strength = fmt.Sprintf("Significantly exceeds experience requirement by %.1f years", diff)
		} else {
			strength = fmt.Sprintf("Meets experience requirement with %.1f additional years", diff)
		}
		return analysis, strength, ""
	}

	analysis = fmt.Sprintf("Candidate has %.1f years of experience, which is %.1f years below the requirement of %g years.", years, -diff, *required)
	gap = fmt.Sprintf("Lacks %.1f years of required experience", -diff)
	return analysis, "", gap
}

func seniorityNarrative(candidateLevel, jobLevel string) (reasoning, strength, gap string) {
	if strings.TrimSpace(jobLevel) == "" {
		return fmt.Sprintf("Candidate inferred as %s.", titleLabel(candidateLevel)), "", ""
	}

	reasoning = fmt.Sprintf("Candidate seniority (%s) vs. Job level (%s). ", titleLabel(candidateLevel), titleLabel(jobLevel))

	cand, candOK := seniority.ParseLevel(candidateLevel)
	want, jobOK := seniority.ParseLevel(jobLevel)
	if !candOK || !jobOK {
		return reasoning + "Unable to precisely match seniority levels.", "", ""
	}

	diff := cand.Ordinal() - want.Ordinal()
	switch {
	case diff == 0:
		reasoning += "Perfect seniority alignment."
		strength = fmt.Sprintf("Exact seniority match for the %s position", jobLevel)
	case diff > 0:
		reasoning += fmt.Sprintf("Candidate is %d level(s) more senior (over-qualified).", diff)
		strength = "Over-qualified candidate brings depth and mentoring potential"
	default:
		reasoning += fmt.Sprintf("Candidate is %d level(s) less senior.", -diff)
		gap = "Candidate may require more mentorship/support to hit the ground running"
	}
	return reasoning, strength, gap
}

func overallSummary(exp Explanation, rec ranking.Record, req job.Requirement) string {
	name := rec.CandidateName
	if name == "" {
		name = "Candidate"
	}
	title := req.Title
	if title == "" {
		title = "Position"
	}

	parts := []string{
		fmt.Sprintf("%s is ranked #%d for the %s position with an overall match score of %.0f/100.", name, rec.RankPosition, title, rec.OverallScore),
	}
	if len(exp.HighlightedStrengths) > 0 {
		parts = append(parts, fmt.Sprintf("Key strengths: %s.", strings.Join(head(exp.HighlightedStrengths, 2), ", ")))
	}
	if len(exp.AreasForGrowth) > 0 {
		parts = append(parts, fmt.Sprintf("Areas for growth: %s.", strings.Join(head(exp.AreasForGrowth, 2), ", ")))
	}

	switch {
	case rec.OverallScore >= 80:
		parts = append(parts, "RECOMMENDATION: Highly recommended for interview - strong overall fit.")
	case rec.OverallScore >= 65:
		parts = append(parts, "RECOMMENDATION: Consider for interview - reasonable match with some areas to address.")
	case rec.OverallScore >= 50:
		parts = append(parts, "RECOMMENDATION: May interview if pipeline is thin - address specific gaps before proceeding.")
	default:
		parts = append(parts, "RECOMMENDATION: Not recommended at this stage - significant gaps in key qualifications.")
	}

	return strings.Join(parts, " ")
}

// titleLabel renders a stored level label for prose ("mid_level" -> "Mid Level").
func titleLabel(label string) string {
	words := strings.Fields(strings.ReplaceAll(label, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func head(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

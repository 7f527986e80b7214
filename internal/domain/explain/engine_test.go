package explain

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"talent-rank/internal/domain/job"
	"talent-rank/internal/domain/ranking"
)

func floatPtr(f float64) *float64 { return &f }

func TestExplain_ExcellentCandidate(t *testing.T) {
	rec := ranking.Record{
		CandidateName:      "Ada",
		OverallScore:       92,
		SkillScore:         95,
		ExperienceScore:    100,
		SeniorityScore:     100,
		RankPosition:       1,
		MatchedSkills:      []string{"python", "docker", "kubernetes"},
		YearsOfExperience:  6,
		CandidateSeniority: "senior",
	}
	req := job.Requirement{Title: "Backend Engineer", JobLevel: "senior", YearsOfExperienceRequired: floatPtr(5)}

	exp := Explain(rec, req)

	if exp.Reason != "Excellent candidate (#1) with strong alignment across skills, experience, and seniority." {
		t.Fatalf("reason = %q", exp.Reason)
	}
	if !strings.Contains(exp.OverallSummary, "Ada is ranked #1 for the Backend Engineer position with an overall match score of 92/100.") {
		t.Fatalf("summary = %q", exp.OverallSummary)
	}
	if !strings.Contains(exp.OverallSummary, "RECOMMENDATION: Highly recommended for interview") {
		t.Fatalf("missing recommendation: %q", exp.OverallSummary)
	}
	if !strings.Contains(exp.SeniorityReasoning, "Perfect seniority alignment.") {
		t.Fatalf("seniority reasoning = %q", exp.SeniorityReasoning)
	}
	if !strings.Contains(exp.ExperienceAnalysis, "meeting the requirement of 5 years") {
		t.Fatalf("experience analysis = %q", exp.ExperienceAnalysis)
	}
}

func TestExplain_ReasonBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{90, "Excellent candidate"},
		{75, "Good candidate"},
		{55, "Moderate candidate"},
		{30, "Significant gaps"},
	}
	for _, c := range cases {
		exp := Explain(ranking.Record{OverallScore: c.score, RankPosition: 2}, job.Requirement{})
		if !strings.Contains(exp.Reason, c.want) {
			t.Fatalf("score %.0f: reason %q lacks %q", c.score, exp.Reason, c.want)
		}
	}
}

func TestExplain_SkillListsTruncated(t *testing.T) {
	rec := ranking.Record{
		SkillScore:    90,
		MatchedSkills: []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"},
		MissingSkills: []string{"b1", "b2", "b3", "b4", "b5"},
	}
	exp := Explain(rec, job.Requirement{})

	var matchedSummary, missingSummary string
	for _, d := range exp.SkillMatchDetails {
		switch d.Category {
		case "Matched Skills":
			matchedSummary = d.Summary
		case "Missing Skills":
			missingSummary = d.Summary
		}
	}
	if !strings.Contains(matchedSummary, "and 2 more") {
		t.Fatalf("matched summary = %q", matchedSummary)
	}
	if !strings.Contains(missingSummary, "and 2 others") {
		t.Fatalf("missing summary = %q", missingSummary)
	}
}

func TestExplain_ExperienceGap(t *testing.T) {
	rec := ranking.Record{YearsOfExperience: 2, CandidateSeniority: "junior", RankPosition: 4}
	req := job.Requirement{JobLevel: "senior", YearsOfExperienceRequired: floatPtr(5)}

	exp := Explain(rec, req)
	if !strings.Contains(exp.ExperienceAnalysis, "3.0 years below the requirement") {
		t.Fatalf("experience analysis = %q", exp.ExperienceAnalysis)
	}
	found := false
	for _, g := range exp.AreasForGrowth {
		if g == "Lacks 3.0 years of required experience" {
			found = true
		}
	}
	if !found {
		t.Fatalf("growth areas = %v", exp.AreasForGrowth)
	}
	if !strings.Contains(exp.SeniorityReasoning, "Candidate is 2 level(s) less senior.") {
		t.Fatalf("seniority reasoning = %q", exp.SeniorityReasoning)
	}
}

func TestExplain_OverqualifiedAndDisplayCasing(t *testing.T) {
	rec := ranking.Record{CandidateSeniority: "mid_level", RankPosition: 1, OverallScore: 70}
	req := job.Requirement{JobLevel: "junior"}

	exp := Explain(rec, req)
	if !strings.Contains(exp.SeniorityReasoning, "Candidate seniority (Mid Level) vs. Job level (Junior).") {
		t.Fatalf("seniority reasoning = %q", exp.SeniorityReasoning)
	}
	if !strings.Contains(exp.SeniorityReasoning, "1 level(s) more senior (over-qualified)") {
		t.Fatalf("seniority reasoning = %q", exp.SeniorityReasoning)
	}
}

func TestExplain_NoRequirements(t *testing.T) {
	rec := ranking.Record{YearsOfExperience: 3.5, CandidateSeniority: "mid_level"}
	exp := Explain(rec, job.Requirement{})

	if exp.ExperienceAnalysis != "Candidate has 3.5 years of experience (no specific requirement for this role)." {
		t.Fatalf("experience analysis = %q", exp.ExperienceAnalysis)
	}
	if exp.SeniorityReasoning != "Candidate inferred as Mid Level." {
		t.Fatalf("seniority reasoning = %q", exp.SeniorityReasoning)
	}
}

func TestBiasMitigationReport(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	original := []ranking.Record{
		{CandidateID: a, RankPosition: 1},
		{CandidateID: b, RankPosition: 2},
		{CandidateID: c, RankPosition: 3},
	}
	mitigated := []ranking.Record{
		{CandidateID: b, RankPosition: 1},
		{CandidateID: a, RankPosition: 2},
		{CandidateID: c, RankPosition: 3},
	}

	report := BiasMitigationReport(original, mitigated)
	if !report.BiasMitigationApplied {
		t.Fatalf("applied flag not set")
	}
	if report.CandidatesReranked != 2 {
		t.Fatalf("reranked = %d, want 2", report.CandidatesReranked)
	}
	if report.RankingStability < 0.33 || report.RankingStability > 0.34 {
		t.Fatalf("stability = %.2f", report.RankingStability)
	}
	if len(report.Details) != 2 {
		t.Fatalf("details = %+v", report.Details)
	}
	// Details follow original order: a moved down, b moved up.
	if report.Details[0].CandidateID != a || report.Details[0].Change != "adjusted" {
		t.Fatalf("first detail = %+v", report.Details[0])
	}
	if report.Details[1].CandidateID != b || report.Details[1].Change != "improved" {
		t.Fatalf("second detail = %+v", report.Details[1])
	}
}

func TestBiasMitigationReport_Empty(t *testing.T) {
	report := BiasMitigationReport(nil, nil)
	if report.RankingStability != 0 || report.CandidatesReranked != 0 {
		t.Fatalf("empty input report = %+v", report)
	}
	if len(report.AttributesMasked) != 3 {
		t.Fatalf("attributes masked = %v", report.AttributesMasked)
	}
}

func TestBiasMitigationReport_MissingCandidateCounts(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	original := []ranking.Record{
		{CandidateID: a, RankPosition: 1},
		{CandidateID: b, RankPosition: 2},
	}
	mitigated := []ranking.Record{
		{CandidateID: a, RankPosition: 1},
	}

	report := BiasMitigationReport(original, mitigated)
	if report.CandidatesReranked != 1 {
		t.Fatalf("reranked = %d, want 1", report.CandidatesReranked)
	}
	if report.RankingStability != 0.5 {
		t.Fatalf("stability = %.2f, want 0.50", report.RankingStability)
	}
	if len(report.Details) != 1 {
		t.Fatalf("details = %+v", report.Details)
	}
	d := report.Details[0]
	if d.CandidateID != b || d.Change != "adjusted" || d.MitigatedPosition != 0 {
		t.Fatalf("detail = %+v", d)
	}
}

func TestBiasMitigationReport_Stable(t *testing.T) {
	a := uuid.New()
	recs := []ranking.Record{{CandidateID: a, RankPosition: 1}}
	report := BiasMitigationReport(recs, recs)
	if report.RankingStability != 1.0 || report.CandidatesReranked != 0 {
		t.Fatalf("stable ranking report = %+v", report)
	}
}

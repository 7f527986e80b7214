package ranking

import (
	"testing"

	"github.com/google/uuid"

	"talent-rank/internal/domain/candidate"
	"talent-rank/internal/domain/job"
)

func mentions(skills ...string) []candidate.SkillMention {
	out := make([]candidate.SkillMention, 0, len(skills))
	for _, s := range skills {
		out = append(out, candidate.SkillMention{Skill: s, Confidence: 0.9, IsExplicit: true})
	}
	return out
}

func reqs(skills ...string) []job.SkillRequirement {
	out := make([]job.SkillRequirement, 0, len(skills))
	for _, s := range skills {
		out = append(out, job.SkillRequirement{SkillName: s})
	}
	return out
}

func floatPtr(f float64) *float64 { return &f }

func TestSkillMatchScore_FullMatch(t *testing.T) {
	m := SkillMatchScore(mentions("Python", "Docker", "React"), reqs("Python", "Docker"), reqs("React"))
	if m.Score != 100 {
		t.Fatalf("score = %.1f, want 100", m.Score)
	}
	if len(m.Missing) != 0 {
		t.Fatalf("missing = %v", m.Missing)
	}
	if len(m.Matched) != 3 || m.Matched[0] != "python" || m.Matched[2] != "react" {
		t.Fatalf("matched = %v", m.Matched)
	}
}

func TestSkillMatchScore_PartialRequired(t *testing.T) {
	m := SkillMatchScore(mentions("Python"), reqs("Python", "Docker"), reqs("React"))
	// 1/2 required at 70% weight, 0/1 preferred.
	if m.Score != 35 {
		t.Fatalf("score = %.1f, want 35", m.Score)
	}
	if len(m.Missing) != 2 || m.Missing[0] != "docker" || m.Missing[1] != "react" {
		t.Fatalf("missing = %v", m.Missing)
	}
}

func TestSkillMatchScore_RequiredOnly(t *testing.T) {
	m := SkillMatchScore(mentions("Python"), reqs("Python", "Docker"), nil)
	if m.Score != 50 {
		t.Fatalf("score = %.1f, want 50", m.Score)
	}
}

func TestSkillMatchScore_EmptyJobLists(t *testing.T) {
	if m := SkillMatchScore(mentions("Python"), nil, nil); m.Score != 50 {
		t.Fatalf("score = %.1f, want neutral 50", m.Score)
	}
}

func TestSkillMatchScore_SubstringAndUnderscore(t *testing.T) {
	m := SkillMatchScore(mentions("PostgreSQL 15", "machine_learning"), reqs("PostgreSQL", "Machine Learning"), nil)
	if m.Score != 100 {
		t.Fatalf("fuzzy variants should match: score = %.1f, missing = %v", m.Score, m.Missing)
	}
}

func TestExperienceMatchScore(t *testing.T) {
	cases := []struct {
		years    float64
		required *float64
		want     float64
	}{
		{3, nil, 70},
		{3, floatPtr(0), 70},
		{5, floatPtr(5), 100},
		{5.5, floatPtr(5), 100},
		{4.5, floatPtr(5), 100},
		{6.5, floatPtr(5), 95},
		{8, floatPtr(5), 90},
		{4.2, floatPtr(5), 85},
		{3.5, floatPtr(5), 70},
		{2, floatPtr(5), 40},
		{1.5, floatPtr(4), 45},
	}
	for _, c := range cases {
		if got := ExperienceMatchScore(c.years, c.required); got != c.want {
			t.Fatalf("ExperienceMatchScore(%.1f, %v) = %.1f, want %.1f", c.years, c.required, got, c.want)
		}
	}
}

func TestSeniorityAlignmentScore(t *testing.T) {
	cases := []struct {
		cand, job string
		want      float64
	}{
		{"senior", "", 70},
		{"senior", "senior", 100},
		{"lead", "senior", 90},
		{"lead", "junior", 80},
		{"mid_level", "senior", 75},
		{"intern", "senior", 50},
		{"junior", "lead", 50},
		{"something odd", "mid-level", 100},
	}
	for _, c := range cases {
		if got := SeniorityAlignmentScore(c.cand, c.job); got != c.want {
			t.Fatalf("SeniorityAlignmentScore(%q, %q) = %.1f, want %.1f", c.cand, c.job, got, c.want)
		}
	}
}

func TestRank_OrderAndPercentile(t *testing.T) {
	jobReq := job.Requirement{
		Title:                     "Backend Engineer",
		JobLevel:                  "senior",
		YearsOfExperienceRequired: floatPtr(5),
		RequiredSkills:            reqs("Python", "Docker"),
	}
	candidates := []candidate.Profile{
		{ID: uuid.New(), Name: "Weak", YearsOfExperience: 1, InferredSeniority: "junior"},
		{ID: uuid.New(), Name: "Strong", YearsOfExperience: 5, InferredSeniority: "senior", Skills: mentions("Python", "Docker")},
		{ID: uuid.New(), Name: "Middle", YearsOfExperience: 5, InferredSeniority: "senior", Skills: mentions("Python")},
	}

	records := Rank(candidates, jobReq, DefaultWeights())
	if len(records) != 3 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].CandidateName != "Strong" || records[1].CandidateName != "Middle" || records[2].CandidateName != "Weak" {
		t.Fatalf("order: %s, %s, %s", records[0].CandidateName, records[1].CandidateName, records[2].CandidateName)
	}
	if records[0].RankPosition != 1 || records[2].RankPosition != 3 {
		t.Fatalf("positions: %d..%d", records[0].RankPosition, records[2].RankPosition)
	}
	if records[0].Percentile != 100 {
		t.Fatalf("top percentile = %.1f, want 100", records[0].Percentile)
	}
	if records[2].Percentile >= records[1].Percentile {
		t.Fatalf("percentiles not decreasing: %.1f >= %.1f", records[2].Percentile, records[1].Percentile)
	}
}

func TestRank_OverallFormula(t *testing.T) {
	jobReq := job.Requirement{
		JobLevel:                  "senior",
		YearsOfExperienceRequired: floatPtr(5),
		RequiredSkills:            reqs("Python", "Docker"),
	}
	p := candidate.Profile{
		ID:                uuid.New(),
		Name:              "Exact",
		YearsOfExperience: 5,
		InferredSeniority: "senior",
		Skills:            mentions("Python", "Docker"),
	}

	w := DefaultWeights()
	rec := Score(p, jobReq, w)
	want := w.Skill*rec.SkillScore + w.Experience*rec.ExperienceScore + w.Seniority*rec.SeniorityScore
	if rec.OverallScore != want {
		t.Fatalf("overall = %.4f, want %.4f", rec.OverallScore, want)
	}
	if rec.OverallScore != 100 {
		t.Fatalf("perfect candidate scored %.1f", rec.OverallScore)
	}
}

func TestRank_PermutationInvariant(t *testing.T) {
	jobReq := job.Requirement{
		JobLevel:       "senior",
		RequiredSkills: reqs("Python", "Docker", "Kubernetes"),
	}
	a := candidate.Profile{ID: uuid.New(), Name: "A", InferredSeniority: "senior", Skills: mentions("Python", "Docker", "Kubernetes")}
	b := candidate.Profile{ID: uuid.New(), Name: "B", InferredSeniority: "senior", Skills: mentions("Python", "Docker")}
	c := candidate.Profile{ID: uuid.New(), Name: "C", InferredSeniority: "junior", Skills: mentions("Python")}

	first := Rank([]candidate.Profile{a, b, c}, jobReq, DefaultWeights())
	second := Rank([]candidate.Profile{c, a, b}, jobReq, DefaultWeights())

	for i := range first {
		if first[i].CandidateID != second[i].CandidateID {
			t.Fatalf("position %d differs: %s vs %s", i+1, first[i].CandidateName, second[i].CandidateName)
		}
	}
}

package seniority

import (
	"testing"

	"talent-rank/internal/domain/candidate"
)

func TestFromYears_Bands(t *testing.T) {
	cases := []struct {
		years float64
		want  Level
		conf  float64
	}{
		{0.5, Intern, 0.9},
		{1.5, Junior, 0.85},
		{3.0, MidLevel, 0.75},
		{7.0, Senior, 0.8},
		{12.0, Lead, 0.8},
	}
	for _, c := range cases {
		level, conf := FromYears(c.years)
		if level != c.want || conf != c.conf {
			t.Fatalf("FromYears(%.1f) = %s/%.2f, want %s/%.2f", c.years, level, conf, c.want, c.conf)
		}
	}
}

func TestInfer_JuniorFromYearsAlone(t *testing.T) {
	res := Infer(1.5, nil, nil)
	if res.PredictedSeniority != Junior {
		t.Fatalf("predicted %s, want junior", res.PredictedSeniority)
	}
	if res.DetailedSignals.YearsConfidence < 0.7 {
		t.Fatalf("years confidence %.2f, want >= 0.7", res.DetailedSignals.YearsConfidence)
	}
}

func TestInfer_LeadFromYearsAlone(t *testing.T) {
	res := Infer(12.0, nil, nil)
	if res.PredictedSeniority != Lead {
		t.Fatalf("predicted %s, want lead", res.PredictedSeniority)
	}
	if res.DetailedSignals.YearsConfidence < 0.7 {
		t.Fatalf("years confidence %.2f, want >= 0.7", res.DetailedSignals.YearsConfidence)
	}
}

func TestAnalyzeRoleProgression_Advancement(t *testing.T) {
	entries := []candidate.ExperienceEntry{
		{Role: "Junior Developer", Company: "Acme", DurationYears: 2},
		{Role: "Senior Engineer", Company: "Beta", DurationYears: 3},
	}
	out := AnalyzeRoleProgression(entries)
	if !out.AdvancementDetected {
		t.Fatalf("advancement not detected for junior -> senior")
	}
	if out.AvgTenurePerRole != 2.5 {
		t.Fatalf("avg tenure %.1f, want 2.5", out.AvgTenurePerRole)
	}
	if len(out.Companies) != 2 {
		t.Fatalf("companies %v", out.Companies)
	}
}

func TestAnalyzeRoleProgression_NoAdvancement(t *testing.T) {
	entries := []candidate.ExperienceEntry{
		{Role: "Senior Engineer", Company: "Acme", DurationYears: 3},
		{Role: "Senior Engineer", Company: "Beta", DurationYears: 2},
	}
	if out := AnalyzeRoleProgression(entries); out.AdvancementDetected {
		t.Fatalf("flat career flagged as advancement")
	}
}

func TestAnalyzeRoleProgression_LeadershipIndicator(t *testing.T) {
	entries := []candidate.ExperienceEntry{
		{Role: "Engineering Manager", Company: "Acme", DurationYears: 4},
	}
	out := AnalyzeRoleProgression(entries)
	found := false
	for _, ind := range out.Indicators {
		if ind == "Leadership experience detected" {
			found = true
		}
	}
	if !found {
		t.Fatalf("leadership title not detected: %v", out.Indicators)
	}
}

func TestAnalyzeSkillDepth_Diversity(t *testing.T) {
	skills := []candidate.SkillMention{
		{Skill: "Python", IsExplicit: true},
		{Skill: "React", IsExplicit: true},
		{Skill: "PostgreSQL", IsExplicit: true},
		{Skill: "AWS", IsExplicit: true},
	}
	out := AnalyzeSkillDepth(skills)
	if out.Diversity != "high" {
		t.Fatalf("diversity %q, want high", out.Diversity)
	}
	if out.ExplicitCount != 4 || out.ImplicitCount != 0 {
		t.Fatalf("explicit/implicit = %d/%d", out.ExplicitCount, out.ImplicitCount)
	}
}

func TestAnalyzeSkillDepth_AdvancedAndProficiency(t *testing.T) {
	skills := []candidate.SkillMention{
		{Skill: "System Design", Proficiency: "expert"},
		{Skill: "Kubernetes", Proficiency: "advanced"},
	}
	out := AnalyzeSkillDepth(skills)
	if out.AdvancedSkillCount != 2 {
		t.Fatalf("advanced count %d, want 2", out.AdvancedSkillCount)
	}
	if out.AvgProficiency != 0.9 {
		t.Fatalf("avg proficiency %.2f, want 0.90", out.AvgProficiency)
	}
}

func TestInfer_SignalsLiftLevel(t *testing.T) {
	// 4 years alone is mid_level; advancement plus a deep, diverse skill
	// set should push the aggregate into senior.
	entries := []candidate.ExperienceEntry{
		{Role: "Junior Developer", Company: "Acme", DurationYears: 1.5},
		{Role: "Tech Lead", Company: "Beta", DurationYears: 2.5},
	}
	skills := []candidate.SkillMention{
		{Skill: "System Design", Proficiency: "expert"},
		{Skill: "Microservices", Proficiency: "expert"},
		{Skill: "Kubernetes", Proficiency: "expert"},
		{Skill: "Distributed Systems", Proficiency: "expert"},
		{Skill: "Python", Proficiency: "expert"},
		{Skill: "React", Proficiency: "expert"},
		{Skill: "PostgreSQL", Proficiency: "expert"},
		{Skill: "AWS", Proficiency: "expert"},
	}
	res := Infer(4.0, entries, skills)
	if res.PredictedSeniority != Senior {
		t.Fatalf("predicted %s, want senior", res.PredictedSeniority)
	}
	if !res.ExperienceAnalysis.DetectedAdvancement {
		t.Fatalf("advancement lost in summary")
	}
}

func TestInfer_ScoreClamped(t *testing.T) {
	entries := []candidate.ExperienceEntry{
		{Role: "Junior Developer", Company: "Acme", DurationYears: 3},
		{Role: "CTO", Company: "Beta", DurationYears: 10},
	}
	skills := []candidate.SkillMention{
		{Skill: "System Design", Proficiency: "expert"},
		{Skill: "Architecture", Proficiency: "expert"},
		{Skill: "Microservices", Proficiency: "expert"},
		{Skill: "Kubernetes", Proficiency: "expert"},
		{Skill: "Python", Proficiency: "expert"},
		{Skill: "React", Proficiency: "expert"},
		{Skill: "PostgreSQL", Proficiency: "expert"},
	}
	res := Infer(15.0, entries, skills)
	if res.PredictedSeniority != Lead {
		t.Fatalf("predicted %s, want lead", res.PredictedSeniority)
	}
	if res.ConfidenceScore > 1.0 {
		t.Fatalf("confidence %.2f exceeds 1.0", res.ConfidenceScore)
	}
}

func TestParseLevel(t *testing.T) {
	if l, ok := ParseLevel("Mid-Level"); !ok || l != MidLevel {
		t.Fatalf("ParseLevel(Mid-Level) = %s/%v", l, ok)
	}
	if l, ok := ParseLevel("staff"); ok || l != MidLevel {
		t.Fatalf("unknown label should default to mid_level: %s/%v", l, ok)
	}
}

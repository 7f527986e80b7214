package importer

import (
	"testing"

	"talent-rank/internal/domain/job"
	"talent-rank/internal/domain/skillgraph"
)

func TestSplitSkills_RequiredAndPreferred(t *testing.T) {
	imp := NewJobPostImporter(skillgraph.New(nil), nil)

	desc := "We need strong Go and PostgreSQL experience.\n" +
		"Nice to have:\n" +
		"Familiarity with Kubernetes is a plus."

	required, preferred := imp.splitSkills(desc)

	if !hasSkill(required, "Go") || !hasSkill(required, "PostgreSQL") {
		t.Fatalf("expected Go and PostgreSQL required, got %+v", required)
	}
	if !hasSkill(preferred, "Kubernetes") {
		t.Fatalf("expected Kubernetes preferred, got %+v", preferred)
	}
	if hasSkill(required, "Kubernetes") {
		t.Fatalf("Kubernetes should not be required")
	}
}

func TestIndexSkill_WholeWordOnly(t *testing.T) {
	if idx := indexSkill("we use google analytics", "go"); idx != -1 {
		t.Fatalf("expected no match inside google, got %d", idx)
	}
	if idx := indexSkill("written in go, deployed daily", "go"); idx != 11 {
		t.Fatalf("expected match at 11, got %d", idx)
	}
}

func TestInferJobLevel(t *testing.T) {
	cases := []struct {
		title, desc, want string
	}{
		{"Senior Backend Engineer", "", "senior"},
		{"Junior Developer", "", "junior"},
		{"Staff Engineer", "", "lead"},
		{"Software Engineering Intern", "", "intern"},
		{"Backend Engineer", "This is an entry level role.", "junior"},
		{"Backend Engineer", "", ""},
	}
	for _, c := range cases {
		if got := inferJobLevel(c.title, c.desc); got != c.want {
			t.Fatalf("inferJobLevel(%q, %q) = %q, want %q", c.title, c.desc, got, c.want)
		}
	}
}

func TestExtractYearsRequired(t *testing.T) {
	if y := extractYearsRequired("Requires 5+ years of experience with Go."); y == nil || *y != 5 {
		t.Fatalf("expected 5 years, got %v", y)
	}
	if y := extractYearsRequired("No requirement stated."); y != nil {
		t.Fatalf("expected nil, got %v", *y)
	}
}

func hasSkill(in []job.SkillRequirement, name string) bool {
	for _, s := range in {
		if s.SkillName == name {
			return true
		}
	}
	return false
}

package extraction

import (
	"strings"
	"testing"

	"talent-rank/internal/domain/candidate"
	"talent-rank/internal/domain/skillgraph"
)

func newTestExtractor() *Extractor {
	return NewExtractor(skillgraph.New(nil), 1, nil)
}

func TestExtractExplicit_SkillsSection(t *testing.T) {
	e := newTestExtractor()

	text := "Jane Doe\n\nSKILLS\npython, Kubernetes; PostgreSQL, React\n\nEXPERIENCE\nshipped things"
	mentions := e.ExtractExplicit(text)
	if len(mentions) == 0 {
		t.Fatalf("no explicit skills found")
	}

	byName := mentionIndex(mentions)
	for _, want := range []string{"Python", "Kubernetes", "PostgreSQL", "React"} {
		m, ok := byName[want]
		if !ok {
			t.Fatalf("missing %s in %v", want, names(mentions))
		}
		if m.Confidence != 0.9 || !m.IsExplicit || m.Source != SourceSkillsSection {
			t.Fatalf("bad mention for %s: %+v", want, m)
		}
	}
}

func TestExtractExplicit_NoSection(t *testing.T) {
	e := newTestExtractor()

	if got := e.ExtractExplicit("just a plain paragraph with Python in it"); len(got) != 0 {
		t.Fatalf("expected empty result without a skills section, got %v", names(got))
	}
}

func TestExtractExplicit_LengthBounds(t *testing.T) {
	e := newTestExtractor()

	long := strings.Repeat("x", 60)
	text := "SKILLS\nPython, ab, " + long
	byName := mentionIndex(e.ExtractExplicit(text))

	if _, ok := byName["Python"]; !ok {
		t.Fatalf("valid token filtered")
	}
	// "ab" is below the 3-char bound, the repeated token above 49 chars.
	if _, ok := byName["ab"]; ok {
		t.Fatalf("2-char token not filtered")
	}
	if _, ok := byName[long]; ok {
		t.Fatalf("overlong token not filtered")
	}
}

func TestExtractImplicit_Patterns(t *testing.T) {
	e := newTestExtractor()

	text := "Built REST APIs for payments. Orchestrated workloads on Kubernetes."
	byName := mentionIndex(e.ExtractImplicit(text))

	for _, want := range []string{"REST API", "Backend Development", "Kubernetes", "DevOps"} {
		m, ok := byName[want]
		if !ok {
			t.Fatalf("missing inferred skill %s", want)
		}
		if m.Confidence != 0.7 || m.IsExplicit || m.Source != SourceInferred {
			t.Fatalf("bad mention for %s: %+v", want, m)
		}
	}
}

func TestExtractAll_DedupKeepsHigherConfidence(t *testing.T) {
	e := newTestExtractor()

	resume := candidate.Resume{
		ResumeText: "SKILLS\nDocker, Redis\n\nEXPERIENCE\nContainerized services with Docker",
	}
	res := e.ExtractAll(resume)

	m, ok := mentionIndex(res.AllSkills)["Docker"]
	if !ok {
		t.Fatalf("Docker missing from %v", names(res.AllSkills))
	}
	if m.Confidence != 0.9 || !m.IsExplicit {
		t.Fatalf("explicit mention should win dedup: %+v", m)
	}
}

func TestExtractAll_GraphAugmentation(t *testing.T) {
	e := newTestExtractor()

	resume := candidate.Resume{ResumeText: "SKILLS\nSpring Boot\n"}
	res := e.ExtractAll(resume)

	m, ok := mentionIndex(res.InferredSkills)["Java"]
	if !ok {
		t.Fatalf("graph inference missed Java: %v", names(res.InferredSkills))
	}
	if m.Confidence != 0.6 || m.Source != SourceGraphInference || m.InferredFrom != "Spring Boot" {
		t.Fatalf("bad graph mention: %+v", m)
	}
}

func TestExtractAll_GraphNeverDuplicates(t *testing.T) {
	e := newTestExtractor()

	resume := candidate.Resume{ResumeText: "SKILLS\nSpring Boot, Java\n"}
	res := e.ExtractAll(resume)

	count := 0
	for _, m := range res.AllSkills {
		if m.Skill == "Java" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Java appears %d times", count)
	}
}

func TestExtractAll_PrimarySkills(t *testing.T) {
	e := newTestExtractor()

	resume := candidate.Resume{
		ResumeText: "SKILLS\nRust, Python, Redis, PostgreSQL, Docker, Kubernetes, AWS\n",
	}
	res := e.ExtractAll(resume)

	if len(res.PrimarySkills) != 5 {
		t.Fatalf("primary skills = %d, want 5", len(res.PrimarySkills))
	}
	// All explicit at 0.9; ties keep first-seen order.
	if res.PrimarySkills[0].Skill != "Rust" || res.PrimarySkills[4].Skill != "Docker" {
		t.Fatalf("tie-break order wrong: %v", names(res.PrimarySkills))
	}
}

func TestExtractAll_ProjectTechnologies(t *testing.T) {
	e := newTestExtractor()

	resume := candidate.Resume{
		Projects: []candidate.Project{{Name: "infra", Technologies: []string{"Containerized the stack with Docker"}}},
	}
	res := e.ExtractAll(resume)

	if _, ok := mentionIndex(res.AllSkills)["Docker"]; !ok {
		t.Fatalf("project technologies not scanned: %v", names(res.AllSkills))
	}
}

func TestExtractAll_EmptyResume(t *testing.T) {
	e := newTestExtractor()

	res := e.ExtractAll(candidate.Resume{})
	if res.SkillCount != 0 || len(res.AllSkills) != 0 {
		t.Fatalf("empty resume produced %v", names(res.AllSkills))
	}
}

func mentionIndex(mentions []candidate.SkillMention) map[string]candidate.SkillMention {
	out := make(map[string]candidate.SkillMention, len(mentions))
	for _, m := range mentions {
		if _, ok := out[m.Skill]; !ok {
			out[m.Skill] = m
		}
	}
	return out
}

func names(mentions []candidate.SkillMention) []string {
	out := make([]string, 0, len(mentions))
	for _, m := range mentions {
		out = append(out, m.Skill)
	}
	return out
}

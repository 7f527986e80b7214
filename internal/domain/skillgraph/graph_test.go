package skillgraph

import (
	"bytes"
	"strings"
	"testing"
)

func TestNormalize_ExactCaseInsensitive(t *testing.T) {
	g := New(nil)

	if got := g.Normalize("python"); got != "Python" {
		t.Fatalf("Normalize(python) = %q, want Python", got)
	}
	if got := g.Normalize("PYTHON"); got != "Python" {
		t.Fatalf("Normalize(PYTHON) = %q, want Python", got)
	}
}

func TestNormalize_PartialMatch(t *testing.T) {
	g := New(nil)

	if got := g.Normalize("PostgreSQL 15"); got != "PostgreSQL" {
		t.Fatalf("Normalize(PostgreSQL 15) = %q, want PostgreSQL", got)
	}
}

func TestNormalize_UnknownReturnsInput(t *testing.T) {
	g := New(nil)

	if got := g.Normalize("Underwater Basket Weaving"); got != "Underwater Basket Weaving" {
		t.Fatalf("unknown skill rewritten to %q", got)
	}
}

func TestRelatedSkills_DepthZeroEmpty(t *testing.T) {
	g := New(nil)

	if got := g.RelatedSkills("Java", 0); len(got) != 0 {
		t.Fatalf("depth=0 returned %v", got)
	}
}

func TestRelatedSkills_JavaDefaultOntology(t *testing.T) {
	g := New(nil)

	related := g.RelatedSkills("Java", 1)
	if len(related) == 0 {
		t.Fatalf("expected non-empty related set for Java")
	}

	found := false
	for _, name := range related {
		if cat, ok := g.Category(name); ok && cat == "Domain" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a domain-tagged skill among %v", related)
	}
}

func TestRelatedSkills_BothDirections(t *testing.T) {
	g := New(nil)

	// Spring Boot -> Java is a directed requires edge; inference must see it
	// from the Java side too.
	related := g.RelatedSkills("Java", 1)
	if !contains(related, "Spring Boot") {
		t.Fatalf("reverse edge not followed, got %v", related)
	}
}

func TestRelatedSkills_DepthBound(t *testing.T) {
	g := New(nil)

	depth1 := g.RelatedSkills("React", 1)
	if contains(depth1, "Vue.js") {
		t.Fatalf("depth 1 leaked a 2-hop node: %v", depth1)
	}

	depth2 := g.RelatedSkills("React", 2)
	// React -> JavaScript -> Vue.js is two hops.
	if !contains(depth2, "Vue.js") {
		t.Fatalf("depth 2 missing 2-hop node, got %v", depth2)
	}
}

func TestRelatedSkills_CycleSafe(t *testing.T) {
	g := New(nil)
	g.AddSkill(Skill{Name: "A"})
	g.AddSkill(Skill{Name: "B"})
	g.AddRelationship(Relationship{Source: "A", Target: "B", Type: RelRelatedTo, Strength: 0.5})
	g.AddRelationship(Relationship{Source: "B", Target: "A", Type: RelRelatedTo, Strength: 0.5})

	related := g.RelatedSkills("A", 10)
	if !contains(related, "B") || contains(related, "A") {
		t.Fatalf("cycle traversal wrong: %v", related)
	}
}

func TestOntologyRoundTrip(t *testing.T) {
	g := New(nil)

	var buf bytes.Buffer
	if err := g.SaveOntology(&buf); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := New(nil)
	if err := loaded.LoadOntology(&buf); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := loaded.Normalize("python"); got != "Python" {
		t.Fatalf("normalize after round trip = %q", got)
	}
	if len(loaded.Relationships()) != len(g.Relationships()) {
		t.Fatalf("relationship count changed: %d vs %d", len(loaded.Relationships()), len(g.Relationships()))
	}
}

func TestLoadOntology_MalformedKeepsContents(t *testing.T) {
	g := New(nil)

	if err := g.LoadOntology(strings.NewReader("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
	if got := g.Normalize("python"); got != "Python" {
		t.Fatalf("graph contents lost after failed load")
	}
}

func TestLastWriteWinsPerEdge(t *testing.T) {
	g := New(nil)
	g.AddRelationship(Relationship{Source: "Docker", Target: "DevOps", Type: RelImplies, Strength: 0.99})

	for _, rel := range g.Relationships() {
		if rel.Source == "Docker" && rel.Target == "DevOps" && rel.Type == RelImplies {
			if rel.Strength != 0.99 {
				t.Fatalf("strength = %v, want last write 0.99", rel.Strength)
			}
			return
		}
	}
	t.Fatalf("edge not found")
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

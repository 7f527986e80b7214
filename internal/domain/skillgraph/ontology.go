package skillgraph

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Serialized ontology layout. Relationship keys use the "Source->Target"
// form so the file round-trips through a flat JSON object.
type ontologyFile struct {
	Skills        map[string]ontologySkill        `json:"skills"`
	Relationships map[string]ontologyRelationship `json:"relationships"`
}

type ontologySkill struct {
	Category string `json:"category"`
}

type ontologyRelationship struct {
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
}

// LoadOntology replaces the graph contents with the serialized ontology.
// The previous contents are restored untouched if decoding fails.
func (g *Graph) LoadOntology(r io.Reader) error {
	var file ontologyFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return fmt.Errorf("decode ontology: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.reset()
	for name, s := range file.Skills {
		g.addSkillLocked(Skill{Name: name, Category: s.Category})
	}
	for key, rel := range file.Relationships {
		source, target, ok := strings.Cut(key, "->")
		if !ok {
			continue
		}
		g.addRelationshipLocked(Relationship{
			Source:   source,
			Target:   target,
			Type:     RelationshipType(rel.Type),
			Strength: rel.Strength,
		})
	}
	return nil
}

func (g *Graph) SaveOntology(w io.Writer) error {
	g.mu.RLock()
	file := ontologyFile{
		Skills:        make(map[string]ontologySkill, len(g.skills)),
		Relationships: make(map[string]ontologyRelationship, len(g.edges)),
	}
	for name, s := range g.skills {
		file.Skills[name] = ontologySkill{Category: s.Category}
	}
	for key, rel := range g.edges {
		file.Relationships[key.source+"->"+key.target] = ontologyRelationship{
			Type:     string(rel.Type),
			Strength: rel.Strength,
		}
	}
	g.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(file)
}

// FromFile loads an ontology file, substituting the built-in default when the
// path is empty or the file cannot be read or decoded. Malformed ontology
// input is logged and never surfaces to the caller.
func FromFile(path string, logger *log.Logger) *Graph {
	g := New(logger)
	if strings.TrimSpace(path) == "" {
		return g
	}

	f, err := os.Open(path)
	if err != nil {
		g.logger.Printf("skill ontology unavailable, using default | path=%s err=%v", path, err)
		return g
	}
	defer f.Close()

	if err := g.LoadOntology(f); err != nil {
		g.logger.Printf("skill ontology malformed, using default | path=%s err=%v", path, err)
		fallback := New(logger)
		return fallback
	}
	return g
}

// installDefaultOntology seeds the built-in skill set covering common
// languages, frameworks, databases, cloud/DevOps tooling, and domain tags.
func (g *Graph) installDefaultOntology() {
	skills := []Skill{
		{Name: "Python", Category: "Programming Language"},
		{Name: "Java", Category: "Programming Language"},
		{Name: "JavaScript", Category: "Programming Language"},
		{Name: "TypeScript", Category: "Programming Language"},
		{Name: "C++", Category: "Programming Language"},
		{Name: "Go", Category: "Programming Language"},
		{Name: "Rust", Category: "Programming Language"},

		{Name: "React", Category: "Web Framework"},
		{Name: "Angular", Category: "Web Framework"},
		{Name: "Vue.js", Category: "Web Framework"},
		{Name: "Node.js", Category: "Web Framework"},
		{Name: "Django", Category: "Web Framework"},
		{Name: "Flask", Category: "Web Framework"},
		{Name: "Spring Boot", Category: "Web Framework"},
		{Name: "Express.js", Category: "Web Framework"},

		{Name: "SQL", Category: "Database"},
		{Name: "PostgreSQL", Category: "Database"},
		{Name: "MySQL", Category: "Database"},
		{Name: "MongoDB", Category: "Database"},
		{Name: "Redis", Category: "Database"},
		{Name: "Elasticsearch", Category: "Database"},

		{Name: "AWS", Category: "Cloud"},
		{Name: "Azure", Category: "Cloud"},
		{Name: "GCP", Category: "Cloud"},
		{Name: "Docker", Category: "Cloud"},
		{Name: "Kubernetes", Category: "Cloud"},

		{Name: "Machine Learning", Category: "Data Science"},
		{Name: "Deep Learning", Category: "Data Science"},
		{Name: "TensorFlow", Category: "Data Science"},
		{Name: "PyTorch", Category: "Data Science"},
		{Name: "Scikit-learn", Category: "Data Science"},
		{Name: "Pandas", Category: "Data Science"},
		{Name: "NumPy", Category: "Data Science"},

		{Name: "Backend Development", Category: "Domain"},
		{Name: "Frontend Development", Category: "Domain"},
		{Name: "Full Stack Development", Category: "Domain"},
		{Name: "DevOps", Category: "Domain"},
		{Name: "Data Engineering", Category: "Domain"},

		{Name: "REST API", Category: "Architecture"},
		{Name: "GraphQL", Category: "Architecture"},
		{Name: "Microservices", Category: "Architecture"},
	}

	relationships := []Relationship{
		{Source: "Spring Boot", Target: "Java", Type: RelRequires, Strength: 0.95},
		{Source: "Java", Target: "Backend Development", Type: RelImplies, Strength: 0.8},
		{Source: "Python", Target: "Backend Development", Type: RelImplies, Strength: 0.8},
		{Source: "React", Target: "JavaScript", Type: RelRequires, Strength: 0.9},
		{Source: "Angular", Target: "TypeScript", Type: RelRequires, Strength: 0.85},
		{Source: "Vue.js", Target: "JavaScript", Type: RelRequires, Strength: 0.9},

		{Source: "PostgreSQL", Target: "SQL", Type: RelImplies, Strength: 0.9},
		{Source: "MySQL", Target: "SQL", Type: RelImplies, Strength: 0.9},
		{Source: "MongoDB", Target: "NoSQL", Type: RelImplies, Strength: 0.8},

		{Source: "Docker", Target: "DevOps", Type: RelImplies, Strength: 0.8},
		{Source: "Kubernetes", Target: "DevOps", Type: RelImplies, Strength: 0.85},
		{Source: "Kubernetes", Target: "Docker", Type: RelRelatedTo, Strength: 0.8},

		{Source: "React", Target: "Frontend Development", Type: RelImplies, Strength: 0.9},
		{Source: "Angular", Target: "Frontend Development", Type: RelImplies, Strength: 0.9},
		{Source: "Node.js", Target: "Backend Development", Type: RelImplies, Strength: 0.85},
		{Source: "Spring Boot", Target: "Backend Development", Type: RelImplies, Strength: 0.9},
	}

	for _, s := range skills {
		g.addSkillLocked(s)
	}
	for _, rel := range relationships {
		g.addRelationshipLocked(rel)
	}
}

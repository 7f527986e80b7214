package skillgraph

import (
	"log"
	"sort"
	"strings"
	"sync"
)

type RelationshipType string

const (
	RelRequires  RelationshipType = "requires"
	RelImplies   RelationshipType = "implies"
	RelRelatedTo RelationshipType = "related_to"
)

type Skill struct {
	Name     string
	Category string
}

// Relationship is a directed, typed, weighted edge between two skills.
// At most one relationship per ordered pair per type; last write wins.
type Relationship struct {
	Source   string
	Target   string
	Type     RelationshipType
	Strength float64
}

type edgeKey struct {
	source string
	target string
	typ    RelationshipType
}

// Graph holds the skill ontology. It is loaded once at startup and
// read-mostly afterwards; all access goes through the RWMutex so lookups can
// run concurrently while reloads are serialized.
type Graph struct {
	mu     sync.RWMutex
	skills map[string]Skill
	// Canonical names in insertion order. Normalize resolves ambiguous
	// partial matches to the first match in this order, which keeps the
	// heuristic reproducible across runs.
	order     []string
	lowerName map[string]string
	edges     map[edgeKey]Relationship
	adjacency map[string]map[string]struct{}

	logger *log.Logger
}

// New returns a graph preloaded with the built-in default ontology.
func New(logger *log.Logger) *Graph {
	if logger == nil {
		logger = log.Default()
	}
	g := &Graph{logger: logger}
	g.reset()
	g.installDefaultOntology()
	return g
}

func (g *Graph) reset() {
	g.skills = make(map[string]Skill)
	g.order = nil
	g.lowerName = make(map[string]string)
	g.edges = make(map[edgeKey]Relationship)
	g.adjacency = make(map[string]map[string]struct{})
}

func (g *Graph) AddSkill(s Skill) {
	if strings.TrimSpace(s.Name) == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addSkillLocked(s)
}

func (g *Graph) addSkillLocked(s Skill) {
	if _, ok := g.skills[s.Name]; !ok {
		g.order = append(g.order, s.Name)
		g.lowerName[strings.ToLower(s.Name)] = s.Name
	}
	g.skills[s.Name] = s
}

func (g *Graph) AddRelationship(rel Relationship) {
	if rel.Source == "" || rel.Target == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addRelationshipLocked(rel)
}

func (g *Graph) addRelationshipLocked(rel Relationship) {
	g.edges[edgeKey{source: rel.Source, target: rel.Target, typ: rel.Type}] = rel
	g.link(rel.Source, rel.Target)
	g.link(rel.Target, rel.Source)
}

func (g *Graph) link(from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]struct{})
	}
	g.adjacency[from][to] = struct{}{}
}

// Normalize maps a raw skill name to its canonical ontology spelling.
// Resolution order: exact case-insensitive match, then substring containment
// in either direction (first canonical name in insertion order wins), then
// the input unchanged.
func (g *Graph) Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	lower := strings.ToLower(name)
	if canonical, ok := g.lowerName[lower]; ok {
		return canonical
	}

	for _, known := range g.order {
		knownLower := strings.ToLower(known)
		if strings.Contains(knownLower, lower) || strings.Contains(lower, knownLower) {
			return known
		}
	}

	return name
}

// Skills returns all skills in insertion order.
func (g *Graph) Skills() []Skill {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Skill, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.skills[name])
	}
	return out
}

// Relationships returns all edges sorted by (source, target, type).
func (g *Graph) Relationships() []Relationship {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Relationship, 0, len(g.edges))
	for _, rel := range g.edges {
		out = append(out, rel)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		if out[i].Target != out[j].Target {
			return out[i].Target < out[j].Target
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// RelatedSkills walks relationship edges in both directions, visiting each
// node at most once and stopping after depth hops. depth <= 0 returns an
// empty set. The result is sorted for deterministic downstream iteration.
func (g *Graph) RelatedSkills(name string, depth int) []string {
	if depth <= 0 {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := map[string]struct{}{name: {}}
	related := map[string]struct{}{}

	frontier := []string{name}
	for hop := 0; hop < depth && len(frontier) > 0; hop++ {
		var next []string
		for _, cur := range frontier {
			for neighbor := range g.adjacency[cur] {
				if _, seen := visited[neighbor]; seen {
					continue
				}
				visited[neighbor] = struct{}{}
				related[neighbor] = struct{}{}
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	out := make([]string, 0, len(related))
	for s := range related {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Category returns the category tag of a canonical skill, if known.
func (g *Graph) Category(name string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.skills[name]
	if !ok {
		return "", false
	}
	return s.Category, true
}

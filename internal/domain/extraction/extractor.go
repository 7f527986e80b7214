package extraction

import (
	"log"
	"sort"
	"strings"

	"talent-rank/internal/domain/candidate"
	"talent-rank/internal/domain/skillgraph"
)

// Extractor pulls skill mentions out of resume text, combining explicit
// skills-section entries, pattern-inferred skills, and skill-graph
// augmentation.
type Extractor struct {
	graph  *skillgraph.Graph
	depth  int
	logger *log.Logger
}

// Result groups the extraction stages. AllSkills is deduplicated by
// canonical name keeping the highest-confidence mention per skill;
// PrimarySkills is the top 5 explicit+implicit mentions by confidence,
// first-seen order breaking ties.
type Result struct {
	ExplicitSkills []candidate.SkillMention
	InferredSkills []candidate.SkillMention
	AllSkills      []candidate.SkillMention
	SkillCount     int
	PrimarySkills  []candidate.SkillMention
}

func NewExtractor(graph *skillgraph.Graph, depth int, logger *log.Logger) *Extractor {
	if graph == nil {
		graph = skillgraph.New(logger)
	}
	if depth <= 0 {
		depth = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{graph: graph, depth: depth, logger: logger}
}

// ExtractExplicit locates a skills section and splits it into individual
// normalized skill mentions.
func (e *Extractor) ExtractExplicit(text string) []candidate.SkillMention {
	sections := skillsSectionRe.Split(text, -1)
	if len(sections) < 2 {
		return nil
	}

	// Only the first 20 lines after the header; skills sections are short
	// and anything beyond tends to be the next resume section.
	lines := strings.Split(sections[1], "\n")
	if len(lines) > 20 {
		lines = lines[:20]
	}

	var out []candidate.SkillMention
	for _, token := range skillDelimiterRe.Split(strings.Join(lines, " "), -1) {
		token = strings.TrimSpace(token)
		if len(token) < minSkillLen || len(token) > maxSkillLen {
			continue
		}
		out = append(out, candidate.SkillMention{
			Skill:      e.graph.Normalize(token),
			Confidence: explicitConfidence,
			IsExplicit: true,
			Source:     SourceSkillsSection,
		})
	}
	return out
}

// ExtractImplicit matches the fixed action-phrase pattern table against the
// whole text and emits the skills each matched phrase implies.
func (e *Extractor) ExtractImplicit(text string) []candidate.SkillMention {
	var out []candidate.SkillMention
	for _, p := range implicitPatterns {
		if !p.re.MatchString(text) {
			continue
		}
		for _, skill := range p.skills {
			out = append(out, candidate.SkillMention{
				Skill:      skill,
				Confidence: implicitConfidence,
				IsExplicit: false,
				Source:     SourceInferred,
				Pattern:    p.re.String(),
			})
		}
	}
	return out
}

// ExtractAll runs explicit and implicit extraction over the resume text,
// experience descriptions, and project technology lists, then augments the
// deduplicated set with depth-limited skill-graph inference. A stage that
// yields nothing degrades to an empty contribution; the call never fails.
func (e *Extractor) ExtractAll(resume candidate.Resume) Result {
	combined := e.combineText(resume)

	explicit := e.ExtractExplicit(combined)
	implicit := e.ExtractImplicit(combined)

	// Dedup by canonical name keeping the higher-confidence mention,
	// preserving first-seen order.
	byName := make(map[string]candidate.SkillMention)
	var order []string
	for _, m := range append(explicit, implicit...) {
		prev, seen := byName[m.Skill]
		if !seen {
			order = append(order, m.Skill)
			byName[m.Skill] = m
			continue
		}
		if m.Confidence > prev.Confidence {
			byName[m.Skill] = m
		}
	}

	deduped := make([]candidate.SkillMention, 0, len(order))
	for _, name := range order {
		deduped = append(deduped, byName[name])
	}

	var inferred []candidate.SkillMention
	added := make(map[string]struct{})
	for _, name := range order {
		for _, related := range e.graph.RelatedSkills(name, e.depth) {
			if _, present := byName[related]; present {
				continue
			}
			if _, dup := added[related]; dup {
				continue
			}
			added[related] = struct{}{}
			inferred = append(inferred, candidate.SkillMention{
				Skill:        related,
				Confidence:   graphConfidence,
				IsExplicit:   false,
				Source:       SourceGraphInference,
				InferredFrom: name,
			})
		}
	}

	primary := make([]candidate.SkillMention, len(deduped))
	copy(primary, deduped)
	sort.SliceStable(primary, func(i, j int) bool {
		return primary[i].Confidence > primary[j].Confidence
	})
	if len(primary) > 5 {
		primary = primary[:5]
	}

	all := append(append([]candidate.SkillMention{}, deduped...), inferred...)

	return Result{
		ExplicitSkills: deduped,
		InferredSkills: inferred,
		AllSkills:      all,
		SkillCount:     len(all),
		PrimarySkills:  primary,
	}
}

func (e *Extractor) combineText(resume candidate.Resume) string {
	var b strings.Builder
	b.WriteString(resume.ResumeText)
	b.WriteString("\n")
	for _, exp := range resume.Experience {
		b.WriteString(exp.Description)
		b.WriteString(" ")
		b.WriteString(strings.Join(exp.SkillsUsed, " "))
		b.WriteString("\n")
	}
	for _, p := range resume.Projects {
		b.WriteString(strings.Join(p.Technologies, " "))
		b.WriteString("\n")
	}
	return b.String()
}

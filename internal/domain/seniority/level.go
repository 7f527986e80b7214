package seniority

import "strings"

// Level is the ordered seniority scale. The ordinal values feed all
// distance computations, so the ordering here is load-bearing.
type Level int

const (
	Intern Level = iota
	Junior
	MidLevel
	Senior
	Lead
)

var levelNames = [...]string{"intern", "junior", "mid_level", "senior", "lead"}

func (l Level) String() string {
	if l < Intern || l > Lead {
		return "unknown"
	}
	return levelNames[l]
}

func (l Level) Ordinal() int { return int(l) }

// Display renders a level for recruiter-facing text ("mid_level" -> "Mid Level").
func (l Level) Display() string {
	parts := strings.Split(l.String(), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// ParseLevel accepts "mid_level" and "mid-level" style labels. Unknown labels
// default to MidLevel with ok=false; callers decide whether that matters.
func ParseLevel(s string) (Level, bool) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range levelNames {
		if s == name {
			return Level(i), true
		}
	}
	return MidLevel, false
}

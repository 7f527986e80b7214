package parsing

import (
	"errors"
	"log"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"talent-rank/internal/domain/candidate"
)

var ErrEmptyResume = errors.New("resume text is empty")

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Tried in order: US, international, bare 10 digits.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+?1?\s*\(?[0-9]{3}\)?[\s.-]?[0-9]{3}[\s.-]?[0-9]{4}`),
		regexp.MustCompile(`\+[0-9]{1,3}\s?[0-9]{6,14}`),
		regexp.MustCompile(`[0-9]{10}`),
	}

	yearsFallbackRe = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp|working)`)

	experienceSectionRe = regexp.MustCompile(`(?i)(?:EXPERIENCE|WORK EXPERIENCE|EMPLOYMENT|PROFESSIONAL EXPERIENCE|WORK HISTORY)`)
	educationSectionRe  = regexp.MustCompile(`(?i)(?:EDUCATION|TRAINING|QUALIFICATIONS|ACADEMIC)`)
	projectsSectionRe   = regexp.MustCompile(`(?i)(?:PROJECTS?|PORTFOLIO)`)

	companyRe = regexp.MustCompile(`(?:at\s+|,\s*|^)([A-Z][A-Za-z\s&.-]+?)(?:,|\||$)`)
	roleRes   = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][a-zA-Z\s]+(?:Engineer|Developer|Manager|Analyst|Architect|Specialist))`),
		regexp.MustCompile(`^([A-Za-z\s]+)(?:,|at)`),
	}
	durationRe    = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)`)
	bulletRe      = regexp.MustCompile(`(?m)^\s*[-•*]\s*(.+)`)
	institutionRe = regexp.MustCompile(`(?:from|,|\||^)\s*([A-Z][A-Za-z\s,&-]+(?:University|College|Institute|School))`)
	gpaRe         = regexp.MustCompile(`(?i)GPA[\s:]*(\d\.\d{1,2})`)
	techRe        = regexp.MustCompile(`(?i)(?:(?:Built|Created|Developed|Used)\s+(?:with|using|in):|Skills?:)\s*(.+)`)

	// Any recognized section header; bounds the text handed to a
	// per-section extractor.
	anySectionRe = regexp.MustCompile(`(?i)(?:WORK EXPERIENCE|PROFESSIONAL EXPERIENCE|EXPERIENCE|EMPLOYMENT|WORK HISTORY|EDUCATION|TRAINING|QUALIFICATIONS|ACADEMIC|PROJECTS?|PORTFOLIO|TECHNICAL SKILLS?|SKILLS?|CERTIFICATIONS?)`)

	entryStartRe = regexp.MustCompile(`^[A-Z][a-z]`)
	bulletLineRe = regexp.MustCompile(`^\s*[-•*]`)
)

var degreeKeywords = []string{"B.S.", "B.A.", "B.Tech", "M.S.", "M.Tech", "Ph.D.", "MBA"}

var nameJunkKeywords = []string{"email", "phone", "address", "linkedin", "github", "skills"}

// Skills recognized inside free-text descriptions, grouped roughly by area.
var contextSkills = [][]string{
	{"python", "java", "javascript", "c++", "c#", "go", "rust", "php", "ruby", "scala", "kotlin"},
	{"react", "angular", "vue", "node", "express", "django", "flask", "spring", "asp.net"},
	{"sql", "mongodb", "postgresql", "mysql", "oracle", "dynamodb", "redis", "elasticsearch"},
	{"aws", "azure", "gcp", "kubernetes", "docker", "jenkins", "terraform"},
	{"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn", "spark", "hadoop"},
}

const (
	maxExperienceEntries = 10
	maxEducationEntries  = 5
	maxProjectEntries    = 5
	maxDescriptionLen    = 200
	maxStoredTextLen     = 5000
)

// Parser extracts a structured resume from plain text using regex
// heuristics. Every extractor degrades to zero values; only empty input
// is an error.
type Parser struct {
	logger *log.Logger
}

func NewParser(logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{logger: logger}
}

// Parse runs all extractors over the text. nameHint, when non-empty,
// overrides name detection.
func (p *Parser) Parse(text, nameHint string) (candidate.Resume, error) {
	if strings.TrimSpace(text) == "" {
		return candidate.Resume{}, ErrEmptyResume
	}

	name := nameHint
	if name == "" {
		name = extractName(text)
	}
	email := extractEmail(text)
	phone := extractPhone(text)
	experience := p.extractExperience(text)
	education := extractEducation(text)
	projects := extractProjects(text)
	years := extractYearsOfExperience(text, experience)

	extracted := 0
	for _, ok := range []bool{
		name != "",
		email != "",
		phone != "",
		len(experience) > 0,
		len(education) > 0,
		years > 0,
	} {
		if ok {
			extracted++
		}
	}

	if name == "" {
		name = "Unknown"
	}

	return candidate.Resume{
		Name:                 name,
		Email:                email,
		Phone:                phone,
		YearsOfExperience:    years,
		Experience:           experience,
		Education:            education,
		Projects:             projects,
		ResumeText:           truncate(text, maxStoredTextLen),
		ExtractionConfidence: float64(extracted) / 6.0,
	}, nil
}

// extractName takes the first short, digit-free line near the top that is
// not a contact detail.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || len(line) >= 100 || strings.ContainsAny(line, "0123456789") {
			continue
		}
		lower := strings.ToLower(line)
		junk := false
		for _, kw := range nameJunkKeywords {
			if strings.Contains(lower, kw) {
				junk = true
				break
			}
		}
		if !junk {
			return line
		}
	}
	return ""
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// extractYearsOfExperience sums per-entry durations, falling back to an
// explicit "N years of experience" mention anywhere in the text.
func extractYearsOfExperience(text string, entries []candidate.ExperienceEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.DurationYears
	}
	if total > 0 {
		return total
	}
	if m := yearsFallbackRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}
	return 0
}

func (p *Parser) extractExperience(text string) []candidate.ExperienceEntry {
	section := sectionAfter(experienceSectionRe, text)
	if section == "" {
		return nil
	}

	var out []candidate.ExperienceEntry
	for _, entry := range splitEntries(section) {
		if len(out) == maxExperienceEntries {
			break
		}
		if len(strings.TrimSpace(entry)) < 20 {
			continue
		}

		entryLines := strings.Split(entry, "\n")

		company := "Unknown"
		if m := companyRe.FindStringSubmatch(entryLines[0]); m != nil {
			company = strings.TrimSpace(m[1])
		}

		role := "Unknown"
		for _, re := range roleRes {
			if m := re.FindStringSubmatch(entry); m != nil {
				role = strings.TrimSpace(m[1])
				break
			}
		}

		var duration float64
		if m := durationRe.FindStringSubmatch(entry); m != nil {
			duration, _ = strconv.ParseFloat(m[1], 64)
		}

		var bullets []string
		for _, m := range bulletRe.FindAllStringSubmatch(entry, -1) {
			bullets = append(bullets, strings.TrimSpace(m[1]))
		}
		description := strings.Join(bullets, " ")
		if description == "" && len(entryLines) > 1 {
			description = entryLines[1]
		}
		description = truncate(description, maxDescriptionLen)

		out = append(out, candidate.ExperienceEntry{
			Role:          role,
			Company:       company,
			DurationYears: duration,
			Description:   description,
			SkillsUsed:    skillsFromContext(description),
		})
	}
	return out
}

func extractEducation(text string) []candidate.EducationEntry {
	section := sectionAfter(educationSectionRe, text)
	if section == "" {
		return nil
	}

	var out []candidate.EducationEntry
	for _, entry := range splitEntries(section) {
		if len(out) == maxEducationEntries {
			break
		}
		if len(strings.TrimSpace(entry)) < 10 {
			continue
		}

		degree := "Unknown"
		for _, kw := range degreeKeywords {
			if strings.Contains(entry, kw) {
				degree = kw
				break
			}
		}

		institution := "Unknown"
		if m := institutionRe.FindStringSubmatch(entry); m != nil {
			institution = strings.TrimSpace(m[1])
		}

		var gpa float64
		if m := gpaRe.FindStringSubmatch(entry); m != nil {
			gpa, _ = strconv.ParseFloat(m[1], 64)
		}

		field := ""
		if entryLines := strings.Split(entry, "\n"); len(entryLines) > 1 {
			field = strings.TrimSpace(entryLines[1])
		}

		out = append(out, candidate.EducationEntry{
			Institution:  institution,
			Degree:       degree,
			FieldOfStudy: field,
			GPA:          gpa,
		})
	}
	return out
}

func extractProjects(text string) []candidate.Project {
	section := sectionAfter(projectsSectionRe, text)
	if section == "" {
		return nil
	}

	var out []candidate.Project
	for _, entry := range splitEntries(section) {
		if len(out) == maxProjectEntries {
			break
		}
		entry = strings.TrimSpace(entry)
		if len(entry) < 15 {
			continue
		}

		entryLines := strings.Split(entry, "\n")
		name := truncate(strings.TrimSpace(entryLines[0]), 100)

		description := ""
		if len(entryLines) > 1 {
			rest := make([]string, 0, len(entryLines)-1)
			for _, l := range entryLines[1:] {
				rest = append(rest, strings.TrimSpace(l))
			}
			description = truncate(strings.Join(rest, " "), maxDescriptionLen)
		}

		var technologies []string
		if m := techRe.FindStringSubmatch(entry); m != nil {
			for _, t := range strings.Split(firstLine(m[1]), ",") {
				if t = strings.TrimSpace(t); t != "" {
					technologies = append(technologies, t)
				}
			}
		}

		out = append(out, candidate.Project{
			Name:         name,
			Description:  description,
			Technologies: technologies,
		})
	}
	return out
}

// skillsFromContext scans free text for well-known skill names, returning
// them title-cased in first-seen order.
func skillsFromContext(context string) []string {
	lower := strings.ToLower(context)
	var out []string
	seen := make(map[string]struct{})
	for _, group := range contextSkills {
		for _, skill := range group {
			if !strings.Contains(lower, skill) {
				continue
			}
			titled := titleSkill(skill)
			if _, ok := seen[titled]; ok {
				continue
			}
			seen[titled] = struct{}{}
			out = append(out, titled)
		}
	}
	return out
}

// sectionAfter returns the text between the first header match and the
// next recognized section header, or "" when the header never appears.
func sectionAfter(header *regexp.Regexp, text string) string {
	loc := header.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	section := text[loc[1]:]
	if next := anySectionRe.FindStringIndex(section); next != nil {
		section = section[:next[0]]
	}
	return section
}

// splitEntries segments a section into entries. Blank lines always end an
// entry; a capitalized non-bullet line ends one only after bullet lines,
// so an entry's own continuation lines stay attached.
func splitEntries(section string) []string {
	var entries []string
	var current []string
	hasBullet := false

	flush := func() {
		if len(current) == 0 {
			return
		}
		entry := strings.Join(current, "\n")
		if strings.TrimSpace(entry) != "" {
			entries = append(entries, entry)
		}
		current = nil
		hasBullet = false
	}

	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case bulletLineRe.MatchString(line):
			current = append(current, line)
			hasBullet = true
		case entryStartRe.MatchString(trimmed) && hasBullet:
			flush()
			current = append(current, line)
		default:
			current = append(current, line)
		}
	}
	flush()
	return entries
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// titleSkill capitalizes letters that follow a non-letter, so
// "scikit-learn" renders as "Scikit-Learn".
func titleSkill(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

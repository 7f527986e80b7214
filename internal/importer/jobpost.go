package importer

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"

	"talent-rank/internal/domain/job"
	"talent-rank/internal/domain/skillgraph"
)

// JobPostImporter scrapes a single job posting page and converts it into a
// job requirement. Skills are recognized against the ontology, so only
// skills the ranking engine knows about make it into the requirement.
type JobPostImporter struct {
	graph  *skillgraph.Graph
	logger *log.Logger
}

func NewJobPostImporter(graph *skillgraph.Graph, logger *log.Logger) *JobPostImporter {
	return &JobPostImporter{graph: graph, logger: logger}
}

type scrapedPosting struct {
	Title       string
	Company     string
	Description string
}

var (
	yearsRequiredRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)
	preferredHdrRe  = regexp.MustCompile(`(?i)(?:preferred|nice to have|bonus|plus)[^\n]*[:\n]`)
)

func (i *JobPostImporter) Import(ctx context.Context, jobURL string) (job.Requirement, error) {
	jobURL = strings.TrimSpace(jobURL)
	if jobURL == "" {
		return job.Requirement{}, fmt.Errorf("empty url")
	}
	if ctx.Err() != nil {
		return job.Requirement{}, ctx.Err()
	}

	posting, err := i.scrape(jobURL)
	if err != nil {
		return job.Requirement{}, err
	}
	if strings.TrimSpace(posting.Description) == "" && strings.TrimSpace(posting.Title) == "" {
		return job.Requirement{}, fmt.Errorf("no job content found at %s", jobURL)
	}

	required, preferred := i.splitSkills(posting.Description)

	req := job.Requirement{
		ID:                        uuid.New(),
		Title:                     pickNonEmpty(posting.Title, "Imported Position"),
		Company:                   posting.Company,
		Description:               posting.Description,
		JobLevel:                  inferJobLevel(posting.Title, posting.Description),
		YearsOfExperienceRequired: extractYearsRequired(posting.Description),
		RequiredSkills:            required,
		PreferredSkills:           preferred,
		SourceURL:                 jobURL,
	}

	if i.logger != nil {
		i.logger.Printf("[Importer] imported url=%s title=%q required=%d preferred=%d",
			jobURL, req.Title, len(req.RequiredSkills), len(req.PreferredSkills))
	}
	return req, nil
}

func (i *JobPostImporter) scrape(jobURL string) (scrapedPosting, error) {
	allowed := hostFromURL(jobURL)
	var c *colly.Collector
	if allowed == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(allowed))
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, RandomDelay: 500 * time.Millisecond})

	var out scrapedPosting
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if strings.TrimSpace(out.Title) == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("title", func(e *colly.HTMLElement) {
		if strings.TrimSpace(out.Title) == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML(`meta[property="og:site_name"]`, func(e *colly.HTMLElement) {
		if strings.TrimSpace(out.Company) == "" {
			out.Company = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML("main, article, body", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if len(text) > len(out.Description) {
			out.Description = text
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if err := c.Visit(jobURL); err != nil {
		return scrapedPosting{}, err
	}
	c.Wait()
	if reqErr != nil {
		return scrapedPosting{}, reqErr
	}

	out.Description = collapseWhitespace(out.Description)
	return out, nil
}

// splitSkills scans the description for ontology skills. Skills that first
// appear after a "preferred" style header are preferred; everything else is
// required.
func (i *JobPostImporter) splitSkills(description string) (required, preferred []job.SkillRequirement) {
	if i.graph == nil || strings.TrimSpace(description) == "" {
		return nil, nil
	}

	lower := strings.ToLower(description)
	preferredStart := -1
	if loc := preferredHdrRe.FindStringIndex(description); loc != nil {
		preferredStart = loc[0]
	}

	for _, s := range i.graph.Skills() {
		idx := indexSkill(lower, strings.ToLower(s.Name))
		if idx < 0 {
			continue
		}
		sr := job.SkillRequirement{SkillName: s.Name}
		if preferredStart >= 0 && idx >= preferredStart {
			preferred = append(preferred, sr)
		} else {
			required = append(required, sr)
		}
	}
	return required, preferred
}

// indexSkill finds a whole-word occurrence. Plain strings.Index would let
// short names like "go" match inside words like "google".
func indexSkill(haystack, name string) int {
	if name == "" {
		return -1
	}
	from := 0
	for {
		idx := strings.Index(haystack[from:], name)
		if idx < 0 {
			return -1
		}
		idx += from
		if boundaryAt(haystack, idx-1) && boundaryAt(haystack, idx+len(name)) {
			return idx
		}
		from = idx + len(name)
	}
}

func boundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}

func inferJobLevel(title, description string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "intern"):
		return "intern"
	case strings.Contains(t, "junior") || strings.Contains(t, "entry"):
		return "junior"
	case strings.Contains(t, "staff") || strings.Contains(t, "principal") || strings.Contains(t, "lead") || strings.Contains(t, "head of"):
		return "lead"
	case strings.Contains(t, "senior") || strings.Contains(t, "sr."):
		return "senior"
	}

	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "senior level") || strings.Contains(d, "seniority: senior"):
		return "senior"
	case strings.Contains(d, "entry level"):
		return "junior"
	}
	return ""
}

func extractYearsRequired(description string) *float64 {
	m := yearsRequiredRe.FindStringSubmatch(description)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v <= 0 || v > 50 {
		return nil
	}
	return &v
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "TalentRankImporter/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

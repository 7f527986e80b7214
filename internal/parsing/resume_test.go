package parsing

import (
	"errors"
	"strings"
	"testing"
)

const sampleResume = `Jane Smith
jane.smith@example.com
+1 (555) 123-4567

EXPERIENCE

Senior Software Engineer at Acme Corp, 3 years
- Built REST APIs using Python and Django
- Deployed services with Docker and Kubernetes

Software Developer at Widget Inc, 2 years
- Developed web applications with React

EDUCATION

B.S. Computer Science, Stanford University
GPA: 3.8

PROJECTS

Inventory Tracker
Built with: Go, PostgreSQL, Redis
`

func TestParse_ContactDetails(t *testing.T) {
	p := NewParser(nil)

	resume, err := p.Parse(sampleResume, "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if resume.Name != "Jane Smith" {
		t.Fatalf("name = %q", resume.Name)
	}
	if resume.Email != "jane.smith@example.com" {
		t.Fatalf("email = %q", resume.Email)
	}
	if resume.Phone == "" {
		t.Fatalf("phone not extracted")
	}
}

func TestParse_NameHintWins(t *testing.T) {
	p := NewParser(nil)

	resume, err := p.Parse(sampleResume, "J. Smith")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if resume.Name != "J. Smith" {
		t.Fatalf("name = %q", resume.Name)
	}
}

func TestParse_Experience(t *testing.T) {
	p := NewParser(nil)

	resume, err := p.Parse(sampleResume, "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(resume.Experience) != 2 {
		t.Fatalf("experience entries = %d: %+v", len(resume.Experience), resume.Experience)
	}

	first := resume.Experience[0]
	if !strings.Contains(first.Role, "Engineer") {
		t.Fatalf("role = %q", first.Role)
	}
	if first.DurationYears != 3 {
		t.Fatalf("duration = %.1f", first.DurationYears)
	}
	if !strings.Contains(first.Description, "Built REST APIs") {
		t.Fatalf("description = %q", first.Description)
	}

	found := false
	for _, s := range first.SkillsUsed {
		if s == "Python" {
			found = true
		}
	}
	if !found {
		t.Fatalf("skills used = %v", first.SkillsUsed)
	}
}

func TestParse_YearsSummedFromEntries(t *testing.T) {
	p := NewParser(nil)

	resume, err := p.Parse(sampleResume, "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if resume.YearsOfExperience != 5 {
		t.Fatalf("years = %.1f, want 5", resume.YearsOfExperience)
	}
}

func TestParse_YearsFallbackMention(t *testing.T) {
	p := NewParser(nil)

	resume, err := p.Parse("John Doe\n\n7 years of experience in backend development", "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if resume.YearsOfExperience != 7 {
		t.Fatalf("years = %.1f, want 7", resume.YearsOfExperience)
	}
}

func TestParse_Education(t *testing.T) {
	p := NewParser(nil)

	resume, err := p.Parse(sampleResume, "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(resume.Education) == 0 {
		t.Fatalf("no education entries")
	}
	edu := resume.Education[0]
	if edu.Degree != "B.S." {
		t.Fatalf("degree = %q", edu.Degree)
	}
	if !strings.Contains(edu.Institution, "Stanford") {
		t.Fatalf("institution = %q", edu.Institution)
	}
	if edu.GPA != 3.8 {
		t.Fatalf("gpa = %.2f", edu.GPA)
	}
}

func TestParse_Projects(t *testing.T) {
	p := NewParser(nil)

	resume, err := p.Parse(sampleResume, "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(resume.Projects) == 0 {
		t.Fatalf("no projects")
	}
	proj := resume.Projects[0]
	if proj.Name != "Inventory Tracker" {
		t.Fatalf("project name = %q", proj.Name)
	}
	if len(proj.Technologies) != 3 || proj.Technologies[1] != "PostgreSQL" {
		t.Fatalf("technologies = %v", proj.Technologies)
	}
}

func TestParse_ConfidenceReflectsExtractedFields(t *testing.T) {
	p := NewParser(nil)

	full, err := p.Parse(sampleResume, "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if full.ExtractionConfidence != 1.0 {
		t.Fatalf("confidence = %.2f, want 1.0", full.ExtractionConfidence)
	}

	sparse, err := p.Parse("some unstructured text without any resume markers whatsoever", "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sparse.ExtractionConfidence >= full.ExtractionConfidence {
		t.Fatalf("sparse confidence %.2f not below full %.2f", sparse.ExtractionConfidence, full.ExtractionConfidence)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	p := NewParser(nil)

	if _, err := p.Parse("   \n\t", ""); !errors.Is(err, ErrEmptyResume) {
		t.Fatalf("err = %v, want ErrEmptyResume", err)
	}
}

func TestParse_StoredTextTruncated(t *testing.T) {
	p := NewParser(nil)

	long := "John Doe\n" + strings.Repeat("filler text ", 1000)
	resume, err := p.Parse(long, "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(resume.ResumeText) > 5000 {
		t.Fatalf("stored text length = %d", len(resume.ResumeText))
	}
}

package ranking

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"talent-rank/internal/domain/candidate"
	"talent-rank/internal/domain/job"
	"talent-rank/internal/domain/seniority"
)

// Weights splits the overall score across the three scoring dimensions.
// Callers are expected to pass weights that sum to 1.
type Weights struct {
	Skill      float64
	Experience float64
	Seniority  float64
}

func DefaultWeights() Weights {
	return Weights{Skill: 0.45, Experience: 0.35, Seniority: 0.20}
}

// Record is one candidate's scored position against a job. Scores are on
// a 0-100 scale; Percentile is relative to the ranked cohort.
type Record struct {
	CandidateID        uuid.UUID
	CandidateName      string
	OverallScore       float64
	SkillScore         float64
	ExperienceScore    float64
	SeniorityScore     float64
	RankPosition       int
	Percentile         float64
	MatchedSkills      []string
	MissingSkills      []string
	MatchedSkillCount  int
	MissingSkillCount  int
	YearsOfExperience  float64
	CandidateSeniority string
}

// SkillMatch carries the skill-dimension score together with which job
// skills matched and which are missing.
type SkillMatch struct {
	Score   float64
	Matched []string
	Missing []string
}

const (
	requiredWeight  = 0.7
	preferredWeight = 0.3
)

// normalizeSkill collapses case, surrounding space, inner spaces, and
// underscores so "Machine Learning" and "machine_learning" compare equal.
func normalizeSkill(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}

func skillPresent(candidateSet []string, want string) bool {
	for _, have := range candidateSet {
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	return false
}

// SkillMatchScore scores candidate skills against a job's required and
// preferred lists. Required matches carry 70% of the dimension, preferred
// 30%; when only one list exists it carries the full dimension, and a job
// with no skill lists scores a neutral 50.
func SkillMatchScore(skills []candidate.SkillMention, required, preferred []job.SkillRequirement) SkillMatch {
	candidateSet := make([]string, 0, len(skills))
	for _, s := range skills {
		candidateSet = append(candidateSet, normalizeSkill(s.Skill))
	}

	var matched, missing []string
	matchList := func(reqs []job.SkillRequirement) float64 {
		if len(reqs) == 0 {
			return 0
		}
		hits := 0
		for _, r := range reqs {
			name := strings.ToLower(r.SkillName)
			if skillPresent(candidateSet, normalizeSkill(r.SkillName)) {
				hits++
				matched = append(matched, name)
			} else {
				missing = append(missing, name)
			}
		}
		return float64(hits) / float64(len(reqs))
	}

	requiredFrac := matchList(required)
	preferredFrac := matchList(preferred)

	var score float64
	switch {
	case len(required) > 0 && len(preferred) > 0:
		score = (requiredFrac*requiredWeight + preferredFrac*preferredWeight) * 100
	case len(required) > 0:
		score = requiredFrac * 100
	case len(preferred) > 0:
		score = preferredFrac * 100
	default:
		score = 50
	}
	if score > 100 {
		score = 100
	}

	return SkillMatch{Score: score, Matched: matched, Missing: missing}
}

// ExperienceMatchScore rewards landing near the requirement. Slightly over
// is ideal, far over still scores well, under-experience drops off faster.
// A job with no stated requirement scores a neutral 70.
func ExperienceMatchScore(years float64, required *float64) float64 {
	if required == nil || *required == 0 {
		return 70.0
	}
	diff := years - *required
	switch {
	case diff >= -0.5 && diff <= 1:
		return 100
	case diff > 1 && diff <= 2:
		return 95
	case diff > 2:
		return 90
	case diff >= -1:
		return 85
	case diff >= -2:
		return 70
	default:
		score := 70 + 10*diff // diff < -2, so this decreases
		if score < 40 {
			return 40
		}
		return score
	}
}

// SeniorityAlignmentScore compares candidate and job levels on the ordinal
// scale. One level over the ask scores better than one under; a job with no
// stated level scores a neutral 70. Unparseable labels fall back to mid_level.
func SeniorityAlignmentScore(candidateLevel, jobLevel string) float64 {
	if strings.TrimSpace(jobLevel) == "" {
		return 70.0
	}
	cand, _ := seniority.ParseLevel(candidateLevel)
	want, _ := seniority.ParseLevel(jobLevel)

	diff := cand.Ordinal() - want.Ordinal()
	switch {
	case diff == 0:
		return 100
	case diff == 1:
		return 90
	case diff >= 2:
		return 80
	case diff == -1:
		return 75
	default:
		score := 75 + 10*float64(diff)
		if score < 50 {
			return 50
		}
		return score
	}
}

// Score evaluates one candidate against a job without cohort context;
// RankPosition and Percentile are left zero for Rank to fill.
func Score(p candidate.Profile, req job.Requirement, w Weights) Record {
	match := SkillMatchScore(p.Skills, req.RequiredSkills, req.PreferredSkills)
	expScore := ExperienceMatchScore(p.YearsOfExperience, req.YearsOfExperienceRequired)
	senScore := SeniorityAlignmentScore(p.InferredSeniority, req.JobLevel)

	return Record{
		CandidateID:        p.ID,
		CandidateName:      p.Name,
		OverallScore:       w.Skill*match.Score + w.Experience*expScore + w.Seniority*senScore,
		SkillScore:         match.Score,
		ExperienceScore:    expScore,
		SeniorityScore:     senScore,
		MatchedSkills:      match.Matched,
		MissingSkills:      match.Missing,
		MatchedSkillCount:  len(match.Matched),
		MissingSkillCount:  len(match.Missing),
		YearsOfExperience:  p.YearsOfExperience,
		CandidateSeniority: p.InferredSeniority,
	}
}

// Rank scores every candidate against the job and orders them by overall
// score, best first. Ties keep input order, so ranking is deterministic for
// a fixed candidate slice.
func Rank(candidates []candidate.Profile, req job.Requirement, w Weights) []Record {
	records := make([]Record, 0, len(candidates))
	for _, p := range candidates {
		records = append(records, Score(p, req, w))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OverallScore > records[j].OverallScore
	})

	n := len(records)
	for i := range records {
		records[i].RankPosition = i + 1
		records[i].Percentile = float64(n-i) / float64(n) * 100
	}
	return records
}

package scoring

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Candidate is everything the engine needs about one consultant: skill
// levels, the requested month's workload, and the full experience list.
// All fields are read-only inputs; the engine never mutates them.
type Candidate struct {
	ConsultantID  uuid.UUID
	Name          string
	SkillLevels   map[uuid.UUID]int
	WorkDays      int
	PerceivedLoad int
	Experiences   []ExperienceRecord
}

// Request is one staffing need: the required skills and an optional
// reference project for experience similarity.
type Request struct {
	RequiredSkills   []RequiredSkill
	ReferenceProject *ReferenceProject
}

// MatchResult is the per-consultant outcome of a ranking run. Ephemeral:
// computed fresh per request, never persisted.
type MatchResult struct {
	ConsultantID      uuid.UUID
	Name              string
	SkillFit          int
	Workload          WorkloadScore
	ProjectExperience *int
	FinalScore        int
	BestMatch         *BestMatch
	SkillBreakdown    []SkillAssessment
}

// Rank scores every candidate against the request and returns them ordered
// by final score descending. The sort is stable: equal scores keep the
// candidates' input order.
func Rank(now time.Time, candidates []Candidate, req Request) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, Score(now, c, req))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	return results
}

// Score evaluates a single candidate. Project experience is computed only
// when the request carries a reference project.
func Score(now time.Time, c Candidate, req Request) MatchResult {
	fit := SkillFit(c.SkillLevels, req.RequiredSkills)
	workload := ScoreWorkload(c.WorkDays, c.PerceivedLoad)

	var experience *int
	var bestMatch *BestMatch
	if req.ReferenceProject != nil {
		score, match := ProjectSimilarity(now, c.Experiences, req.ReferenceProject)
		experience = &score
		bestMatch = match
	}

	return MatchResult{
		ConsultantID:      c.ConsultantID,
		Name:              c.Name,
		SkillFit:          fit,
		Workload:          workload,
		ProjectExperience: experience,
		FinalScore:        FinalScore(fit, workload.AvailabilityPercent, experience),
		BestMatch:         bestMatch,
		SkillBreakdown:    SkillBreakdown(c.SkillLevels, req.RequiredSkills),
	}
}

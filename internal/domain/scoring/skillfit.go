package scoring

import (
	"math"

	"github.com/google/uuid"
)

type RequiredSkill struct {
	SkillID   uuid.UUID
	SkillName string
	Level     int
}

// SkillFit scores how well a consultant's skill levels meet a required-skill
// set, 0-100. An empty required set is fully satisfiable (100). Absent skills
// count as level 0. A required level of 0 rewards any exposure instead of
// dividing by zero.
func SkillFit(levels map[uuid.UUID]int, required []RequiredSkill) int {
	if len(required) == 0 {
		return 100
	}

	var sum float64
	for _, req := range required {
		level := levels[req.SkillID]
		switch {
		case req.Level > 0:
			ratio := float64(level) / float64(req.Level)
			if ratio > 1 {
				ratio = 1
			}
			if ratio < 0 {
				ratio = 0
			}
			sum += ratio
		case level > 0:
			sum += 1
		}
	}

	return int(math.Round(sum / float64(len(required)) * 100))
}

type SkillAssessment struct {
	SkillID         uuid.UUID
	SkillName       string
	ConsultantLevel int
	RequiredLevel   int
	Met             bool
}

// SkillBreakdown reports the consultant's level against each required skill,
// in the required set's order.
func SkillBreakdown(levels map[uuid.UUID]int, required []RequiredSkill) []SkillAssessment {
	out := make([]SkillAssessment, 0, len(required))
	for _, req := range required {
		level := levels[req.SkillID]
		out = append(out, SkillAssessment{
			SkillID:         req.SkillID,
			SkillName:       req.SkillName,
			ConsultantLevel: level,
			RequiredLevel:   req.Level,
			Met:             level >= req.Level,
		})
	}
	return out
}

package scoring

import "math"

// Final-score weights. When no reference project is given the project term
// does not apply and the remaining weights redistribute; "no reference
// project" is never treated as "zero project experience".
const (
	weightSkillFit     = 0.55
	weightAvailability = 0.30
	weightExperience   = 0.15

	weightSkillFitNoRef     = 0.65
	weightAvailabilityNoRef = 0.35
)

// FinalScore merges skill fit, availability and (when present) project
// experience into one 0-100 score. projectExperience is nil when the
// staffing request has no reference project.
func FinalScore(skillFit, availability int, projectExperience *int) int {
	if projectExperience != nil {
		return int(math.Round(
			weightSkillFit*float64(skillFit) +
				weightAvailability*float64(availability) +
				weightExperience*float64(*projectExperience)))
	}
	return int(math.Round(
		weightSkillFitNoRef*float64(skillFit) +
			weightAvailabilityNoRef*float64(availability)))
}

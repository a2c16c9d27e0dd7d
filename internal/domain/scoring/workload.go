package scoring

import "math"

// maxWorkloadScore assumes a ~20-working-day month plus a fully loaded
// perception (20 + 10*0.3). Changing the working-day ceiling is a policy
// edit here, not a derived value.
const maxWorkloadScore = 23.0

const perceivedLoadWeight = 0.3

type WorkloadScore struct {
	Score               float64
	WorkloadPercent     int
	AvailabilityPercent int
	WorkDays            int
	PerceivedLoad       int
}

// ScoreWorkload converts one month's raw workload inputs into a
// workload/availability percentage pair. Inputs are coerced, never rejected:
// negative work days become 0 and perceived load is clamped to [0,10].
// WorkloadPercent + AvailabilityPercent is always 100.
func ScoreWorkload(workDays, perceivedLoad int) WorkloadScore {
	if workDays < 0 {
		workDays = 0
	}
	perceivedLoad = ClampInt(perceivedLoad, 0, 10)

	score := float64(workDays) + float64(perceivedLoad)*perceivedLoadWeight
	pct := int(math.Round(score / maxWorkloadScore * 100))
	if pct > 100 {
		pct = 100
	}

	return WorkloadScore{
		Score:               math.Round(score*10) / 10,
		WorkloadPercent:     pct,
		AvailabilityPercent: 100 - pct,
		WorkDays:            workDays,
		PerceivedLoad:       perceivedLoad,
	}
}

package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recency bucket labels, derived from the same month thresholds as the
// recency factor.
const (
	RecencyLast6Months  = "last 6 months"
	RecencyLast18Months = "last 18 months"
	RecencyLast3Years   = "last 3 years"
	RecencyOver3Years   = "over 3 years ago"
	RecencyUnspecified  = "unspecified"
)

// ReferenceProject is the project a staffing request is compared against.
type ReferenceProject struct {
	ProjectID uuid.UUID
	Name      string
	Client    string
	Tags      TagSet
}

// ExperienceRecord is one fully-resolved past assignment: the experience row
// joined with its project's client and tags. Zero EndMonth/EndYear means the
// end date is unknown; zero Intensity means it was not reported.
type ExperienceRecord struct {
	ProjectID   uuid.UUID
	ProjectName string
	Client      string
	Tags        TagSet
	Role        string
	EndMonth    int
	EndYear     int
	Intensity   int
}

// BestMatch describes the single experience yielding the highest similarity.
type BestMatch struct {
	ProjectID     uuid.UUID
	ProjectName   string
	ClientMatched bool
	CommonTags    int
	ReferenceTags int
	RecencyBucket string
	Intensity     int
	Role          string
}

// ProjectSimilarity scores a consultant's project history against one
// reference project, returning a 0-100 score and metadata for the winning
// experience. Without a reference project, or without any experiences, the
// result is (0, nil). The best match is tracked with a strict greater-than
// comparison, so the first experience reaching a given maximum wins ties.
func ProjectSimilarity(now time.Time, experiences []ExperienceRecord, ref *ReferenceProject) (int, *BestMatch) {
	if ref == nil || len(experiences) == 0 {
		return 0, nil
	}

	refClient := strings.ToLower(strings.TrimSpace(ref.Client))

	var best float64
	var bestMatch *BestMatch

	for _, exp := range experiences {
		expClient := strings.ToLower(strings.TrimSpace(exp.Client))

		clientMatch := 0.0
		if refClient != "" && expClient != "" && refClient == expClient {
			clientMatch = 1.0
		}

		// Overlap is measured relative to the reference's tag count; an
		// untagged reference cannot register overlap.
		tagOverlap := 0.0
		if len(ref.Tags) > 0 {
			tagOverlap = float64(ref.Tags.CommonCount(exp.Tags)) / float64(len(ref.Tags))
		}

		recency := recencyFactor(now, exp.EndYear, exp.EndMonth)
		intensity := intensityFactor(exp.Intensity)

		// The third term rewards experiences strong in either dimension
		// without double-counting past 1.0.
		bonus := tagOverlap + 0.5*clientMatch
		if bonus > 1 {
			bonus = 1
		}
		base := 0.45*tagOverlap + 0.35*clientMatch + 0.20*bonus

		similarity := base * recency * intensity
		if similarity < 0 {
			similarity = 0
		}
		if similarity > 1 {
			similarity = 1
		}

		if similarity > best {
			best = similarity
			bestMatch = &BestMatch{
				ProjectID:     exp.ProjectID,
				ProjectName:   exp.ProjectName,
				ClientMatched: clientMatch == 1,
				CommonTags:    ref.Tags.CommonCount(exp.Tags),
				ReferenceTags: len(ref.Tags),
				RecencyBucket: recencyBucket(now, exp.EndYear, exp.EndMonth),
				Intensity:     exp.Intensity,
				Role:          exp.Role,
			}
		}
	}

	return int(math.Round(best * 100)), bestMatch
}

// recencyFactor decays with whole months elapsed since the experience's end
// date. A fully or partially missing end date gets a middling 0.75 default.
func recencyFactor(now time.Time, endYear, endMonth int) float64 {
	if endYear == 0 || endMonth == 0 {
		return 0.75
	}
	switch m := monthsSince(now, endYear, endMonth); {
	case m <= 6:
		return 1.0
	case m <= 18:
		return 0.85
	case m <= 36:
		return 0.70
	default:
		return 0.60
	}
}

func recencyBucket(now time.Time, endYear, endMonth int) string {
	if endYear == 0 || endMonth == 0 {
		return RecencyUnspecified
	}
	switch m := monthsSince(now, endYear, endMonth); {
	case m <= 6:
		return RecencyLast6Months
	case m <= 18:
		return RecencyLast18Months
	case m <= 36:
		return RecencyLast3Years
	default:
		return RecencyOver3Years
	}
}

func monthsSince(now time.Time, endYear, endMonth int) int {
	return (now.Year()-endYear)*12 + int(now.Month()) - endMonth
}

// intensityFactor reflects how demanding a past project was (self-reported
// 1-5). Absent or unrecognized intensity gets 0.85.
func intensityFactor(intensity int) float64 {
	switch intensity {
	case 1:
		return 0.70
	case 2:
		return 0.80
	case 3:
		return 0.88
	case 4:
		return 0.95
	case 5:
		return 1.00
	default:
		return 0.85
	}
}

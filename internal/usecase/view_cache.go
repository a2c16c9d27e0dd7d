package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ViewCache is the slice of the Redis cache the read usecases need. A nil or
// unreachable cache must behave as a miss, never as an error.
type ViewCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateStaffingViews(ctx context.Context) error
}

type overviewCacheKeyInput struct {
	Month    int    `json:"month"`
	Search   string `json:"search"`
	SkillID  string `json:"skill_id"`
	MinLevel int    `json:"min_level"`
	Project  string `json:"project_id"`
	Client   string `json:"client"`
	Tag      string `json:"tag"`
}

type matchCacheKeyInput struct {
	Month     int      `json:"month"`
	Skills    []string `json:"skills"`
	Reference string   `json:"reference_project_id"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

func OverviewCacheKey(p OverviewParams) string {
	in := overviewCacheKeyInput{
		Month:    p.Month,
		Search:   normalizeCacheValue(p.Search),
		MinLevel: p.MinLevel,
		Client:   normalizeCacheValue(p.Client),
		Tag:      normalizeCacheValue(p.Tag),
	}
	if p.SkillID != uuid.Nil {
		in.SkillID = p.SkillID.String()
	}
	if p.ProjectID != uuid.Nil {
		in.Project = p.ProjectID.String()
	}
	return "overview:" + hashCacheKey(in)
}

func MatchCacheKey(p MatchParams) string {
	skills := make([]string, 0, len(p.RequiredSkills))
	for _, rs := range p.RequiredSkills {
		skills = append(skills, rs.SkillID.String()+":"+strconv.Itoa(rs.Level))
	}
	sort.Strings(skills)

	in := matchCacheKeyInput{Month: p.Month, Skills: skills}
	if p.ReferenceProjectID != uuid.Nil {
		in.Reference = p.ReferenceProjectID.String()
	}
	return "match:" + hashCacheKey(in)
}

func hashCacheKey(in any) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

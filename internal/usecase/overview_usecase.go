package usecase

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"staffing-tool/internal/domain/scoring"
	"staffing-tool/internal/repository"
)

type OverviewParams struct {
	Month     int
	Search    string
	SkillID   uuid.UUID
	MinLevel  int
	ProjectID uuid.UUID
	Client    string
	Tag       string
}

type ConsultantSkillView struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Level     int       `json:"level"`
}

type OverviewRow struct {
	ConsultantID        uuid.UUID             `json:"consultant_id"`
	Name                string                `json:"name"`
	WorkDays            int                   `json:"work_days"`
	PerceivedLoad       int                   `json:"perceived_load"`
	WorkloadPercent     int                   `json:"workload_percent"`
	AvailabilityPercent int                   `json:"availability_percent"`
	SkillLevel          int                   `json:"skill_level"`
	TopSkills           []ConsultantSkillView `json:"top_skills"`
}

type OverviewChart struct {
	Labels       []string `json:"labels"`
	Workload     []int    `json:"workload"`
	Availability []int    `json:"availability"`
	SkillLevels  []int    `json:"skill_levels"`
}

type OverviewOutput struct {
	Month int           `json:"month"`
	Rows  []OverviewRow `json:"rows"`
	Chart OverviewChart `json:"chart"`
}

type OverviewUsecase interface {
	Overview(ctx context.Context, now time.Time, params OverviewParams) (OverviewOutput, error)
}

type Overview struct {
	consultants      repository.ConsultantRepository
	consultantSkills repository.ConsultantSkillRepository
	workloads        repository.WorkloadRepository
	experiences      repository.ExperienceRepository
	cache            ViewCache
	logger           *log.Logger
}

func NewOverviewUsecase(
	consultants repository.ConsultantRepository,
	consultantSkills repository.ConsultantSkillRepository,
	workloads repository.WorkloadRepository,
	experiences repository.ExperienceRepository,
	cache ViewCache,
	logger *log.Logger,
) *Overview {
	return &Overview{
		consultants:      consultants,
		consultantSkills: consultantSkills,
		workloads:        workloads,
		experiences:      experiences,
		cache:            cache,
		logger:           logger,
	}
}

func (u *Overview) Overview(ctx context.Context, now time.Time, params OverviewParams) (OverviewOutput, error) {
	if params.Month == 0 {
		params.Month = int(now.Month())
	}
	params.Month = scoring.ClampInt(params.Month, 1, 12)
	if params.SkillID != uuid.Nil {
		if params.MinLevel == 0 {
			params.MinLevel = 1
		}
		params.MinLevel = scoring.ClampInt(params.MinLevel, 1, 5)
	}

	key := OverviewCacheKey(params)
	if u.cache != nil {
		var cached OverviewOutput
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	consultants, err := u.consultants.List(ctx, params.Search)
	if err != nil {
		return OverviewOutput{}, ErrInternal
	}

	skillRows, err := u.consultantSkills.ListAll(ctx)
	if err != nil {
		return OverviewOutput{}, ErrInternal
	}
	skillsByConsultant := make(map[uuid.UUID][]repository.ConsultantSkill)
	for _, row := range skillRows {
		skillsByConsultant[row.ConsultantID] = append(skillsByConsultant[row.ConsultantID], row)
	}

	monthRows, err := u.workloads.FindByMonth(ctx, params.Month)
	if err != nil {
		return OverviewOutput{}, ErrInternal
	}
	loads := make(map[uuid.UUID]repository.MonthlyWorkload, len(monthRows))
	for _, row := range monthRows {
		loads[row.ConsultantID] = row
	}

	var experienceFilter map[uuid.UUID]bool
	if params.ProjectID != uuid.Nil || params.Client != "" || params.Tag != "" {
		experienceFilter, err = u.consultantsMatchingExperience(ctx, params)
		if err != nil {
			return OverviewOutput{}, ErrInternal
		}
	}

	out := OverviewOutput{Month: params.Month, Rows: make([]OverviewRow, 0, len(consultants))}
	for _, c := range consultants {
		skills := skillsByConsultant[c.ID]

		if params.SkillID != uuid.Nil && skillLevelFor(skills, params.SkillID) < params.MinLevel {
			continue
		}
		if experienceFilter != nil && !experienceFilter[c.ID] {
			continue
		}

		wl := loads[c.ID]
		ws := scoring.ScoreWorkload(wl.WorkDays, wl.PerceivedLoad)

		out.Rows = append(out.Rows, OverviewRow{
			ConsultantID:        c.ID,
			Name:                c.Name,
			WorkDays:            ws.WorkDays,
			PerceivedLoad:       ws.PerceivedLoad,
			WorkloadPercent:     ws.WorkloadPercent,
			AvailabilityPercent: ws.AvailabilityPercent,
			SkillLevel:          representativeSkillLevel(skills, params.SkillID),
			TopSkills:           topSkills(skills),
		})
	}

	// Most available first.
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i].WorkloadPercent < out.Rows[j].WorkloadPercent
	})

	for _, row := range out.Rows {
		out.Chart.Labels = append(out.Chart.Labels, row.Name)
		out.Chart.Workload = append(out.Chart.Workload, row.WorkloadPercent)
		out.Chart.Availability = append(out.Chart.Availability, row.AvailabilityPercent)
		out.Chart.SkillLevels = append(out.Chart.SkillLevels, row.SkillLevel)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Overview] cache store failed key=%s err=%v", key, err)
		}
	}

	return out, nil
}

func (u *Overview) consultantsMatchingExperience(ctx context.Context, params OverviewParams) (map[uuid.UUID]bool, error) {
	rows, err := u.experiences.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	client := strings.ToLower(strings.TrimSpace(params.Client))
	tag := strings.ToLower(strings.TrimSpace(params.Tag))

	matched := make(map[uuid.UUID]bool)
	for _, e := range rows {
		if params.ProjectID != uuid.Nil && e.ProjectID != params.ProjectID {
			continue
		}
		if client != "" && strings.ToLower(strings.TrimSpace(e.Client)) != client {
			continue
		}
		if tag != "" && !scoring.NormalizeTags(e.DomainTags).Contains(tag) {
			continue
		}
		matched[e.ConsultantID] = true
	}
	return matched, nil
}

func skillLevelFor(skills []repository.ConsultantSkill, skillID uuid.UUID) int {
	for _, s := range skills {
		if s.SkillID == skillID {
			return s.Level
		}
	}
	return 0
}

// representativeSkillLevel is the filtered skill's level when a skill filter
// is active, otherwise the rounded mean of the consultant's three strongest
// skills.
func representativeSkillLevel(skills []repository.ConsultantSkill, skillID uuid.UUID) int {
	if skillID != uuid.Nil {
		return skillLevelFor(skills, skillID)
	}
	if len(skills) == 0 {
		return 0
	}

	sorted := sortedByLevelDesc(skills)
	n := len(sorted)
	if n > 3 {
		n = 3
	}
	sum := 0
	for _, s := range sorted[:n] {
		sum += s.Level
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// topSkills reports up to five skills at level 3 or higher, strongest first.
func topSkills(skills []repository.ConsultantSkill) []ConsultantSkillView {
	sorted := sortedByLevelDesc(skills)

	out := make([]ConsultantSkillView, 0, 5)
	for _, s := range sorted {
		if s.Level < 3 {
			break
		}
		out = append(out, ConsultantSkillView{SkillID: s.SkillID, SkillName: s.SkillName, Level: s.Level})
		if len(out) == 5 {
			break
		}
	}
	return out
}

func sortedByLevelDesc(skills []repository.ConsultantSkill) []repository.ConsultantSkill {
	sorted := make([]repository.ConsultantSkill, len(skills))
	copy(sorted, skills)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Level != sorted[j].Level {
			return sorted[i].Level > sorted[j].Level
		}
		return sorted[i].SkillName < sorted[j].SkillName
	})
	return sorted
}

package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"staffing-tool/internal/domain/scoring"
	"staffing-tool/internal/repository"
)

var ErrUnknownSkill = errors.New("unknown skill")

type MatchRequiredSkill struct {
	SkillID uuid.UUID
	Level   int
}

type MatchParams struct {
	Month              int
	RequiredSkills     []MatchRequiredSkill
	ReferenceProjectID uuid.UUID
}

type SkillAssessmentView struct {
	SkillID         uuid.UUID `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	ConsultantLevel int       `json:"consultant_level"`
	RequiredLevel   int       `json:"required_level"`
	Met             bool      `json:"met"`
}

type BestMatchView struct {
	ProjectID     uuid.UUID `json:"project_id"`
	ProjectName   string    `json:"project_name"`
	ClientMatched bool      `json:"client_matched"`
	CommonTags    int       `json:"common_tags"`
	ReferenceTags int       `json:"reference_tags"`
	RecencyBucket string    `json:"recency_bucket"`
	Intensity     int       `json:"intensity,omitempty"`
	Role          string    `json:"role,omitempty"`
}

type MatchResultView struct {
	ConsultantID        uuid.UUID             `json:"consultant_id"`
	Name                string                `json:"name"`
	FinalScore          int                   `json:"final_score"`
	SkillFit            int                   `json:"skill_fit"`
	WorkloadPercent     int                   `json:"workload_percent"`
	AvailabilityPercent int                   `json:"availability_percent"`
	WorkDays            int                   `json:"work_days"`
	PerceivedLoad       int                   `json:"perceived_load"`
	ProjectExperience   *int                  `json:"project_experience,omitempty"`
	BestMatch           *BestMatchView        `json:"best_match,omitempty"`
	Skills              []SkillAssessmentView `json:"skills"`
}

type ReferenceProjectView struct {
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	Client    string    `json:"client,omitempty"`
}

type MatchChart struct {
	Labels       []string `json:"labels"`
	FinalScores  []int    `json:"final_scores"`
	SkillFit     []int    `json:"skill_fit"`
	Availability []int    `json:"availability"`
}

type MatchOutput struct {
	Month            int                   `json:"month"`
	ReferenceProject *ReferenceProjectView `json:"reference_project,omitempty"`
	Results          []MatchResultView     `json:"results"`
	Chart            MatchChart            `json:"chart"`
}

type MatchUsecase interface {
	Match(ctx context.Context, now time.Time, params MatchParams) (MatchOutput, error)
}

type Match struct {
	consultants      repository.ConsultantRepository
	skills           repository.SkillRepository
	consultantSkills repository.ConsultantSkillRepository
	workloads        repository.WorkloadRepository
	experiences      repository.ExperienceRepository
	projects         repository.ProjectRepository
	cache            ViewCache
	logger           *log.Logger
}

func NewMatchUsecase(
	consultants repository.ConsultantRepository,
	skills repository.SkillRepository,
	consultantSkills repository.ConsultantSkillRepository,
	workloads repository.WorkloadRepository,
	experiences repository.ExperienceRepository,
	projects repository.ProjectRepository,
	cache ViewCache,
	logger *log.Logger,
) *Match {
	return &Match{
		consultants:      consultants,
		skills:           skills,
		consultantSkills: consultantSkills,
		workloads:        workloads,
		experiences:      experiences,
		projects:         projects,
		cache:            cache,
		logger:           logger,
	}
}

func (u *Match) Match(ctx context.Context, now time.Time, params MatchParams) (MatchOutput, error) {
	params = u.normalizeParams(now, params)

	key := MatchCacheKey(params)
	if u.cache != nil {
		var cached MatchOutput
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	required, err := u.resolveRequiredSkills(ctx, params.RequiredSkills)
	if err != nil {
		return MatchOutput{}, err
	}

	ref, refView, err := u.resolveReferenceProject(ctx, params.ReferenceProjectID)
	if err != nil {
		return MatchOutput{}, err
	}

	candidates, err := u.assembleCandidates(ctx, params.Month, ref != nil)
	if err != nil {
		return MatchOutput{}, ErrInternal
	}

	results := scoring.Rank(now, candidates, scoring.Request{
		RequiredSkills:   required,
		ReferenceProject: ref,
	})

	out := MatchOutput{
		Month:            params.Month,
		ReferenceProject: refView,
		Results:          make([]MatchResultView, 0, len(results)),
	}
	for _, r := range results {
		out.Results = append(out.Results, toMatchResultView(r))
		out.Chart.Labels = append(out.Chart.Labels, r.Name)
		out.Chart.FinalScores = append(out.Chart.FinalScores, r.FinalScore)
		out.Chart.SkillFit = append(out.Chart.SkillFit, r.SkillFit)
		out.Chart.Availability = append(out.Chart.Availability, r.Workload.AvailabilityPercent)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Match] cache store failed key=%s err=%v", key, err)
		}
	}

	return out, nil
}

// normalizeParams coerces boundary input the same way the engine coerces
// workload numbers: out-of-range values are clamped, never rejected.
func (u *Match) normalizeParams(now time.Time, params MatchParams) MatchParams {
	if params.Month == 0 {
		params.Month = int(now.Month())
	}
	params.Month = scoring.ClampInt(params.Month, 1, 12)

	normalized := make([]MatchRequiredSkill, 0, len(params.RequiredSkills))
	seen := make(map[uuid.UUID]struct{}, len(params.RequiredSkills))
	for _, rs := range params.RequiredSkills {
		if rs.SkillID == uuid.Nil {
			continue
		}
		if _, dup := seen[rs.SkillID]; dup {
			continue
		}
		seen[rs.SkillID] = struct{}{}
		rs.Level = scoring.ClampInt(rs.Level, 1, 5)
		normalized = append(normalized, rs)
	}
	params.RequiredSkills = normalized
	return params
}

func (u *Match) resolveRequiredSkills(ctx context.Context, reqs []MatchRequiredSkill) ([]scoring.RequiredSkill, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	all, err := u.skills.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	names := make(map[uuid.UUID]string, len(all))
	for _, s := range all {
		names[s.ID] = s.Name
	}

	out := make([]scoring.RequiredSkill, 0, len(reqs))
	for _, rs := range reqs {
		name, ok := names[rs.SkillID]
		if !ok {
			return nil, ErrUnknownSkill
		}
		out = append(out, scoring.RequiredSkill{SkillID: rs.SkillID, SkillName: name, Level: rs.Level})
	}
	return out, nil
}

// resolveReferenceProject maps an unknown or absent id to a nil reference, so
// similarity scoring is simply skipped instead of failing the whole match.
func (u *Match) resolveReferenceProject(ctx context.Context, id uuid.UUID) (*scoring.ReferenceProject, *ReferenceProjectView, error) {
	if id == uuid.Nil {
		return nil, nil, nil
	}

	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, nil, nil
		}
		return nil, nil, ErrInternal
	}

	ref := &scoring.ReferenceProject{
		ProjectID: p.ID,
		Name:      p.Name,
		Client:    p.Client,
		Tags:      scoring.NormalizeTags(p.DomainTags),
	}
	view := &ReferenceProjectView{ProjectID: p.ID, Name: p.Name, Client: p.Client}
	return ref, view, nil
}

func (u *Match) assembleCandidates(ctx context.Context, month int, withExperiences bool) ([]scoring.Candidate, error) {
	consultants, err := u.consultants.List(ctx, "")
	if err != nil {
		return nil, err
	}

	skillRows, err := u.consultantSkills.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	levels := make(map[uuid.UUID]map[uuid.UUID]int)
	for _, row := range skillRows {
		m, ok := levels[row.ConsultantID]
		if !ok {
			m = make(map[uuid.UUID]int)
			levels[row.ConsultantID] = m
		}
		m[row.SkillID] = row.Level
	}

	monthRows, err := u.workloads.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	loads := make(map[uuid.UUID]repository.MonthlyWorkload, len(monthRows))
	for _, row := range monthRows {
		loads[row.ConsultantID] = row
	}

	var experiences map[uuid.UUID][]scoring.ExperienceRecord
	if withExperiences {
		expRows, err := u.experiences.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		experiences = make(map[uuid.UUID][]scoring.ExperienceRecord)
		for _, row := range expRows {
			experiences[row.ConsultantID] = append(experiences[row.ConsultantID], toExperienceRecord(row))
		}
	}

	candidates := make([]scoring.Candidate, 0, len(consultants))
	for _, c := range consultants {
		wl := loads[c.ID]
		candidates = append(candidates, scoring.Candidate{
			ConsultantID:  c.ID,
			Name:          c.Name,
			SkillLevels:   levels[c.ID],
			WorkDays:      wl.WorkDays,
			PerceivedLoad: wl.PerceivedLoad,
			Experiences:   experiences[c.ID],
		})
	}
	return candidates, nil
}

func toExperienceRecord(e repository.Experience) scoring.ExperienceRecord {
	return scoring.ExperienceRecord{
		ProjectID:   e.ProjectID,
		ProjectName: e.ProjectName,
		Client:      e.Client,
		Tags:        scoring.NormalizeTags(e.DomainTags),
		Role:        e.Role,
		EndMonth:    e.EndMonth,
		EndYear:     e.EndYear,
		Intensity:   e.Intensity,
	}
}

func toMatchResultView(r scoring.MatchResult) MatchResultView {
	view := MatchResultView{
		ConsultantID:        r.ConsultantID,
		Name:                r.Name,
		FinalScore:          r.FinalScore,
		SkillFit:            r.SkillFit,
		WorkloadPercent:     r.Workload.WorkloadPercent,
		AvailabilityPercent: r.Workload.AvailabilityPercent,
		WorkDays:            r.Workload.WorkDays,
		PerceivedLoad:       r.Workload.PerceivedLoad,
		ProjectExperience:   r.ProjectExperience,
		Skills:              make([]SkillAssessmentView, 0, len(r.SkillBreakdown)),
	}
	for _, a := range r.SkillBreakdown {
		view.Skills = append(view.Skills, SkillAssessmentView{
			SkillID:         a.SkillID,
			SkillName:       a.SkillName,
			ConsultantLevel: a.ConsultantLevel,
			RequiredLevel:   a.RequiredLevel,
			Met:             a.Met,
		})
	}
	if r.BestMatch != nil {
		view.BestMatch = &BestMatchView{
			ProjectID:     r.BestMatch.ProjectID,
			ProjectName:   r.BestMatch.ProjectName,
			ClientMatched: r.BestMatch.ClientMatched,
			CommonTags:    r.BestMatch.CommonTags,
			ReferenceTags: r.BestMatch.ReferenceTags,
			RecencyBucket: r.BestMatch.RecencyBucket,
			Intensity:     r.BestMatch.Intensity,
			Role:          r.BestMatch.Role,
		}
	}
	return view
}

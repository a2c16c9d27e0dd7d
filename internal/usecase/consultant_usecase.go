package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"staffing-tool/internal/domain/scoring"
	"staffing-tool/internal/repository"
)

var (
	ErrConsultantNotFound = errors.New("consultant not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrNameRequired       = errors.New("name required")
)

// ChangeNotifier fans staffing-data changes out to connected dashboards.
type ChangeNotifier interface {
	NotifyStaffingUpdated(resource string)
}

type ConsultantSkillInput struct {
	SkillID   uuid.UUID
	SkillName string
	Level     int
}

type ConsultantWorkloadInput struct {
	Month         int
	WorkDays      int
	PerceivedLoad int
}

type ExperienceInput struct {
	ProjectID  uuid.UUID
	Role       string
	StartMonth int
	StartYear  int
	EndMonth   int
	EndYear    int
	Intensity  int
	Notes      string
}

type SaveConsultantInput struct {
	ID          uuid.UUID
	Name        string
	Skills      []ConsultantSkillInput
	Workloads   []ConsultantWorkloadInput
	Experiences []ExperienceInput
}

type RecentProjectView struct {
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Role        string    `json:"role,omitempty"`
	EndMonth    int       `json:"end_month,omitempty"`
	EndYear     int       `json:"end_year,omitempty"`
}

type ConsultantListItem struct {
	ConsultantID   uuid.UUID             `json:"consultant_id"`
	Name           string                `json:"name"`
	TopSkills      []ConsultantSkillView `json:"top_skills"`
	RecentProjects []RecentProjectView   `json:"recent_projects"`
}

type WorkloadEntryView struct {
	Month               int `json:"month"`
	WorkDays            int `json:"work_days"`
	PerceivedLoad       int `json:"perceived_load"`
	WorkloadPercent     int `json:"workload_percent"`
	AvailabilityPercent int `json:"availability_percent"`
}

type ExperienceView struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Client      string    `json:"client,omitempty"`
	DomainTags  string    `json:"domain_tags,omitempty"`
	Role        string    `json:"role,omitempty"`
	StartMonth  int       `json:"start_month,omitempty"`
	StartYear   int       `json:"start_year,omitempty"`
	EndMonth    int       `json:"end_month,omitempty"`
	EndYear     int       `json:"end_year,omitempty"`
	Intensity   int       `json:"intensity,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type ProfileChart struct {
	Labels       []string `json:"labels"`
	Workload     []int    `json:"workload"`
	Availability []int    `json:"availability"`
}

type ConsultantProfile struct {
	ConsultantID uuid.UUID             `json:"consultant_id"`
	Name         string                `json:"name"`
	Skills       []ConsultantSkillView `json:"skills"`
	Workloads    []WorkloadEntryView   `json:"workloads"`
	Experiences  []ExperienceView      `json:"experiences"`
	Chart        ProfileChart          `json:"chart"`
}

type ConsultantUsecase interface {
	List(ctx context.Context, search string) ([]ConsultantListItem, error)
	Save(ctx context.Context, in SaveConsultantInput) (ConsultantProfile, error)
	Profile(ctx context.Context, id uuid.UUID) (ConsultantProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddExperience(ctx context.Context, consultantID uuid.UUID, in ExperienceInput) (ExperienceView, error)
}

type ConsultantService struct {
	consultants      repository.ConsultantRepository
	skills           repository.SkillRepository
	consultantSkills repository.ConsultantSkillRepository
	workloads        repository.WorkloadRepository
	experiences      repository.ExperienceRepository
	projects         repository.ProjectRepository
	cache            ViewCache
	notifier         ChangeNotifier
	logger           *log.Logger
}

func NewConsultantUsecase(
	consultants repository.ConsultantRepository,
	skills repository.SkillRepository,
	consultantSkills repository.ConsultantSkillRepository,
	workloads repository.WorkloadRepository,
	experiences repository.ExperienceRepository,
	projects repository.ProjectRepository,
	cache ViewCache,
	notifier ChangeNotifier,
	logger *log.Logger,
) *ConsultantService {
	return &ConsultantService{
		consultants:      consultants,
		skills:           skills,
		consultantSkills: consultantSkills,
		workloads:        workloads,
		experiences:      experiences,
		projects:         projects,
		cache:            cache,
		notifier:         notifier,
		logger:           logger,
	}
}

func (u *ConsultantService) List(ctx context.Context, search string) ([]ConsultantListItem, error) {
	consultants, err := u.consultants.List(ctx, search)
	if err != nil {
		return nil, ErrInternal
	}

	skillRows, err := u.consultantSkills.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	skillsByConsultant := make(map[uuid.UUID][]repository.ConsultantSkill)
	for _, row := range skillRows {
		skillsByConsultant[row.ConsultantID] = append(skillsByConsultant[row.ConsultantID], row)
	}

	expRows, err := u.experiences.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	expByConsultant := make(map[uuid.UUID][]repository.Experience)
	for _, row := range expRows {
		expByConsultant[row.ConsultantID] = append(expByConsultant[row.ConsultantID], row)
	}

	out := make([]ConsultantListItem, 0, len(consultants))
	for _, c := range consultants {
		out = append(out, ConsultantListItem{
			ConsultantID:   c.ID,
			Name:           c.Name,
			TopSkills:      topSkills(skillsByConsultant[c.ID]),
			RecentProjects: recentProjects(expByConsultant[c.ID], 2),
		})
	}
	return out, nil
}

// Save creates or updates a consultant in one shot: the name, the full skill
// map (level 0 removes the skill), any workload months supplied, and any new
// experience rows. All numbers are clamped here so the stores and the engine
// only ever see in-range values.
func (u *ConsultantService) Save(ctx context.Context, in SaveConsultantInput) (ConsultantProfile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ConsultantProfile{}, ErrNameRequired
	}

	var consultant repository.Consultant
	var err error
	if in.ID == uuid.Nil {
		consultant, err = u.consultants.Create(ctx, name)
		if err != nil {
			return ConsultantProfile{}, ErrInternal
		}
	} else {
		consultant, err = u.consultants.GetByID(ctx, in.ID)
		if err != nil {
			if errors.Is(err, repository.ErrConsultantNotFound) {
				return ConsultantProfile{}, ErrConsultantNotFound
			}
			return ConsultantProfile{}, ErrInternal
		}
		if consultant.Name != name {
			if err := u.consultants.Rename(ctx, consultant.ID, name); err != nil {
				return ConsultantProfile{}, ErrInternal
			}
		}
	}

	if err := u.applySkills(ctx, consultant.ID, in.Skills); err != nil {
		return ConsultantProfile{}, err
	}
	if err := u.applyWorkloads(ctx, consultant.ID, in.Workloads); err != nil {
		return ConsultantProfile{}, err
	}
	for _, exp := range in.Experiences {
		if _, err := u.AddExperience(ctx, consultant.ID, exp); err != nil {
			return ConsultantProfile{}, err
		}
	}

	u.invalidate(ctx, "consultant")
	return u.Profile(ctx, consultant.ID)
}

func (u *ConsultantService) applySkills(ctx context.Context, consultantID uuid.UUID, skills []ConsultantSkillInput) error {
	for _, s := range skills {
		skillID := s.SkillID
		if skillID == uuid.Nil {
			name := strings.TrimSpace(s.SkillName)
			if name == "" {
				continue
			}
			skill, err := u.skills.Ensure(ctx, name)
			if err != nil {
				return ErrInternal
			}
			skillID = skill.ID
		} else {
			ok, err := u.skills.ExistsByID(ctx, skillID)
			if err != nil {
				return ErrInternal
			}
			if !ok {
				return ErrUnknownSkill
			}
		}

		level := scoring.ClampInt(s.Level, 0, 5)
		if level == 0 {
			if err := u.consultantSkills.Remove(ctx, consultantID, skillID); err != nil {
				return ErrInternal
			}
			continue
		}
		if err := u.consultantSkills.Upsert(ctx, consultantID, skillID, level); err != nil {
			return ErrInternal
		}
	}
	return nil
}

func (u *ConsultantService) applyWorkloads(ctx context.Context, consultantID uuid.UUID, workloads []ConsultantWorkloadInput) error {
	for _, wl := range workloads {
		if wl.Month < 1 || wl.Month > 12 {
			continue
		}
		workDays := wl.WorkDays
		if workDays < 0 {
			workDays = 0
		}
		err := u.workloads.Upsert(ctx, repository.MonthlyWorkload{
			ConsultantID:  consultantID,
			Month:         wl.Month,
			WorkDays:      workDays,
			PerceivedLoad: scoring.ClampInt(wl.PerceivedLoad, 0, 10),
		})
		if err != nil {
			return ErrInternal
		}
	}
	return nil
}

func (u *ConsultantService) Profile(ctx context.Context, id uuid.UUID) (ConsultantProfile, error) {
	consultant, err := u.consultants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConsultantNotFound) {
			return ConsultantProfile{}, ErrConsultantNotFound
		}
		return ConsultantProfile{}, ErrInternal
	}

	skills, err := u.consultantSkills.FindByConsultantID(ctx, id)
	if err != nil {
		return ConsultantProfile{}, ErrInternal
	}

	workloadRows, err := u.workloads.FindByConsultantID(ctx, id)
	if err != nil {
		return ConsultantProfile{}, ErrInternal
	}
	byMonth := make(map[int]repository.MonthlyWorkload, len(workloadRows))
	for _, row := range workloadRows {
		byMonth[row.Month] = row
	}

	expRows, err := u.experiences.FindByConsultantID(ctx, id)
	if err != nil {
		return ConsultantProfile{}, ErrInternal
	}
	sortExperiencesByEndDesc(expRows)

	profile := ConsultantProfile{
		ConsultantID: consultant.ID,
		Name:         consultant.Name,
		Skills:       make([]ConsultantSkillView, 0, len(skills)),
		Workloads:    make([]WorkloadEntryView, 0, 12),
		Experiences:  make([]ExperienceView, 0, len(expRows)),
	}

	for _, s := range sortedByLevelDesc(skills) {
		profile.Skills = append(profile.Skills, ConsultantSkillView{SkillID: s.SkillID, SkillName: s.SkillName, Level: s.Level})
	}

	// Always twelve entries; months without a row score as zero workload.
	for month := 1; month <= 12; month++ {
		wl := byMonth[month]
		ws := scoring.ScoreWorkload(wl.WorkDays, wl.PerceivedLoad)
		profile.Workloads = append(profile.Workloads, WorkloadEntryView{
			Month:               month,
			WorkDays:            ws.WorkDays,
			PerceivedLoad:       ws.PerceivedLoad,
			WorkloadPercent:     ws.WorkloadPercent,
			AvailabilityPercent: ws.AvailabilityPercent,
		})
		profile.Chart.Labels = append(profile.Chart.Labels, time.Month(month).String()[:3])
		profile.Chart.Workload = append(profile.Chart.Workload, ws.WorkloadPercent)
		profile.Chart.Availability = append(profile.Chart.Availability, ws.AvailabilityPercent)
	}

	for _, e := range expRows {
		profile.Experiences = append(profile.Experiences, toExperienceView(e))
	}

	return profile, nil
}

func (u *ConsultantService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.consultants.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrConsultantNotFound) {
			return ErrConsultantNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx, "consultant")
	return nil
}

func (u *ConsultantService) AddExperience(ctx context.Context, consultantID uuid.UUID, in ExperienceInput) (ExperienceView, error) {
	ok, err := u.consultants.ExistsByID(ctx, consultantID)
	if err != nil {
		return ExperienceView{}, ErrInternal
	}
	if !ok {
		return ExperienceView{}, ErrConsultantNotFound
	}

	if _, err := u.projects.GetByID(ctx, in.ProjectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ExperienceView{}, ErrProjectNotFound
		}
		return ExperienceView{}, ErrInternal
	}

	created, err := u.experiences.Create(ctx, repository.Experience{
		ConsultantID: consultantID,
		ProjectID:    in.ProjectID,
		Role:         strings.TrimSpace(in.Role),
		StartMonth:   clampMonthOrZero(in.StartMonth),
		StartYear:    in.StartYear,
		EndMonth:     clampMonthOrZero(in.EndMonth),
		EndYear:      in.EndYear,
		Intensity:    clampIntensityOrZero(in.Intensity),
		Notes:        strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return ExperienceView{}, ErrInternal
	}

	u.invalidate(ctx, "experience")
	return toExperienceView(created), nil
}

func (u *ConsultantService) invalidate(ctx context.Context, resource string) {
	if u.cache != nil {
		if err := u.cache.InvalidateStaffingViews(ctx); err != nil && u.logger != nil {
			u.logger.Printf("[Consultant] cache invalidation failed err=%v", err)
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyStaffingUpdated(resource)
	}
}

func clampMonthOrZero(month int) int {
	if month == 0 {
		return 0
	}
	return scoring.ClampInt(month, 1, 12)
}

func clampIntensityOrZero(intensity int) int {
	if intensity == 0 {
		return 0
	}
	return scoring.ClampInt(intensity, 1, 5)
}

// recentProjects keeps the n most recently finished assignments; rows with
// no end date sort last.
func recentProjects(rows []repository.Experience, n int) []RecentProjectView {
	sorted := make([]repository.Experience, len(rows))
	copy(sorted, rows)
	sortExperiencesByEndDesc(sorted)

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]RecentProjectView, 0, len(sorted))
	for _, e := range sorted {
		out = append(out, RecentProjectView{
			ProjectID:   e.ProjectID,
			ProjectName: e.ProjectName,
			Role:        e.Role,
			EndMonth:    e.EndMonth,
			EndYear:     e.EndYear,
		})
	}
	return out
}

func sortExperiencesByEndDesc(rows []repository.Experience) {
	sort.SliceStable(rows, func(i, j int) bool {
		return experienceEndKey(rows[i]) > experienceEndKey(rows[j])
	})
}

func experienceEndKey(e repository.Experience) int {
	if e.EndYear == 0 {
		return -1
	}
	return e.EndYear*100 + e.EndMonth
}

func toExperienceView(e repository.Experience) ExperienceView {
	return ExperienceView{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		ProjectName: e.ProjectName,
		Client:      e.Client,
		DomainTags:  e.DomainTags,
		Role:        e.Role,
		StartMonth:  e.StartMonth,
		StartYear:   e.StartYear,
		EndMonth:    e.EndMonth,
		EndYear:     e.EndYear,
		Intensity:   e.Intensity,
		Notes:       e.Notes,
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"staffing-tool/internal/repository"
)

func newConsultantUsecase(
	consultants *mockConsultantRepo,
	skills *mockSkillRepo,
	consultantSkills *mockConsultantSkillRepo,
	workloads *mockWorkloadRepo,
	experiences *mockExperienceRepo,
	projects *mockProjectRepo,
	cache ViewCache,
	notifier ChangeNotifier,
) *ConsultantService {
	return NewConsultantUsecase(consultants, skills, consultantSkills, workloads, experiences, projects, cache, notifier, nil)
}

func TestConsultantUsecase_Save_RequiresName(t *testing.T) {
	uc := newConsultantUsecase(
		&mockConsultantRepo{}, &mockSkillRepo{}, &mockConsultantSkillRepo{},
		&mockWorkloadRepo{}, &mockExperienceRepo{}, &mockProjectRepo{}, nil, nil,
	)

	_, err := uc.Save(context.Background(), SaveConsultantInput{Name: "   "})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestConsultantUsecase_Save_CreatesWithSkillsAndWorkloads(t *testing.T) {
	dati := repository.Skill{ID: uuid.New(), Name: "Dati"}
	skills := &mockSkillRepo{items: []repository.Skill{dati}}
	consultantSkills := &mockConsultantSkillRepo{}
	workloads := &mockWorkloadRepo{}
	notifier := &mockNotifier{}

	uc := newConsultantUsecase(
		&mockConsultantRepo{}, skills, consultantSkills,
		workloads, &mockExperienceRepo{}, &mockProjectRepo{}, nil, notifier,
	)

	profile, err := uc.Save(context.Background(), SaveConsultantInput{
		Name: " Anna ",
		Skills: []ConsultantSkillInput{
			{SkillID: dati.ID, Level: 9},
			{SkillName: "Coaching", Level: 3},
		},
		Workloads: []ConsultantWorkloadInput{
			{Month: 9, WorkDays: -4, PerceivedLoad: 15},
			{Month: 13, WorkDays: 10, PerceivedLoad: 5},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if profile.Name != "Anna" {
		t.Fatalf("name should be trimmed, got %q", profile.Name)
	}

	if len(consultantSkills.items) != 2 {
		t.Fatalf("expected 2 skill rows, got %d", len(consultantSkills.items))
	}
	if consultantSkills.items[0].Level != 5 {
		t.Fatalf("level should be clamped to 5, got %d", consultantSkills.items[0].Level)
	}
	if len(skills.items) != 2 {
		t.Fatalf("new skill name should be created, have %d skills", len(skills.items))
	}

	// Month 13 is dropped; month 9 is stored coerced.
	if len(workloads.items) != 1 {
		t.Fatalf("expected 1 workload row, got %d", len(workloads.items))
	}
	if workloads.items[0].WorkDays != 0 || workloads.items[0].PerceivedLoad != 10 {
		t.Fatalf("workload should be coerced, got %+v", workloads.items[0])
	}

	if len(notifier.events) == 0 {
		t.Fatalf("save should notify listeners")
	}
}

func TestConsultantUsecase_Save_LevelZeroRemovesSkill(t *testing.T) {
	dati := repository.Skill{ID: uuid.New(), Name: "Dati"}
	consultant := repository.Consultant{ID: uuid.New(), Name: "Anna"}
	consultantSkills := &mockConsultantSkillRepo{items: []repository.ConsultantSkill{
		{ConsultantID: consultant.ID, SkillID: dati.ID, SkillName: "Dati", Level: 4},
	}}

	uc := newConsultantUsecase(
		&mockConsultantRepo{items: []repository.Consultant{consultant}},
		&mockSkillRepo{items: []repository.Skill{dati}},
		consultantSkills,
		&mockWorkloadRepo{}, &mockExperienceRepo{}, &mockProjectRepo{}, nil, nil,
	)

	_, err := uc.Save(context.Background(), SaveConsultantInput{
		ID:     consultant.ID,
		Name:   "Anna",
		Skills: []ConsultantSkillInput{{SkillID: dati.ID, Level: 0}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(consultantSkills.items) != 0 {
		t.Fatalf("level 0 should remove the skill, still have %d rows", len(consultantSkills.items))
	}
}

func TestConsultantUsecase_Profile_TwelveWorkloadEntries(t *testing.T) {
	consultant := repository.Consultant{ID: uuid.New(), Name: "Anna"}

	uc := newConsultantUsecase(
		&mockConsultantRepo{items: []repository.Consultant{consultant}},
		&mockSkillRepo{}, &mockConsultantSkillRepo{},
		&mockWorkloadRepo{items: []repository.MonthlyWorkload{
			{ConsultantID: consultant.ID, Month: 3, WorkDays: 20, PerceivedLoad: 10},
		}},
		&mockExperienceRepo{}, &mockProjectRepo{}, nil, nil,
	)

	profile, err := uc.Profile(context.Background(), consultant.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(profile.Workloads) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(profile.Workloads))
	}
	if profile.Workloads[2].WorkloadPercent != 100 {
		t.Fatalf("march should be fully loaded, got %d%%", profile.Workloads[2].WorkloadPercent)
	}
	if profile.Workloads[0].WorkloadPercent != 0 || profile.Workloads[0].AvailabilityPercent != 100 {
		t.Fatalf("missing months should score zero, got %+v", profile.Workloads[0])
	}
	if profile.Chart.Labels[0] != "Jan" || len(profile.Chart.Workload) != 12 {
		t.Fatalf("unexpected chart payload: %v", profile.Chart.Labels)
	}
}

func TestConsultantUsecase_Profile_NotFound(t *testing.T) {
	uc := newConsultantUsecase(
		&mockConsultantRepo{}, &mockSkillRepo{}, &mockConsultantSkillRepo{},
		&mockWorkloadRepo{}, &mockExperienceRepo{}, &mockProjectRepo{}, nil, nil,
	)

	_, err := uc.Profile(context.Background(), uuid.New())
	if !errors.Is(err, ErrConsultantNotFound) {
		t.Fatalf("expected ErrConsultantNotFound, got %v", err)
	}
}

func TestConsultantUsecase_List_RecentProjectsMissingEndDatesLast(t *testing.T) {
	consultant := repository.Consultant{ID: uuid.New(), Name: "Anna"}
	experiences := &mockExperienceRepo{items: []repository.Experience{
		{ID: uuid.New(), ConsultantID: consultant.ID, ProjectID: uuid.New(), ProjectName: "Ongoing"},
		{ID: uuid.New(), ConsultantID: consultant.ID, ProjectID: uuid.New(), ProjectName: "Old", EndMonth: 1, EndYear: 2023},
		{ID: uuid.New(), ConsultantID: consultant.ID, ProjectID: uuid.New(), ProjectName: "Fresh", EndMonth: 6, EndYear: 2025},
	}}

	uc := newConsultantUsecase(
		&mockConsultantRepo{items: []repository.Consultant{consultant}},
		&mockSkillRepo{}, &mockConsultantSkillRepo{},
		&mockWorkloadRepo{}, experiences, &mockProjectRepo{}, nil, nil,
	)

	items, err := uc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 consultant, got %d", len(items))
	}

	recent := items[0].RecentProjects
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent projects, got %d", len(recent))
	}
	if recent[0].ProjectName != "Fresh" || recent[1].ProjectName != "Old" {
		t.Fatalf("unexpected recent projects: %s, %s", recent[0].ProjectName, recent[1].ProjectName)
	}
}

func TestConsultantUsecase_AddExperience_UnknownProject(t *testing.T) {
	consultant := repository.Consultant{ID: uuid.New(), Name: "Anna"}

	uc := newConsultantUsecase(
		&mockConsultantRepo{items: []repository.Consultant{consultant}},
		&mockSkillRepo{}, &mockConsultantSkillRepo{},
		&mockWorkloadRepo{}, &mockExperienceRepo{}, &mockProjectRepo{}, nil, nil,
	)

	_, err := uc.AddExperience(context.Background(), consultant.ID, ExperienceInput{ProjectID: uuid.New()})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestConsultantUsecase_Delete_InvalidatesCache(t *testing.T) {
	consultant := repository.Consultant{ID: uuid.New(), Name: "Anna"}
	cache := &mockViewCache{store: map[string][]byte{"overview:x": []byte(`{}`)}}

	uc := newConsultantUsecase(
		&mockConsultantRepo{items: []repository.Consultant{consultant}},
		&mockSkillRepo{}, &mockConsultantSkillRepo{},
		&mockWorkloadRepo{}, &mockExperienceRepo{}, &mockProjectRepo{}, cache, nil,
	)

	if err := uc.Delete(context.Background(), consultant.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("delete should invalidate cached views")
	}
}

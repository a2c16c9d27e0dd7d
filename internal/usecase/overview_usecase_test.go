package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"staffing-tool/internal/repository"
)

func TestOverviewUsecase_SortsByWorkloadAscending(t *testing.T) {
	anna := repository.Consultant{ID: uuid.New(), Name: "Anna"}
	bruno := repository.Consultant{ID: uuid.New(), Name: "Bruno"}
	carla := repository.Consultant{ID: uuid.New(), Name: "Carla"}

	uc := NewOverviewUsecase(
		&mockConsultantRepo{items: []repository.Consultant{anna, bruno, carla}},
		&mockConsultantSkillRepo{},
		&mockWorkloadRepo{items: []repository.MonthlyWorkload{
			{ConsultantID: anna.ID, Month: 9, WorkDays: 10, PerceivedLoad: 5},
			{ConsultantID: carla.ID, Month: 9, WorkDays: 23, PerceivedLoad: 0},
		}},
		&mockExperienceRepo{},
		nil,
		nil,
	)

	out, err := uc.Overview(context.Background(), matchNow, OverviewParams{Month: 9})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out.Rows))
	}

	// Bruno has no workload row (0%), Anna is at 50%, Carla at 100%.
	if out.Rows[0].Name != "Bruno" || out.Rows[1].Name != "Anna" || out.Rows[2].Name != "Carla" {
		t.Fatalf("unexpected order: %s, %s, %s", out.Rows[0].Name, out.Rows[1].Name, out.Rows[2].Name)
	}
	if out.Rows[0].WorkloadPercent != 0 || out.Rows[0].AvailabilityPercent != 100 {
		t.Fatalf("missing workload row should score zero, got %d%%", out.Rows[0].WorkloadPercent)
	}
	if out.Rows[1].WorkloadPercent != 50 {
		t.Fatalf("expected 50%% for Anna, got %d%%", out.Rows[1].WorkloadPercent)
	}
	if out.Chart.Labels[0] != "Bruno" || out.Chart.Workload[2] != 100 {
		t.Fatalf("chart should follow row order")
	}
}

func TestOverviewUsecase_SkillFilter(t *testing.T) {
	anna := repository.Consultant{ID: uuid.New(), Name: "Anna"}
	bruno := repository.Consultant{ID: uuid.New(), Name: "Bruno"}
	dati := uuid.New()

	uc := NewOverviewUsecase(
		&mockConsultantRepo{items: []repository.Consultant{anna, bruno}},
		&mockConsultantSkillRepo{items: []repository.ConsultantSkill{
			{ConsultantID: anna.ID, SkillID: dati, SkillName: "Dati", Level: 5},
			{ConsultantID: bruno.ID, SkillID: dati, SkillName: "Dati", Level: 2},
		}},
		&mockWorkloadRepo{},
		&mockExperienceRepo{},
		nil,
		nil,
	)

	out, err := uc.Overview(context.Background(), matchNow, OverviewParams{Month: 9, SkillID: dati, MinLevel: 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Rows) != 1 || out.Rows[0].Name != "Anna" {
		t.Fatalf("expected only Anna, got %+v", out.Rows)
	}
	if out.Rows[0].SkillLevel != 5 {
		t.Fatalf("filtered skill level should be reported, got %d", out.Rows[0].SkillLevel)
	}
}

func TestOverviewUsecase_RepresentativeLevelIsTopThreeMean(t *testing.T) {
	anna := repository.Consultant{ID: uuid.New(), Name: "Anna"}

	uc := NewOverviewUsecase(
		&mockConsultantRepo{items: []repository.Consultant{anna}},
		&mockConsultantSkillRepo{items: []repository.ConsultantSkill{
			{ConsultantID: anna.ID, SkillID: uuid.New(), SkillName: "Dati", Level: 5},
			{ConsultantID: anna.ID, SkillID: uuid.New(), SkillName: "PM", Level: 4},
			{ConsultantID: anna.ID, SkillID: uuid.New(), SkillName: "AI", Level: 2},
			{ConsultantID: anna.ID, SkillID: uuid.New(), SkillName: "Empowering", Level: 1},
		}},
		&mockWorkloadRepo{},
		&mockExperienceRepo{},
		nil,
		nil,
	)

	out, err := uc.Overview(context.Background(), matchNow, OverviewParams{Month: 9})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Mean of the three strongest skills: (5+4+2)/3 rounds to 4.
	if out.Rows[0].SkillLevel != 4 {
		t.Fatalf("expected representative level 4, got %d", out.Rows[0].SkillLevel)
	}
	if len(out.Rows[0].TopSkills) != 2 {
		t.Fatalf("top skills should keep level >= 3 only, got %d", len(out.Rows[0].TopSkills))
	}
}

func TestOverviewUsecase_ClientFilterUsesExperiences(t *testing.T) {
	anna := repository.Consultant{ID: uuid.New(), Name: "Anna"}
	bruno := repository.Consultant{ID: uuid.New(), Name: "Bruno"}

	uc := NewOverviewUsecase(
		&mockConsultantRepo{items: []repository.Consultant{anna, bruno}},
		&mockConsultantSkillRepo{},
		&mockWorkloadRepo{},
		&mockExperienceRepo{items: []repository.Experience{{
			ID:           uuid.New(),
			ConsultantID: anna.ID,
			ProjectID:    uuid.New(),
			ProjectName:  "Mental Health Day",
			Client:       "Lavazza",
			DomainTags:   "Wellbeing, Training",
		}}},
		nil,
		nil,
	)

	out, err := uc.Overview(context.Background(), matchNow, OverviewParams{Month: 9, Client: "lavazza"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Rows) != 1 || out.Rows[0].Name != "Anna" {
		t.Fatalf("expected only Anna, got %+v", out.Rows)
	}
}

func TestOverviewUsecase_ServesFromCache(t *testing.T) {
	consultants := &mockConsultantRepo{items: []repository.Consultant{{ID: uuid.New(), Name: "Anna"}}}
	cache := &mockViewCache{}

	uc := NewOverviewUsecase(consultants, &mockConsultantSkillRepo{}, &mockWorkloadRepo{}, &mockExperienceRepo{}, cache, nil)

	params := OverviewParams{Month: 9}
	if _, err := uc.Overview(context.Background(), matchNow, params); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	consultants.err = errors.New("db down")

	out, err := uc.Overview(context.Background(), matchNow, params)
	if err != nil {
		t.Fatalf("expected cache hit, got err: %v", err)
	}
	if len(out.Rows) != 1 {
		t.Fatalf("cached result differs, got %d rows", len(out.Rows))
	}
}

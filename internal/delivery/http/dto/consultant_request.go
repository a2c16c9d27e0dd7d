package dto

import (
	"github.com/google/uuid"

	"staffing-tool/internal/usecase"
)

type ConsultantSkillRequest struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Level     int       `json:"level"`
}

type ConsultantWorkloadRequest struct {
	Month         int `json:"month"`
	WorkDays      int `json:"work_days"`
	PerceivedLoad int `json:"perceived_load"`
}

type ExperienceRequest struct {
	ProjectID  uuid.UUID `json:"project_id"`
	Role       string    `json:"role"`
	StartMonth int       `json:"start_month"`
	StartYear  int       `json:"start_year"`
	EndMonth   int       `json:"end_month"`
	EndYear    int       `json:"end_year"`
	Intensity  int       `json:"intensity"`
	Notes      string    `json:"notes"`
}

type SaveConsultantRequest struct {
	ID          uuid.UUID                   `json:"id"`
	Name        string                      `json:"name"`
	Skills      []ConsultantSkillRequest    `json:"skills"`
	Workloads   []ConsultantWorkloadRequest `json:"workloads"`
	Experiences []ExperienceRequest         `json:"experiences"`
}

func (r SaveConsultantRequest) ToInput() usecase.SaveConsultantInput {
	in := usecase.SaveConsultantInput{
		ID:          r.ID,
		Name:        r.Name,
		Skills:      make([]usecase.ConsultantSkillInput, 0, len(r.Skills)),
		Workloads:   make([]usecase.ConsultantWorkloadInput, 0, len(r.Workloads)),
		Experiences: make([]usecase.ExperienceInput, 0, len(r.Experiences)),
	}
	for _, s := range r.Skills {
		in.Skills = append(in.Skills, usecase.ConsultantSkillInput{SkillID: s.SkillID, SkillName: s.SkillName, Level: s.Level})
	}
	for _, wl := range r.Workloads {
		in.Workloads = append(in.Workloads, usecase.ConsultantWorkloadInput{
			Month:         wl.Month,
			WorkDays:      wl.WorkDays,
			PerceivedLoad: wl.PerceivedLoad,
		})
	}
	for _, e := range r.Experiences {
		in.Experiences = append(in.Experiences, e.ToInput())
	}
	return in
}

func (r ExperienceRequest) ToInput() usecase.ExperienceInput {
	return usecase.ExperienceInput{
		ProjectID:  r.ProjectID,
		Role:       r.Role,
		StartMonth: r.StartMonth,
		StartYear:  r.StartYear,
		EndMonth:   r.EndMonth,
		EndYear:    r.EndYear,
		Intensity:  r.Intensity,
		Notes:      r.Notes,
	}
}

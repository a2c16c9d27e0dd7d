package dto

import (
	"github.com/google/uuid"

	"staffing-tool/internal/usecase"
)

type MatchRequiredSkillRequest struct {
	SkillID uuid.UUID `json:"skill_id"`
	Level   int       `json:"level"`
}

type MatchRequest struct {
	Month              int                         `json:"month"`
	RequiredSkills     []MatchRequiredSkillRequest `json:"required_skills"`
	ReferenceProjectID uuid.UUID                   `json:"reference_project_id"`
}

func (r MatchRequest) ToParams() usecase.MatchParams {
	params := usecase.MatchParams{
		Month:              r.Month,
		RequiredSkills:     make([]usecase.MatchRequiredSkill, 0, len(r.RequiredSkills)),
		ReferenceProjectID: r.ReferenceProjectID,
	}
	for _, rs := range r.RequiredSkills {
		params.RequiredSkills = append(params.RequiredSkills, usecase.MatchRequiredSkill{SkillID: rs.SkillID, Level: rs.Level})
	}
	return params
}

type CreateProjectRequest struct {
	Name       string `json:"name"`
	Client     string `json:"client"`
	DomainTags string `json:"domain_tags"`
}

func (r CreateProjectRequest) ToInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{Name: r.Name, Client: r.Client, DomainTags: r.DomainTags}
}

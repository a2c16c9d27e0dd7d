package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	"staffing-tool/internal/domain/scoring"
	"staffing-tool/internal/repository"
)

var ErrProjectNameTaken = errors.New("project name already in use")

type ProjectMemberView struct {
	ConsultantID uuid.UUID `json:"consultant_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role,omitempty"`
}

type ProjectView struct {
	ProjectID  uuid.UUID           `json:"project_id"`
	Name       string              `json:"name"`
	Client     string              `json:"client,omitempty"`
	DomainTags []string            `json:"domain_tags"`
	Members    []ProjectMemberView `json:"members"`
}

type ProjectCatalog struct {
	Projects []ProjectView `json:"projects"`
	Clients  []string      `json:"clients"`
	Tags     []string      `json:"tags"`
}

type CreateProjectInput struct {
	Name       string
	Client     string
	DomainTags string
}

type ProjectUsecase interface {
	Catalog(ctx context.Context, filter repository.ProjectFilter) (ProjectCatalog, error)
	Create(ctx context.Context, in CreateProjectInput) (ProjectView, error)
}

type ProjectService struct {
	projects repository.ProjectRepository
	cache    ViewCache
	notifier ChangeNotifier
	logger   *log.Logger
}

func NewProjectUsecase(projects repository.ProjectRepository, cache ViewCache, notifier ChangeNotifier, logger *log.Logger) *ProjectService {
	return &ProjectService{projects: projects, cache: cache, notifier: notifier, logger: logger}
}

// Catalog lists projects matching the filter and derives the distinct client
// and tag sets from the FULL catalog, so filter dropdowns stay complete while
// a filter is active.
func (u *ProjectService) Catalog(ctx context.Context, filter repository.ProjectFilter) (ProjectCatalog, error) {
	filtered, err := u.projects.List(ctx, filter)
	if err != nil {
		return ProjectCatalog{}, ErrInternal
	}

	all := filtered
	if filter != (repository.ProjectFilter{}) {
		all, err = u.projects.List(ctx, repository.ProjectFilter{})
		if err != nil {
			return ProjectCatalog{}, ErrInternal
		}
	}

	ids := make([]uuid.UUID, 0, len(filtered))
	for _, p := range filtered {
		ids = append(ids, p.ID)
	}
	members, err := u.projects.ListMembers(ctx, ids)
	if err != nil {
		return ProjectCatalog{}, ErrInternal
	}
	membersByProject := make(map[uuid.UUID][]ProjectMemberView)
	for _, m := range members {
		membersByProject[m.ProjectID] = append(membersByProject[m.ProjectID], ProjectMemberView{
			ConsultantID: m.ConsultantID,
			Name:         m.Name,
			Role:         m.Role,
		})
	}

	catalog := ProjectCatalog{
		Projects: make([]ProjectView, 0, len(filtered)),
		Clients:  distinctClients(all),
		Tags:     distinctTags(all),
	}
	for _, p := range filtered {
		catalog.Projects = append(catalog.Projects, ProjectView{
			ProjectID:  p.ID,
			Name:       p.Name,
			Client:     p.Client,
			DomainTags: tagList(p.DomainTags),
			Members:    membersByProject[p.ID],
		})
	}
	return catalog, nil
}

func (u *ProjectService) Create(ctx context.Context, in CreateProjectInput) (ProjectView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ProjectView{}, ErrNameRequired
	}

	created, err := u.projects.Create(ctx, name, strings.TrimSpace(in.Client), strings.TrimSpace(in.DomainTags))
	if err != nil {
		if errors.Is(err, repository.ErrProjectNameInUse) {
			return ProjectView{}, ErrProjectNameTaken
		}
		return ProjectView{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.InvalidateStaffingViews(ctx); err != nil && u.logger != nil {
			u.logger.Printf("[Project] cache invalidation failed err=%v", err)
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyStaffingUpdated("project")
	}

	return ProjectView{
		ProjectID:  created.ID,
		Name:       created.Name,
		Client:     created.Client,
		DomainTags: tagList(created.DomainTags),
	}, nil
}

func distinctClients(projects []repository.Project) []string {
	seen := make(map[string]string)
	for _, p := range projects {
		client := strings.TrimSpace(p.Client)
		if client == "" {
			continue
		}
		key := strings.ToLower(client)
		if _, ok := seen[key]; !ok {
			seen[key] = client
		}
	}

	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func distinctTags(projects []repository.Project) []string {
	seen := make(map[string]struct{})
	for _, p := range projects {
		for tag := range scoring.NormalizeTags(p.DomainTags) {
			seen[tag] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func tagList(domainTags string) []string {
	tags := scoring.NormalizeTags(domainTags)
	out := make([]string, 0, len(tags))
	for tag := range tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

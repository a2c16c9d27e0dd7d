package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"staffing-tool/internal/repository"
)

type mockConsultantRepo struct {
	items   []repository.Consultant
	err     error
	renamed map[uuid.UUID]string
	deleted []uuid.UUID
}

func (m *mockConsultantRepo) List(_ context.Context, search string) ([]repository.Consultant, error) {
	if m.err != nil {
		return nil, m.err
	}
	if search == "" {
		return m.items, nil
	}
	out := make([]repository.Consultant, 0, len(m.items))
	for _, c := range m.items {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockConsultantRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Consultant, error) {
	if m.err != nil {
		return repository.Consultant{}, m.err
	}
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return repository.Consultant{}, repository.ErrConsultantNotFound
}

func (m *mockConsultantRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := m.GetByID(ctx, id)
	if err == repository.ErrConsultantNotFound {
		return false, nil
	}
	return err == nil, err
}

func (m *mockConsultantRepo) Create(_ context.Context, name string) (repository.Consultant, error) {
	if m.err != nil {
		return repository.Consultant{}, m.err
	}
	c := repository.Consultant{ID: uuid.New(), Name: name}
	m.items = append(m.items, c)
	return c, nil
}

func (m *mockConsultantRepo) Rename(_ context.Context, id uuid.UUID, name string) error {
	if m.renamed == nil {
		m.renamed = make(map[uuid.UUID]string)
	}
	m.renamed[id] = name
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Name = name
		}
	}
	return nil
}

func (m *mockConsultantRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for _, c := range m.items {
		if c.ID == id {
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return repository.ErrConsultantNotFound
}

type mockSkillRepo struct {
	items []repository.Skill
	err   error
}

func (m *mockSkillRepo) List(context.Context) ([]repository.Skill, error) {
	return m.items, m.err
}

func (m *mockSkillRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	for _, s := range m.items {
		if s.ID == id {
			return true, nil
		}
	}
	return false, m.err
}

func (m *mockSkillRepo) Ensure(_ context.Context, name string) (repository.Skill, error) {
	if m.err != nil {
		return repository.Skill{}, m.err
	}
	for _, s := range m.items {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	s := repository.Skill{ID: uuid.New(), Name: name}
	m.items = append(m.items, s)
	return s, nil
}

type mockConsultantSkillRepo struct {
	items   []repository.ConsultantSkill
	err     error
	removed []uuid.UUID
}

func (m *mockConsultantSkillRepo) FindByConsultantID(_ context.Context, consultantID uuid.UUID) ([]repository.ConsultantSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.ConsultantSkill, 0)
	for _, row := range m.items {
		if row.ConsultantID == consultantID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockConsultantSkillRepo) ListAll(context.Context) ([]repository.ConsultantSkill, error) {
	return m.items, m.err
}

func (m *mockConsultantSkillRepo) Upsert(_ context.Context, consultantID, skillID uuid.UUID, level int) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.items {
		if m.items[i].ConsultantID == consultantID && m.items[i].SkillID == skillID {
			m.items[i].Level = level
			return nil
		}
	}
	m.items = append(m.items, repository.ConsultantSkill{ConsultantID: consultantID, SkillID: skillID, Level: level})
	return nil
}

func (m *mockConsultantSkillRepo) Remove(_ context.Context, consultantID, skillID uuid.UUID) error {
	m.removed = append(m.removed, skillID)
	out := m.items[:0]
	for _, row := range m.items {
		if row.ConsultantID == consultantID && row.SkillID == skillID {
			continue
		}
		out = append(out, row)
	}
	m.items = out
	return nil
}

type mockWorkloadRepo struct {
	items []repository.MonthlyWorkload
	err   error
}

func (m *mockWorkloadRepo) FindByConsultantID(_ context.Context, consultantID uuid.UUID) ([]repository.MonthlyWorkload, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.MonthlyWorkload, 0)
	for _, row := range m.items {
		if row.ConsultantID == consultantID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockWorkloadRepo) FindByMonth(_ context.Context, month int) ([]repository.MonthlyWorkload, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.MonthlyWorkload, 0)
	for _, row := range m.items {
		if row.Month == month {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockWorkloadRepo) Upsert(_ context.Context, wl repository.MonthlyWorkload) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.items {
		if m.items[i].ConsultantID == wl.ConsultantID && m.items[i].Month == wl.Month {
			m.items[i] = wl
			return nil
		}
	}
	m.items = append(m.items, wl)
	return nil
}

type mockExperienceRepo struct {
	items []repository.Experience
	err   error
}

func (m *mockExperienceRepo) FindByConsultantID(_ context.Context, consultantID uuid.UUID) ([]repository.Experience, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Experience, 0)
	for _, row := range m.items {
		if row.ConsultantID == consultantID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockExperienceRepo) ListAll(context.Context) ([]repository.Experience, error) {
	return m.items, m.err
}

func (m *mockExperienceRepo) Create(_ context.Context, e repository.Experience) (repository.Experience, error) {
	if m.err != nil {
		return repository.Experience{}, m.err
	}
	e.ID = uuid.New()
	m.items = append(m.items, e)
	return e, nil
}

type mockProjectRepo struct {
	items   []repository.Project
	members []repository.ProjectMember
	err     error
}

func (m *mockProjectRepo) List(_ context.Context, filter repository.ProjectFilter) ([]repository.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Project, 0, len(m.items))
	for _, p := range m.items {
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Client != "" && !strings.EqualFold(p.Client, filter.Client) {
			continue
		}
		if filter.Tag != "" && !strings.Contains(strings.ToLower(p.DomainTags), strings.ToLower(filter.Tag)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Project, error) {
	if m.err != nil {
		return repository.Project{}, m.err
	}
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return repository.Project{}, repository.ErrProjectNotFound
}

func (m *mockProjectRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, p := range m.items {
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, m.err
}

func (m *mockProjectRepo) Create(_ context.Context, name, client, domainTags string) (repository.Project, error) {
	if m.err != nil {
		return repository.Project{}, m.err
	}
	for _, p := range m.items {
		if strings.EqualFold(p.Name, name) {
			return repository.Project{}, repository.ErrProjectNameInUse
		}
	}
	p := repository.Project{ID: uuid.New(), Name: name, Client: client, DomainTags: domainTags}
	m.items = append(m.items, p)
	return p, nil
}

func (m *mockProjectRepo) ListMembers(_ context.Context, projectIDs []uuid.UUID) ([]repository.ProjectMember, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make(map[uuid.UUID]struct{}, len(projectIDs))
	for _, id := range projectIDs {
		ids[id] = struct{}{}
	}
	out := make([]repository.ProjectMember, 0)
	for _, pm := range m.members {
		if _, ok := ids[pm.ProjectID]; ok {
			out = append(out, pm)
		}
	}
	return out, nil
}

type mockViewCache struct {
	store       map[string][]byte
	invalidated int
}

func (m *mockViewCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockViewCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if m.store == nil {
		m.store = make(map[string][]byte)
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockViewCache) InvalidateStaffingViews(context.Context) error {
	m.invalidated++
	m.store = nil
	return nil
}

type mockNotifier struct {
	events []string
}

func (m *mockNotifier) NotifyStaffingUpdated(resource string) {
	m.events = append(m.events, resource)
}

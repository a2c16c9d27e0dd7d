package repository

import (
	"context"
	"database/sql"
	"errors"

	"staffing-tool/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectNameInUse = errors.New("project name already in use")
)

type Project struct {
	ID         uuid.UUID
	Name       string
	Client     string
	DomainTags string
}

type ProjectMember struct {
	ProjectID    uuid.UUID
	ConsultantID uuid.UUID
	Name         string
	Role         string
}

type ProjectFilter struct {
	Search string
	Client string
	Tag    string
}

type ProjectRepository interface {
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name, client, domainTags string) (Project, error)
	ListMembers(ctx context.Context, projectIDs []uuid.UUID) ([]ProjectMember, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) List(ctx context.Context, filter ProjectFilter) ([]Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(client, ''), COALESCE(domain_tags, '')
		 FROM projects
		 WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR client ILIKE '%' || $2 || '%')
		   AND ($3 = '' OR domain_tags ILIKE '%' || $3 || '%')
		 ORDER BY name ASC`,
		filter.Search, filter.Client, filter.Tag,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Client, &p.DomainTags); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(client, ''), COALESCE(domain_tags, '') FROM projects WHERE id = $1`,
		id,
	)

	var p Project
	if err := row.Scan(&p.ID, &p.Name, &p.Client, &p.DomainTags); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrProjectNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE name = $1)`, name)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, name, client, domainTags string) (Project, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO projects (id, name, client, domain_tags)
		 VALUES (gen_random_uuid(), $1, NULLIF($2, ''), NULLIF($3, ''))
		 ON CONFLICT (name) DO NOTHING
		 RETURNING id, name, COALESCE(client, ''), COALESCE(domain_tags, '')`,
		name, client, domainTags,
	)

	var p Project
	if err := row.Scan(&p.ID, &p.Name, &p.Client, &p.DomainTags); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrProjectNameInUse
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) ListMembers(ctx context.Context, projectIDs []uuid.UUID) ([]ProjectMember, error) {
	if len(projectIDs) == 0 {
		return []ProjectMember{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT cp.project_id, c.id, c.name, COALESCE(cp.role, '')
		 FROM consultant_projects cp
		 JOIN consultants c ON c.id = cp.consultant_id
		 WHERE cp.project_id = ANY($1)
		 ORDER BY c.name ASC`,
		projectIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProjectMember, 0)
	for rows.Next() {
		var m ProjectMember
		if err := rows.Scan(&m.ProjectID, &m.ConsultantID, &m.Name, &m.Role); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package repository

import (
	"context"

	"staffing-tool/internal/database"

	"github.com/google/uuid"
)

// Experience is a consultant's assignment row joined with its project's
// client and tags, so callers never reach back into the store. Zero
// month/year/intensity values mean the field was not reported.
type Experience struct {
	ID           uuid.UUID
	ConsultantID uuid.UUID
	ProjectID    uuid.UUID
	ProjectName  string
	Client       string
	DomainTags   string
	Role         string
	StartMonth   int
	StartYear    int
	EndMonth     int
	EndYear      int
	Intensity    int
	Notes        string
}

type ExperienceRepository interface {
	FindByConsultantID(ctx context.Context, consultantID uuid.UUID) ([]Experience, error)
	ListAll(ctx context.Context) ([]Experience, error)
	Create(ctx context.Context, e Experience) (Experience, error)
}

type PostgresExperienceRepository struct {
	db database.DB
}

func NewPostgresExperienceRepository(db database.DB) *PostgresExperienceRepository {
	return &PostgresExperienceRepository{db: db}
}

const experienceSelect = `SELECT cp.id, cp.consultant_id, cp.project_id, p.name,
	COALESCE(p.client, ''), COALESCE(p.domain_tags, ''), COALESCE(cp.role, ''),
	COALESCE(cp.start_month, 0), COALESCE(cp.start_year, 0),
	COALESCE(cp.end_month, 0), COALESCE(cp.end_year, 0),
	COALESCE(cp.intensity_level, 0), COALESCE(cp.notes, '')
	FROM consultant_projects cp
	JOIN projects p ON p.id = cp.project_id`

func (r *PostgresExperienceRepository) FindByConsultantID(ctx context.Context, consultantID uuid.UUID) ([]Experience, error) {
	rows, err := r.db.Query(ctx, experienceSelect+` WHERE cp.consultant_id = $1`, consultantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExperiences(rows)
}

func (r *PostgresExperienceRepository) ListAll(ctx context.Context) ([]Experience, error) {
	rows, err := r.db.Query(ctx, experienceSelect)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExperiences(rows)
}

func (r *PostgresExperienceRepository) Create(ctx context.Context, e Experience) (Experience, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO consultant_projects
		 (id, consultant_id, project_id, role, start_month, start_year, end_month, end_year, intensity_level, notes)
		 VALUES (gen_random_uuid(), $1, $2, NULLIF($3, ''), NULLIF($4, 0), NULLIF($5, 0), NULLIF($6, 0), NULLIF($7, 0), NULLIF($8, 0), NULLIF($9, ''))
		 RETURNING id`,
		e.ConsultantID, e.ProjectID, e.Role,
		e.StartMonth, e.StartYear, e.EndMonth, e.EndYear,
		e.Intensity, e.Notes,
	)

	if err := row.Scan(&e.ID); err != nil {
		return Experience{}, err
	}
	return e, nil
}

func scanExperiences(rows database.Rows) ([]Experience, error) {
	out := make([]Experience, 0)
	for rows.Next() {
		var e Experience
		if err := rows.Scan(
			&e.ID, &e.ConsultantID, &e.ProjectID, &e.ProjectName,
			&e.Client, &e.DomainTags, &e.Role,
			&e.StartMonth, &e.StartYear, &e.EndMonth, &e.EndYear,
			&e.Intensity, &e.Notes,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

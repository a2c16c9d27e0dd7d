package repository

import (
	"context"
	"errors"

	"staffing-tool/internal/database"

	"github.com/google/uuid"
)

var ErrSkillNotFound = errors.New("skill not found")

type Skill struct {
	ID   uuid.UUID
	Name string
}

type ConsultantSkill struct {
	ConsultantID uuid.UUID
	SkillID      uuid.UUID
	SkillName    string
	Level        int
}

type SkillRepository interface {
	List(ctx context.Context) ([]Skill, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Ensure(ctx context.Context, name string) (Skill, error)
}

type ConsultantSkillRepository interface {
	FindByConsultantID(ctx context.Context, consultantID uuid.UUID) ([]ConsultantSkill, error)
	ListAll(ctx context.Context) ([]ConsultantSkill, error)
	Upsert(ctx context.Context, consultantID, skillID uuid.UUID, level int) error
	Remove(ctx context.Context, consultantID, skillID uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Ensure inserts the skill if it is new and returns the stored row either way.
func (r *PostgresSkillRepository) Ensure(ctx context.Context, name string) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name`,
		name,
	)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name); err != nil {
		return Skill{}, err
	}
	return s, nil
}

type PostgresConsultantSkillRepository struct {
	db database.DB
}

func NewPostgresConsultantSkillRepository(db database.DB) *PostgresConsultantSkillRepository {
	return &PostgresConsultantSkillRepository{db: db}
}

func (r *PostgresConsultantSkillRepository) FindByConsultantID(ctx context.Context, consultantID uuid.UUID) ([]ConsultantSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cs.consultant_id, cs.skill_id, s.name, cs.level
		 FROM consultant_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.consultant_id = $1
		 ORDER BY cs.level DESC, s.name ASC`,
		consultantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConsultantSkills(rows)
}

func (r *PostgresConsultantSkillRepository) ListAll(ctx context.Context) ([]ConsultantSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cs.consultant_id, cs.skill_id, s.name, cs.level
		 FROM consultant_skills cs
		 JOIN skills s ON s.id = cs.skill_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConsultantSkills(rows)
}

func (r *PostgresConsultantSkillRepository) Upsert(ctx context.Context, consultantID, skillID uuid.UUID, level int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO consultant_skills (id, consultant_id, skill_id, level)
		 VALUES (gen_random_uuid(), $1, $2, $3)
		 ON CONFLICT (consultant_id, skill_id) DO UPDATE SET level = EXCLUDED.level`,
		consultantID, skillID, level,
	)
	return err
}

func (r *PostgresConsultantSkillRepository) Remove(ctx context.Context, consultantID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM consultant_skills WHERE consultant_id = $1 AND skill_id = $2`,
		consultantID, skillID,
	)
	return err
}

func scanConsultantSkills(rows database.Rows) ([]ConsultantSkill, error) {
	out := make([]ConsultantSkill, 0)
	for rows.Next() {
		var cs ConsultantSkill
		if err := rows.Scan(&cs.ConsultantID, &cs.SkillID, &cs.SkillName, &cs.Level); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

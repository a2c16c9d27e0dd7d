package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"staffing-tool/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrConsultantNotFound = errors.New("consultant not found")

type Consultant struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type ConsultantRepository interface {
	List(ctx context.Context, search string) ([]Consultant, error)
	GetByID(ctx context.Context, id uuid.UUID) (Consultant, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, name string) (Consultant, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresConsultantRepository struct {
	db database.DB
}

func NewPostgresConsultantRepository(db database.DB) *PostgresConsultantRepository {
	return &PostgresConsultantRepository{db: db}
}

func (r *PostgresConsultantRepository) List(ctx context.Context, search string) ([]Consultant, error) {
	query := `SELECT id, name, created_at FROM consultants ORDER BY name ASC`
	args := []any{}
	if search != "" {
		query = `SELECT id, name, created_at FROM consultants WHERE name ILIKE '%' || $1 || '%' ORDER BY name ASC`
		args = append(args, search)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Consultant, 0)
	for rows.Next() {
		var c Consultant
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresConsultantRepository) GetByID(ctx context.Context, id uuid.UUID) (Consultant, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM consultants WHERE id = $1`, id)

	var c Consultant
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Consultant{}, ErrConsultantNotFound
		}
		return Consultant{}, err
	}
	return c, nil
}

func (r *PostgresConsultantRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM consultants WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresConsultantRepository) Create(ctx context.Context, name string) (Consultant, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO consultants (id, name) VALUES (gen_random_uuid(), $1) RETURNING id, name, created_at`,
		name,
	)

	var c Consultant
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return Consultant{}, err
	}
	return c, nil
}

func (r *PostgresConsultantRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	affected, err := r.db.Exec(ctx, `UPDATE consultants SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConsultantNotFound
	}
	return nil
}

func (r *PostgresConsultantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM consultants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConsultantNotFound
	}
	return nil
}

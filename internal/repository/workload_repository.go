package repository

import (
	"context"

	"staffing-tool/internal/database"

	"github.com/google/uuid"
)

type MonthlyWorkload struct {
	ConsultantID  uuid.UUID
	Month         int
	WorkDays      int
	PerceivedLoad int
}

type WorkloadRepository interface {
	FindByConsultantID(ctx context.Context, consultantID uuid.UUID) ([]MonthlyWorkload, error)
	FindByMonth(ctx context.Context, month int) ([]MonthlyWorkload, error)
	Upsert(ctx context.Context, wl MonthlyWorkload) error
}

type PostgresWorkloadRepository struct {
	db database.DB
}

func NewPostgresWorkloadRepository(db database.DB) *PostgresWorkloadRepository {
	return &PostgresWorkloadRepository{db: db}
}

func (r *PostgresWorkloadRepository) FindByConsultantID(ctx context.Context, consultantID uuid.UUID) ([]MonthlyWorkload, error) {
	rows, err := r.db.Query(ctx,
		`SELECT consultant_id, month, work_days, perceived_load
		 FROM monthly_workloads
		 WHERE consultant_id = $1
		 ORDER BY month ASC`,
		consultantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkloads(rows)
}

func (r *PostgresWorkloadRepository) FindByMonth(ctx context.Context, month int) ([]MonthlyWorkload, error) {
	rows, err := r.db.Query(ctx,
		`SELECT consultant_id, month, work_days, perceived_load
		 FROM monthly_workloads
		 WHERE month = $1`,
		month,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkloads(rows)
}

func (r *PostgresWorkloadRepository) Upsert(ctx context.Context, wl MonthlyWorkload) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO monthly_workloads (id, consultant_id, month, work_days, perceived_load)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4)
		 ON CONFLICT (consultant_id, month)
		 DO UPDATE SET work_days = EXCLUDED.work_days, perceived_load = EXCLUDED.perceived_load`,
		wl.ConsultantID, wl.Month, wl.WorkDays, wl.PerceivedLoad,
	)
	return err
}

func scanWorkloads(rows database.Rows) ([]MonthlyWorkload, error) {
	out := make([]MonthlyWorkload, 0)
	for rows.Next() {
		var wl MonthlyWorkload
		if err := rows.Scan(&wl.ConsultantID, &wl.Month, &wl.WorkDays, &wl.PerceivedLoad); err != nil {
			return nil, err
		}
		out = append(out, wl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

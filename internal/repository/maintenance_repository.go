package repository

import (
	"context"

	"staffing-tool/internal/database"
)

type MaintenanceRepository interface {
	ResetStaffingData(ctx context.Context) error
}

type PostgresMaintenanceRepository struct {
	db database.DB
}

func NewPostgresMaintenanceRepository(db database.DB) *PostgresMaintenanceRepository {
	return &PostgresMaintenanceRepository{db: db}
}

// ResetStaffingData wipes every staffing table. Accounts survive so the
// caller stays logged in after a reset.
func (r *PostgresMaintenanceRepository) ResetStaffingData(ctx context.Context) error {
	_, err := r.db.Exec(ctx,
		`TRUNCATE consultant_projects, monthly_workloads, consultant_skills, projects, skills, consultants CASCADE`,
	)
	return err
}

package usecase

import (
	"context"
	"log"

	"staffing-tool/internal/database"
	"staffing-tool/internal/database/seeder"
	"staffing-tool/internal/repository"
)

type AdminUsecase interface {
	ResetStaffingData(ctx context.Context) error
}

type Admin struct {
	maintenance repository.MaintenanceRepository
	db          database.DB
	seeders     seeder.Runner
	cache       ViewCache
	notifier    ChangeNotifier
	logger      *log.Logger
}

func NewAdminUsecase(
	maintenance repository.MaintenanceRepository,
	db database.DB,
	seeders seeder.Runner,
	cache ViewCache,
	notifier ChangeNotifier,
	logger *log.Logger,
) *Admin {
	return &Admin{
		maintenance: maintenance,
		db:          db,
		seeders:     seeders,
		cache:       cache,
		notifier:    notifier,
		logger:      logger,
	}
}

// ResetStaffingData wipes every staffing table and restores the seed data.
// Accounts are untouched, so the caller's session keeps working.
func (u *Admin) ResetStaffingData(ctx context.Context) error {
	if err := u.maintenance.ResetStaffingData(ctx); err != nil {
		return ErrInternal
	}

	if err := u.seeders.Run(ctx, u.db); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Admin] reseed after reset failed err=%v", err)
		}
		return ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.InvalidateStaffingViews(ctx); err != nil && u.logger != nil {
			u.logger.Printf("[Admin] cache invalidation failed err=%v", err)
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyStaffingUpdated("reset")
	}
	return nil
}

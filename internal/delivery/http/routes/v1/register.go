package v1

import (
	"log"

	"staffing-tool/internal/config"
	"staffing-tool/internal/database"
	"staffing-tool/internal/database/seeder"
	"staffing-tool/internal/delivery/http/handler"
	"staffing-tool/internal/delivery/http/middleware"
	"staffing-tool/internal/infrastructure/cache"
	"staffing-tool/internal/pkg/jwt"
	"staffing-tool/internal/repository"
	"staffing-tool/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, notifier usecase.ChangeNotifier, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	accountRepo := repository.NewPostgresAccountRepository(db)
	consultantRepo := repository.NewPostgresConsultantRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	consultantSkillRepo := repository.NewPostgresConsultantSkillRepository(db)
	workloadRepo := repository.NewPostgresWorkloadRepository(db)
	experienceRepo := repository.NewPostgresExperienceRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)
	maintenanceRepo := repository.NewPostgresMaintenanceRepository(db)

	var viewCache usecase.ViewCache
	if redis != nil {
		viewCache = redis
	}

	authUC := usecase.NewAuthUsecase(accountRepo, jwtSvc)
	consultantUC := usecase.NewConsultantUsecase(
		consultantRepo, skillRepo, consultantSkillRepo,
		workloadRepo, experienceRepo, projectRepo,
		viewCache, notifier, logger,
	)
	projectUC := usecase.NewProjectUsecase(projectRepo, viewCache, notifier, logger)
	matchUC := usecase.NewMatchUsecase(
		consultantRepo, skillRepo, consultantSkillRepo,
		workloadRepo, experienceRepo, projectRepo,
		viewCache, logger,
	)
	overviewUC := usecase.NewOverviewUsecase(
		consultantRepo, consultantSkillRepo, workloadRepo, experienceRepo,
		viewCache, logger,
	)
	adminUC := usecase.NewAdminUsecase(
		maintenanceRepo, db, seeder.Runner{Seeders: seeder.Defaults()},
		viewCache, notifier, logger,
	)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))
	handler.NewConsultantHandler(consultantUC).RegisterRoutes(r.Group("/consultants"))
	handler.NewProjectHandler(projectUC).RegisterRoutes(r.Group("/projects"))
	handler.NewMatchHandler(matchUC).RegisterRoutes(r)
	handler.NewOverviewHandler(overviewUC).RegisterRoutes(r)

	admin := r.Group("/admin", authMw.Middleware())
	handler.NewAdminHandler(adminUC).RegisterRoutes(admin)
}

package routes

import (
	"log"

	"staffing-tool/internal/config"
	"staffing-tool/internal/database"
	"staffing-tool/internal/delivery/http/handler"
	v1 "staffing-tool/internal/delivery/http/routes/v1"
	"staffing-tool/internal/infrastructure/cache"
	"staffing-tool/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg       config.Config
	db        database.DB
	cache     *cache.Redis
	wsHandler *ws.Handler
	notifier  *ws.Notifier
	logger    *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{
		cfg:       cfg,
		db:        db,
		cache:     redis,
		wsHandler: ws.NewHandler(hub, logger),
		notifier:  ws.NewNotifier(hub),
		logger:    logger,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache, r.notifier, r.logger)

	app.Get("/ws", r.wsHandler.HandleStaffingWS)
}

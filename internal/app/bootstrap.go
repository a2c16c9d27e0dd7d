package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"staffing-tool/internal/config"
	"staffing-tool/internal/database/migration"
	"staffing-tool/internal/database/seeder"
	"staffing-tool/internal/delivery/http/middleware"
	"staffing-tool/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the whole server: database pool, migrations, seed data,
// cache, websocket hub, middleware and routes. The returned cleanup closes
// the container.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("container: %w", err)
	}

	if err := prepareDatabase(c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	routes.NewRegistry(cfg, c.DB, c.Cache, c.Hub, logger).Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func prepareDatabase(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: c.Config.App.MigrationsDir}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	seeders := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seeders.Run(ctx, c.DB); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

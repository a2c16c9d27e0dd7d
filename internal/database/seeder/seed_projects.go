package seeder

import (
	"context"
	"fmt"

	"staffing-tool/internal/database"
)

type demoProject struct {
	Name       string
	Client     string
	DomainTags string
}

// DemoProjects gives a fresh installation a small reference-project catalog.
var DemoProjects = []demoProject{
	{Name: "Internal – AI Adoption Workshop", Client: "Internal", DomainTags: "AI, Training"},
	{Name: "FS – DEI Community", Client: "FS", DomainTags: "DEI, Community"},
	{Name: "Lavazza – Mental Health Day", Client: "Lavazza", DomainTags: "Wellbeing, Training"},
}

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

func (ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects", "id", "name", "client", "domain_tags", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range DemoProjects {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO projects (id, name, client, domain_tags)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			p.Name, p.Client, p.DomainTags,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

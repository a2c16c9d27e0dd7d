package seeder

import (
	"context"

	"staffing-tool/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

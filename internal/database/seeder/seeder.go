package seeder

import (
	"context"

	"talent-rank/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

package migration

import (
	"context"

	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/pkg/xcontext"
)

// migrate0000 creates the database with the initial schema.
func migrate0000(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.Activity{},
		&entity.Report{},
	)
}
